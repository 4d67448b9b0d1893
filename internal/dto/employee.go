package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
)

// EnrollEmployeeRequest creates an employee together with their salary.
type EnrollEmployeeRequest struct {
	FullName      string          `json:"fullName" binding:"required"`
	PhoneNumber   string          `json:"phoneNumber" binding:"required"`
	Password      string          `json:"password" binding:"required,min=6"`
	IDNumber      string          `json:"idNumber" binding:"required"`
	DOB           string          `json:"dob" binding:"required,datetime=2006-01-02"`
	Address       string          `json:"address" binding:"required"`
	PayrollType   string          `json:"payrollType" binding:"required"`
	Salary        decimal.Decimal `json:"salary"`
	Currency      string          `json:"currency"`
	PayDate       *int            `json:"payDate" binding:"omitempty,min=1,max=31"`
	InitiatedDate string          `json:"initiatedDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateEmployeeRequest struct {
	FullName    *string `json:"fullName"`
	PhoneNumber *string `json:"phoneNumber"`
	IDNumber    *string `json:"idNumber"`
	DOB         *string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Address     *string `json:"address"`
}

// UpdateSalaryRequest changes an employee's base salary.
type UpdateSalaryRequest struct {
	Salary decimal.Decimal `json:"salary"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID    int64           `json:"employeeID"`
	AdminID       int64           `json:"adminID"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	IDNumber      string          `json:"idNumber"`
	DOB           string          `json:"dob,omitempty"`
	Address       string          `json:"address"`
	ActiveStatus  string          `json:"activeStatus"`
	Balance       decimal.Decimal `json:"balance"`
	InitiatedDate string          `json:"initiatedDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// SalaryResponse defines the data returned for a salary.
type SalaryResponse struct {
	EmployeeID int64           `json:"employeeID"`
	Type       string          `json:"type"`
	Salary     decimal.Decimal `json:"salary"`
	Currency   string          `json:"currency"`
	PayDate    *int            `json:"payDate,omitempty"`
}

// ListEmployeesResponse wraps the list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	res := EmployeeResponse{
		EmployeeID:    e.EmployeeID,
		AdminID:       e.AdminID,
		Name:          e.Name,
		Phone:         e.Phone,
		IDNumber:      e.NationalID,
		Address:       e.Address,
		ActiveStatus:  string(e.ActiveStatus),
		Balance:       e.Balance,
		InitiatedDate: e.InitiatedDate.Format(domain.DateLayout),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if e.BirthDate != nil {
		res.DOB = e.BirthDate.Format(domain.DateLayout)
	}
	return res
}

// ToListEmployeesResponse converts a slice of domain.Employee to ListEmployeesResponse DTO
func ToListEmployeesResponse(employees []domain.Employee) ListEmployeesResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return ListEmployeesResponse{Employees: res}
}

// ToSalaryResponse converts a domain.Salary to SalaryResponse DTO
func ToSalaryResponse(s *domain.Salary) SalaryResponse {
	return SalaryResponse{
		EmployeeID: s.EmployeeID,
		Type:       string(s.Type),
		Salary:     s.Amount,
		Currency:   s.Currency,
		PayDate:    s.PayDay,
	}
}
