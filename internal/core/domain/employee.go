package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActiveStatus is the enrollment state of an employee. Employees are never
// hard-deleted, only moved to StatusUnactive.
type ActiveStatus string

const (
	StatusActive   ActiveStatus = "active"
	StatusUnactive ActiveStatus = "unactive"
)

// Employee represents a person whose attendance is tracked and paid.
type Employee struct {
	EmployeeID    int64           `json:"employeeID"`
	AdminID       int64           `json:"adminID"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	PasswordHash  string          `json:"-"`
	NationalID    string          `json:"nationalID"`
	BirthDate     *time.Time      `json:"birthDate,omitempty"`
	Address       string          `json:"address"`
	ActiveStatus  ActiveStatus    `json:"activeStatus"`
	Balance       decimal.Decimal `json:"balance"` // cached, see BalanceRepository.RecomputeAll
	InitiatedDate time.Time       `json:"initiatedDate"`
	AuditFields
}

// IsActive reports whether the employee still accrues attendance.
func (e Employee) IsActive() bool {
	return e.ActiveStatus == StatusActive
}

// EmployeeUpdate carries the optional fields of a partial employee update.
type EmployeeUpdate struct {
	Name       *string
	Phone      *string
	NationalID *string
	BirthDate  *time.Time
	Address    *string
}
