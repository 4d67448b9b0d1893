package mapping

import (
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	"github.com/vnpayroll/attendance_backend/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:    d.EmployeeID,
		AdminID:       d.AdminID,
		Name:          d.Name,
		Phone:         d.Phone,
		PasswordHash:  d.PasswordHash,
		NationalID:    nullableString(d.NationalID),
		BirthDate:     d.BirthDate,
		Address:       nullableString(d.Address),
		ActiveStatus:  string(d.ActiveStatus),
		Balance:       d.Balance,
		InitiatedDate: d.InitiatedDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:    m.EmployeeID,
		AdminID:       m.AdminID,
		Name:          m.Name,
		Phone:         m.Phone,
		PasswordHash:  m.PasswordHash,
		NationalID:    derefString(m.NationalID),
		BirthDate:     m.BirthDate,
		Address:       derefString(m.Address),
		ActiveStatus:  domain.ActiveStatus(m.ActiveStatus),
		Balance:       m.Balance,
		InitiatedDate: m.InitiatedDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to a slice of domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}

// ToModelSalary converts a domain Salary to a model Salary
func ToModelSalary(d domain.Salary) models.Salary {
	m := models.Salary{
		SalaryID:   d.SalaryID,
		EmployeeID: d.EmployeeID,
		Type:       string(d.Type),
		Amount:     d.Amount,
		Currency:   d.Currency,
	}
	if d.PayDay != nil {
		day := int32(*d.PayDay)
		m.PayDate = &day
	}
	return m
}

// ToDomainSalary converts a model Salary to a domain Salary
func ToDomainSalary(m models.Salary) domain.Salary {
	d := domain.Salary{
		SalaryID:   m.SalaryID,
		EmployeeID: m.EmployeeID,
		Type:       domain.SalaryType(m.Type),
		Amount:     m.Amount,
		Currency:   m.Currency,
	}
	if m.PayDate != nil {
		day := int(*m.PayDate)
		d.PayDay = &day
	}
	return d
}
