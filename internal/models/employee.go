package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a row of the employees table. Optional personal data columns are nullable.
type Employee struct {
	EmployeeID    int64           `db:"id"`
	AdminID       int64           `db:"admin_id"`
	Name          string          `db:"name"`
	Phone         string          `db:"phone"`
	PasswordHash  string          `db:"password_hash"`
	NationalID    *string         `db:"cmnd"`
	BirthDate     *time.Time      `db:"birth_date"`
	Address       *string         `db:"address"`
	ActiveStatus  string          `db:"active_status"`
	Balance       decimal.Decimal `db:"balance"`
	InitiatedDate time.Time       `db:"initiated_date"`
	AuditFields
}

// Salary is a row of the salaries table.
type Salary struct {
	SalaryID   int64           `db:"id"`
	EmployeeID int64           `db:"employee_id"`
	Type       string          `db:"type"`
	Amount     decimal.Decimal `db:"salary"`
	Currency   string          `db:"currency"`
	PayDate    *int32          `db:"pay_date"`
}
