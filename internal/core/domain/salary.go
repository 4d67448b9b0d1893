package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SalaryType is the pay basis of a salary row.
type SalaryType string

const (
	SalaryMonthly SalaryType = "MONTHLY"
	SalaryDaily   SalaryType = "DAILY"
)

// DefaultCurrency is used when an enrollment does not name one.
const DefaultCurrency = "VND"

// ParseSalaryType accepts the canonical codes as well as the Vietnamese
// labels the admin frontend sends ("Theo tháng", "Theo ngày").
func ParseSalaryType(s string) (SalaryType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly", "theo tháng", "tháng":
		return SalaryMonthly, nil
	case "daily", "theo ngày", "ngày":
		return SalaryDaily, nil
	}
	return "", fmt.Errorf("unknown salary type %q", s)
}

// Salary is the base pay of one employee. There is exactly one per employee.
type Salary struct {
	SalaryID   int64           `json:"salaryID"`
	EmployeeID int64           `json:"employeeID"`
	Type       SalaryType      `json:"type"`
	Amount     decimal.Decimal `json:"salary"`
	Currency   string          `json:"currency"`
	PayDay     *int            `json:"payDay,omitempty"`
}
