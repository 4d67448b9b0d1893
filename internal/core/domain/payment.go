package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records a payout to an employee. The latest PaymentDate is the
// lower bound of the employee's accrual window.
type Payment struct {
	PaymentID   int64           `json:"paymentID"`
	EmployeeID  int64           `json:"employeeID"`
	PaymentDate time.Time       `json:"paymentDate"`
	Amount      decimal.Decimal `json:"amount"`
	Note        string          `json:"note"`
	CreatedAt   time.Time       `json:"createdAt"`
}
