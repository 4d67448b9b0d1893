package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AdvanceStatus is the decision state of a salary advance request.
type AdvanceStatus string

const (
	AdvancePending  AdvanceStatus = "PENDING"
	AdvanceAccepted AdvanceStatus = "ACCEPTED"
	AdvanceRejected AdvanceStatus = "REJECTED"
)

// ParseAdvanceStatus normalises a status string.
func ParseAdvanceStatus(s string) (AdvanceStatus, error) {
	st := AdvanceStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case AdvancePending, AdvanceAccepted, AdvanceRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown advance status %q", s)
}

// AdvanceRequest is an employee's request for part of their pay in advance.
// Advances are display-only: they never feed the balance recomputation.
type AdvanceRequest struct {
	AdvanceID  int64           `json:"advanceID"`
	EmployeeID int64           `json:"employeeID"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Status     AdvanceStatus   `json:"status"`
	Reason     string          `json:"reason"`
	CreatedAt  time.Time       `json:"createdAt"`
	DecidedAt  *time.Time      `json:"decidedAt,omitempty"`
}
