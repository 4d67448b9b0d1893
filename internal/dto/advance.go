package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
)

// CreateAdvanceRequest is an employee's salary advance request.
type CreateAdvanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

// DecideAdvanceRequest accepts or rejects an advance.
type DecideAdvanceRequest struct {
	Status string `json:"status" binding:"required,oneof=ACCEPTED REJECTED"`
}

// ListAdvancesParams filters the admin advance list.
type ListAdvancesParams struct {
	Status string `form:"status" binding:"omitempty,oneof=PENDING ACCEPTED REJECTED"`
}

// AdvanceResponse defines the data returned for an advance request.
type AdvanceResponse struct {
	AdvanceID  int64           `json:"advanceID"`
	EmployeeID int64           `json:"employeeID"`
	Date       string          `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	Reason     string          `json:"reason"`
	CreatedAt  time.Time       `json:"createdAt"`
	DecidedAt  *time.Time      `json:"decidedAt,omitempty"`
}

// ToAdvanceResponse converts a domain.AdvanceRequest to AdvanceResponse DTO
func ToAdvanceResponse(a *domain.AdvanceRequest) AdvanceResponse {
	return AdvanceResponse{
		AdvanceID:  a.AdvanceID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format(domain.DateLayout),
		Amount:     a.Amount,
		Status:     string(a.Status),
		Reason:     a.Reason,
		CreatedAt:  a.CreatedAt,
		DecidedAt:  a.DecidedAt,
	}
}

// ToListAdvanceResponse converts advances to their DTOs.
func ToListAdvanceResponse(advances []domain.AdvanceRequest) []AdvanceResponse {
	res := make([]AdvanceResponse, len(advances))
	for i := range advances {
		res[i] = ToAdvanceResponse(&advances[i])
	}
	return res
}
