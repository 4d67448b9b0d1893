package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
)

// RecordPaymentRequest records a payout to an employee.
type RecordPaymentRequest struct {
	PaymentDate string          `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount"`
	Note        string          `json:"note"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   int64           `json:"paymentID"`
	EmployeeID  int64           `json:"employeeID"`
	PaymentDate string          `json:"paymentDate"`
	Amount      decimal.Decimal `json:"amount"`
	Note        string          `json:"note"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		EmployeeID:  p.EmployeeID,
		PaymentDate: p.PaymentDate.Format(domain.DateLayout),
		Amount:      p.Amount,
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
	}
}

// ToListPaymentResponse converts payments to their DTOs.
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}
