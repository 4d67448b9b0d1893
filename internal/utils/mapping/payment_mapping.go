package mapping

import (
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	"github.com/vnpayroll/attendance_backend/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		EmployeeID:  d.EmployeeID,
		PaymentDate: d.PaymentDate,
		Amount:      d.Amount,
		Note:        nullableString(d.Note),
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		EmployeeID:  m.EmployeeID,
		PaymentDate: m.PaymentDate,
		Amount:      m.Amount,
		Note:        derefString(m.Note),
		CreatedAt:   m.CreatedAt,
	}
}

// ToModelAdvance converts a domain AdvanceRequest to a model Advance
func ToModelAdvance(d domain.AdvanceRequest) models.Advance {
	return models.Advance{
		AdvanceID:  d.AdvanceID,
		EmployeeID: d.EmployeeID,
		Date:       d.Date,
		Amount:     d.Amount,
		Status:     string(d.Status),
		Reason:     nullableString(d.Reason),
		CreatedAt:  d.CreatedAt,
		DecidedAt:  d.DecidedAt,
	}
}

// ToDomainAdvance converts a model Advance to a domain AdvanceRequest
func ToDomainAdvance(m models.Advance) domain.AdvanceRequest {
	return domain.AdvanceRequest{
		AdvanceID:  m.AdvanceID,
		EmployeeID: m.EmployeeID,
		Date:       m.Date,
		Amount:     m.Amount,
		Status:     domain.AdvanceStatus(m.Status),
		Reason:     derefString(m.Reason),
		CreatedAt:  m.CreatedAt,
		DecidedAt:  m.DecidedAt,
	}
}
