package services

import (
	"context"

	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	"github.com/vnpayroll/attendance_backend/internal/dto"
)

// AdvanceRequesterSvc is used by employees.
type AdvanceRequesterSvc interface {
	RequestAdvance(ctx context.Context, employeeID int64, req dto.CreateAdvanceRequest) (*domain.AdvanceRequest, error)
}

// AdvanceReviewerSvc is used by admins.
type AdvanceReviewerSvc interface {
	// ListAdvances lists requests from the admin's employees; an empty status lists all.
	ListAdvances(ctx context.Context, adminID int64, status string) ([]domain.AdvanceRequest, error)

	// DecideAdvance accepts or rejects a pending request.
	DecideAdvance(ctx context.Context, adminID, advanceID int64, status string) (*domain.AdvanceRequest, error)
}

// AdvanceSvcFacade combines all advance-related service interfaces
type AdvanceSvcFacade interface {
	AdvanceRequesterSvc
	AdvanceReviewerSvc
}
