package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vnpayroll/attendance_backend/internal/apperrors"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	portsrepo "github.com/vnpayroll/attendance_backend/internal/core/ports/repositories"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
	"github.com/vnpayroll/attendance_backend/internal/dto"
)

type advanceService struct {
	BaseService
	advanceRepo  portsrepo.AdvanceRepository
	employeeRepo portsrepo.EmployeeReader
}

// NewAdvanceService creates the salary advance service.
func NewAdvanceService(advanceRepo portsrepo.AdvanceRepository, employeeRepo portsrepo.EmployeeReader, options ...ServiceOption) portssvc.AdvanceSvcFacade {
	return &advanceService{
		BaseService:  newBaseService(options...),
		advanceRepo:  advanceRepo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.AdvanceSvcFacade = (*advanceService)(nil)

func (s *advanceService) RequestAdvance(ctx context.Context, employeeID int64, req dto.CreateAdvanceRequest) (*domain.AdvanceRequest, error) {
	if err := requirePositive("amount", req.Amount); err != nil {
		return nil, err
	}
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !employee.IsActive() {
		return nil, fmt.Errorf("employee is not active: %w", apperrors.ErrForbidden)
	}

	advance, err := s.advanceRepo.SaveAdvance(ctx, domain.AdvanceRequest{
		EmployeeID: employeeID,
		Date:       s.today(),
		Amount:     req.Amount,
		Status:     domain.AdvancePending,
		Reason:     strings.TrimSpace(req.Reason),
		CreatedAt:  s.now(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save advance request", slog.Int64("employee_id", employeeID))
		return nil, err
	}
	s.LogInfo(ctx, "Advance requested", slog.Int64("employee_id", employeeID), slog.Int64("advance_id", advance.AdvanceID))
	return advance, nil
}

func (s *advanceService) ListAdvances(ctx context.Context, adminID int64, status string) ([]domain.AdvanceRequest, error) {
	var filter *domain.AdvanceStatus
	if status != "" {
		st, err := domain.ParseAdvanceStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		filter = &st
	}
	return s.advanceRepo.ListAdvancesByAdmin(ctx, adminID, filter)
}

func (s *advanceService) DecideAdvance(ctx context.Context, adminID, advanceID int64, status string) (*domain.AdvanceRequest, error) {
	decision, err := domain.ParseAdvanceStatus(status)
	if err != nil || decision == domain.AdvancePending {
		return nil, fmt.Errorf("%w: status must be ACCEPTED or REJECTED", apperrors.ErrValidation)
	}

	advance, err := s.advanceRepo.FindAdvanceByID(ctx, advanceID)
	if err != nil {
		return nil, err
	}
	if _, err := ownedEmployee(ctx, s.employeeRepo, adminID, advance.EmployeeID); err != nil {
		return nil, err
	}
	if advance.Status != domain.AdvancePending {
		return nil, fmt.Errorf("advance %d already %s: %w", advanceID, advance.Status, apperrors.ErrConflict)
	}

	decided, err := s.advanceRepo.UpdateAdvanceStatus(ctx, advanceID, decision, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to decide advance", slog.Int64("advance_id", advanceID))
		return nil, err
	}
	s.LogInfo(ctx, "Advance decided", slog.Int64("advance_id", advanceID), slog.String("status", string(decision)))
	return decided, nil
}
