package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vnpayroll/attendance_backend/internal/apperrors"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	portsrepo "github.com/vnpayroll/attendance_backend/internal/core/ports/repositories"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
)

type balanceService struct {
	BaseService
	balanceRepo portsrepo.BalanceRepository
}

// NewBalanceService creates the balance recomputation service.
func NewBalanceService(balanceRepo portsrepo.BalanceRepository, options ...ServiceOption) portssvc.BalanceSvc {
	return &balanceService{
		BaseService: newBaseService(options...),
		balanceRepo: balanceRepo,
	}
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

func (s *balanceService) RecomputeBalances(ctx context.Context) (int64, error) {
	today := s.today()
	updated, err := s.balanceRepo.RecomputeAll(ctx, today)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogInfo(ctx, "Balance recomputation already running")
		} else {
			s.LogError(ctx, err, "Balance recomputation failed")
		}
		return 0, err
	}
	s.LogInfo(ctx, "Balances recomputed",
		slog.String("date", today.Format(domain.DateLayout)),
		slog.Int64("updated", updated))
	return updated, nil
}
