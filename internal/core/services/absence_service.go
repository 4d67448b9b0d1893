package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	portsrepo "github.com/vnpayroll/attendance_backend/internal/core/ports/repositories"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
)

type absenceService struct {
	BaseService
	recorder portsrepo.AbsenceRecorder
}

// NewAbsenceService creates the daily absence reconciler.
func NewAbsenceService(recorder portsrepo.AbsenceRecorder, options ...ServiceOption) portssvc.AbsenceSvc {
	return &absenceService{
		BaseService: newBaseService(options...),
		recorder:    recorder,
	}
}

var _ portssvc.AbsenceSvc = (*absenceService)(nil)

func (s *absenceService) ReconcileDay(ctx context.Context) (time.Time, int64, error) {
	today := s.today()
	inserted, err := s.ReconcileDate(ctx, today)
	return today, inserted, err
}

func (s *absenceService) ReconcileDate(ctx context.Context, date time.Time) (int64, error) {
	day := date.Format(domain.DateLayout)
	inserted, err := s.recorder.InsertMissingAbsences(ctx, date)
	if err != nil {
		s.LogError(ctx, err, "Absence reconciliation failed", slog.String("date", day))
		return 0, err
	}
	s.LogInfo(ctx, "Absence reconciliation finished", slog.String("date", day), slog.Int64("inserted", inserted))
	return inserted, nil
}
