package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
	"github.com/vnpayroll/attendance_backend/internal/middleware"
)

// jobTimeout bounds a single reconciler run.
const jobTimeout = 5 * time.Minute

// Scheduler runs the daily absence reconciler on a cron schedule evaluated
// in the business timezone.
type Scheduler struct {
	cron    *cron.Cron
	absence portssvc.AbsenceSvc
	logger  *slog.Logger
}

// NewScheduler registers the reconciler under spec (standard 5-field cron).
func NewScheduler(spec string, loc *time.Location, absence portssvc.AbsenceSvc, logger *slog.Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		absence: absence,
		logger:  logger.With(slog.String("job", "absence_reconciler")),
	}
	if _, err := s.cron.AddFunc(spec, s.RunAbsence); err != nil {
		return nil, fmt.Errorf("failed to schedule absence reconciler %q: %w", spec, err)
	}
	return s, nil
}

// RunAbsence performs one reconciler run. Failures are logged, not retried.
func (s *Scheduler) RunAbsence() {
	logger := s.logger.With(slog.String("run_id", uuid.NewString()))
	ctx, cancel := context.WithTimeout(middleware.WithLogger(context.Background(), logger), jobTimeout)
	defer cancel()

	logger.Info("Absence reconciler started")
	date, inserted, err := s.absence.ReconcileDay(ctx)
	if err != nil {
		logger.Error("Absence reconciler failed", slog.String("error", err.Error()))
		return
	}
	logger.Info("Absence reconciler finished",
		slog.String("date", date.Format(domain.DateLayout)),
		slog.Int64("inserted", inserted))
}

// Start launches the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	for _, e := range s.cron.Entries() {
		s.logger.Info("Scheduler started", slog.Time("next_run", e.Next))
	}
}

// Stop halts scheduling and returns a context that is done once a running job completes.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
