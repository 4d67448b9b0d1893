package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	"github.com/vnpayroll/attendance_backend/internal/middleware"
)

// Clock supplies the current instant and the business timezone in which
// civil dates are evaluated.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

// NewClock returns a wall clock for loc.
func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{Now: time.Now, Location: loc}
}

// Today is the civil date of the current instant in the business timezone.
func (c Clock) Today() time.Time {
	return domain.CivilDate(c.Now(), c.Location)
}

// BaseService provides common functionality for all services
type BaseService struct {
	clock Clock
}

// ServiceOption configures the shared parts of a service.
type ServiceOption func(*BaseService)

// WithClock overrides the wall clock, mainly for tests.
func WithClock(c Clock) ServiceOption {
	return func(s *BaseService) {
		s.clock = c
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{clock: NewClock(time.UTC)}
	for _, option := range options {
		option(&base)
	}
	return base
}

// now is the current instant expressed in the business timezone.
func (s *BaseService) now() time.Time {
	return s.clock.Now().In(s.clock.Location)
}

func (s *BaseService) today() time.Time {
	return s.clock.Today()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
