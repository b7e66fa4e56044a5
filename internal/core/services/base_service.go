package services

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/pos_billing_app/internal/apperrors"
	"github.com/SscSPs/pos_billing_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Now returns the current time. Tests replace it to pin invoice numbers and day bounds.
	Now func() time.Time
}

func newBaseService() BaseService {
	return BaseService{Now: func() time.Time { return time.Now().UTC() }}
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

// txFailure reports a failed transactional operation as one error. The cause
// stays reachable through errors.Is/As, so domain sentinels raised inside the
// transaction still classify the failure.
func txFailure(op string, err error) error {
	return apperrors.NewAppError(http.StatusInternalServerError, op, err)
}
