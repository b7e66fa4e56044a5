package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/pos_billing_app/internal/apperrors"
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_billing_app/internal/core/ports/services"
)

// dayCloseService reconciles and closes business days. A day is the calendar
// date in the shop's time zone.
type dayCloseService struct {
	BaseService
	dayCloseRepo portsrepo.DayCloseRepositoryWithTx
	loc          *time.Location
}

// DayCloseServiceOption is a functional option for configuring the day-close service
type DayCloseServiceOption func(*dayCloseService)

// WithDayCloseClock overrides the clock used to stamp closes and reject future dates.
func WithDayCloseClock(now func() time.Time) DayCloseServiceOption {
	return func(s *dayCloseService) {
		s.Now = now
	}
}

// NewDayCloseService creates a new DayCloseSvc.
func NewDayCloseService(dayCloseRepo portsrepo.DayCloseRepositoryWithTx, loc *time.Location, options ...DayCloseServiceOption) portssvc.DayCloseSvc {
	if loc == nil {
		loc = time.UTC
	}
	svc := &dayCloseService{
		BaseService:  newBaseService(),
		dayCloseRepo: dayCloseRepo,
		loc:          loc,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DayCloseSvc = (*dayCloseService)(nil)

// SummarizeDay implements portssvc.DayCloseSvc
func (s *dayCloseService) SummarizeDay(ctx context.Context, date time.Time) (*domain.DaySummary, error) {
	start, end := domain.DayBounds(date, s.loc)

	summary, err := s.dayCloseRepo.SummarizeDay(ctx, start, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize day", slog.String("date", start.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to summarize day: %w", err)
	}
	summary.Date = start
	summary.SetAverage()
	return summary, nil
}

// CloseDay implements portssvc.DayCloseSvc
func (s *dayCloseService) CloseDay(ctx context.Context, date time.Time, userID string) (*domain.DayCloseLog, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user is required", apperrors.ErrValidation)
	}
	now := s.Now()
	start, end := domain.DayBounds(date, s.loc)
	if today, _ := domain.DayBounds(now, s.loc); start.After(today) {
		return nil, fmt.Errorf("%w: cannot close %s before it happens", apperrors.ErrValidation, start.Format(domain.DateLayout))
	}
	day := slog.String("date", start.Format(domain.DateLayout))

	tx, err := s.dayCloseRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin day-close transaction", day)
		return nil, txFailure("failed to close day", err)
	}
	defer func() {
		if rbErr := s.dayCloseRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back day-close transaction", day)
		}
	}()

	if err := s.dayCloseRepo.LockDayInTx(ctx, tx, start); err != nil {
		s.LogError(ctx, err, "Failed to lock day for closing", day)
		return nil, txFailure("failed to close day", err)
	}

	current, err := s.dayCloseRepo.SummarizeDayInTx(ctx, tx, start, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize day for closing", day)
		return nil, txFailure("failed to close day", err)
	}
	if current.AlreadyClosed {
		return nil, fmt.Errorf("%w: %s is already closed", apperrors.ErrAlreadySatisfied, start.Format(domain.DateLayout))
	}

	// The snapshot totals come from the rows this close flagged, not from current.
	summary, err := s.dayCloseRepo.CloseInvoicesInTx(ctx, tx, start, end, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to flag invoices as closed", day)
		return nil, txFailure("failed to close day", err)
	}
	summary.Date = start
	summary.SetAverage()

	closeLog := domain.NewDayCloseLog(uuid.NewString(), *summary, userID, now)
	if err := s.dayCloseRepo.SaveDayCloseLogInTx(ctx, tx, closeLog); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s is already closed", apperrors.ErrAlreadySatisfied, start.Format(domain.DateLayout))
		}
		s.LogError(ctx, err, "Failed to save day-close log", day)
		return nil, txFailure("failed to close day", err)
	}

	if err := s.dayCloseRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit day-close transaction", day)
		return nil, txFailure("failed to close day", err)
	}

	s.LogInfo(ctx, "Day closed", day,
		slog.Int("invoices_flagged", closeLog.InvoiceCount),
		slog.String("grand_total", closeLog.GrandTotal.String()),
		slog.String("user_id", userID))
	return &closeLog, nil
}
