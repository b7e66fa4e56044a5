package services

import (
	"context"
	"time"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
)

// DayCloseSvc defines the end-of-day reconciliation operations
type DayCloseSvc interface {
	// SummarizeDay aggregates a business day's invoices. Read-only.
	SummarizeDay(ctx context.Context, date time.Time) (*domain.DaySummary, error)

	// CloseDay flags the day's invoices as closed and writes the close snapshot.
	// Closing a closed day fails with ErrAlreadySatisfied.
	CloseDay(ctx context.Context, date time.Time, userID string) (*domain.DayCloseLog, error)
}
