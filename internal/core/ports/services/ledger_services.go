package services

import (
	"context"

	"github.com/spendwise/spendwise_backend/internal/core/domain"
)

// LedgerSvc derives totals and balances from the entry log. All reads are
// pure recomputations; nothing here caches.
type LedgerSvc interface {
	// PeriodSummary aggregates the entries of the period containing ref.
	PeriodSummary(ctx context.Context, period domain.Period, ref domain.Date) (*domain.Summary, error)

	// RangeSummary aggregates the entries of an explicit inclusive range.
	RangeSummary(ctx context.Context, r domain.DateRange) (*domain.Summary, error)

	// CurrentBalances folds the whole log on top of the baselines. A rail
	// whose baseline is unset yields a nil balance.
	CurrentBalances(ctx context.Context) (*domain.Balances, error)

	// GetBaseline returns the configured starting balances.
	GetBaseline(ctx context.Context) (*domain.Baseline, error)

	// SetBaseline stores the starting balances. Nil fields clear them.
	SetBaseline(ctx context.Context, b domain.Baseline) error
}
