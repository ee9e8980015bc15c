package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spendwise/spendwise_backend/internal/core/domain"
	portsrepo "github.com/spendwise/spendwise_backend/internal/core/ports/repositories"
	portssvc "github.com/spendwise/spendwise_backend/internal/core/ports/services"
	"github.com/spendwise/spendwise_backend/internal/utils/ledger"
)

// ledgerService implements the LedgerSvc interface. Every read recomputes
// from the entry log; nothing here is cached or stored besides the baseline.
type ledgerService struct {
	BaseService
	entryRepo portsrepo.EntryReader
	stateRepo portsrepo.StateRepository
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(entryRepo portsrepo.EntryReader, stateRepo portsrepo.StateRepository) portssvc.LedgerSvc {
	return &ledgerService{
		entryRepo: entryRepo,
		stateRepo: stateRepo,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// PeriodSummary aggregates the entries of the period containing ref.
func (s *ledgerService) PeriodSummary(ctx context.Context, period domain.Period, ref domain.Date) (*domain.Summary, error) {
	return s.RangeSummary(ctx, period.Range(ref))
}

// RangeSummary aggregates the entries of an explicit inclusive range.
func (s *ledgerService) RangeSummary(ctx context.Context, r domain.DateRange) (*domain.Summary, error) {
	entries, err := s.entryRepo.ListEntriesBetween(ctx, r)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries for summary",
			slog.String("start", r.Start.String()),
			slog.String("end", r.End.String()))
		return nil, fmt.Errorf("failed to list entries for summary: %w", err)
	}

	return &domain.Summary{
		Range:  r,
		Totals: ledger.CalculateTotals(entries),
	}, nil
}

// CurrentBalances folds the whole log on top of the user-set baselines.
// A rail with an unset baseline yields nil: no balance can be shown.
func (s *ledgerService) CurrentBalances(ctx context.Context) (*domain.Balances, error) {
	baseline, err := s.stateRepo.GetBaseline(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load baseline")
		return nil, fmt.Errorf("failed to load baseline: %w", err)
	}

	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries for balances")
		return nil, fmt.Errorf("failed to list entries for balances: %w", err)
	}

	return &domain.Balances{
		Bank: ledger.CalculateCurrentBalance(baseline.Bank, entries, domain.ModeUPI),
		Cash: ledger.CalculateCurrentBalance(baseline.Cash, entries, domain.ModeCash),
	}, nil
}

// GetBaseline returns the configured starting balances.
func (s *ledgerService) GetBaseline(ctx context.Context) (*domain.Baseline, error) {
	baseline, err := s.stateRepo.GetBaseline(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load baseline: %w", err)
	}
	return &baseline, nil
}

// SetBaseline stores the starting balances. Nil fields clear them.
func (s *ledgerService) SetBaseline(ctx context.Context, b domain.Baseline) error {
	if err := s.stateRepo.SaveBaseline(ctx, b); err != nil {
		s.LogError(ctx, err, "Failed to save baseline")
		return fmt.Errorf("failed to save baseline: %w", err)
	}
	s.LogInfo(ctx, "Baseline updated",
		slog.Bool("bank_set", b.Bank != nil),
		slog.Bool("cash_set", b.Cash != nil))
	return nil
}
