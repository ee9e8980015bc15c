package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise_backend/internal/apperrors"
	"github.com/spendwise/spendwise_backend/internal/core/domain"
	portsrepo "github.com/spendwise/spendwise_backend/internal/core/ports/repositories"
	portssvc "github.com/spendwise/spendwise_backend/internal/core/ports/services"
	"github.com/spendwise/spendwise_backend/internal/utils/ledger"
)

var oneHundred = decimal.NewFromInt(100)

// goalService implements the GoalSvcFacade interface.
type goalService struct {
	BaseService
	entryRepo portsrepo.EntryReader
	stateRepo portsrepo.StateRepository
	today     func() domain.Date
}

// GoalServiceOption is a functional option for configuring the goal service.
type GoalServiceOption func(*goalService)

// WithGoalClock overrides the current-day source, for tests.
func WithGoalClock(today func() domain.Date) GoalServiceOption {
	return func(s *goalService) { s.today = today }
}

// NewGoalService creates a new goal service with the provided options.
func NewGoalService(entryRepo portsrepo.EntryReader, stateRepo portsrepo.StateRepository, options ...GoalServiceOption) portssvc.GoalSvcFacade {
	svc := &goalService{
		entryRepo: entryRepo,
		stateRepo: stateRepo,
		today:     domain.Today,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

// ListGoals returns all configured goals.
func (s *goalService) ListGoals(ctx context.Context) (domain.GoalSet, error) {
	goals, err := s.stateRepo.GetGoals(ctx)
	if err != nil {
		return domain.GoalSet{}, fmt.Errorf("failed to load goals: %w", err)
	}
	return goals, nil
}

// SetGoal creates or updates a goal slot. A zero target clears the slot.
// Changing a savings target resets its completion flag so the matching
// one-time achievement can be earned against the new target.
func (s *goalService) SetGoal(ctx context.Context, goal domain.Goal) error {
	if !goal.Period.IsValid() {
		return fmt.Errorf("%w: unknown goal period %q", apperrors.ErrValidation, goal.Period)
	}
	if !goal.Category.IsValid() {
		return fmt.Errorf("%w: unknown goal category %q", apperrors.ErrValidation, goal.Category)
	}
	if goal.Target.IsNegative() {
		return fmt.Errorf("%w: goal target cannot be negative", apperrors.ErrValidation)
	}
	if goal.Period != domain.GoalCustom {
		goal.Label = ""
	}

	goals, err := s.stateRepo.GetGoals(ctx)
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}

	key := goal.Key()
	previous, existed := goals.Find(key)

	updated := make([]domain.Goal, 0, len(goals.Goals)+1)
	for _, g := range goals.Goals {
		if g.Key() != key {
			updated = append(updated, g)
		}
	}
	if !goal.Target.IsZero() {
		updated = append(updated, goal)
	}
	if len(updated) > domain.MaxGoals {
		return fmt.Errorf("%w: at most %d goals can be configured", apperrors.ErrValidation, domain.MaxGoals)
	}

	if err := s.stateRepo.SaveGoals(ctx, domain.GoalSet{Goals: updated}); err != nil {
		s.LogError(ctx, err, "Failed to save goals")
		return fmt.Errorf("failed to save goals: %w", err)
	}

	// A changed savings target invalidates its one-time completion flag.
	targetChanged := !existed || !previous.Target.Equal(goal.Target)
	if goal.Category == domain.GoalSavings && targetChanged {
		flags, err := s.stateRepo.GetCompletionFlags(ctx)
		if err != nil {
			return fmt.Errorf("failed to load completion flags: %w", err)
		}
		if flags.ForPeriod(goal.Period) {
			flags.SetForPeriod(goal.Period, false)
			if err := s.stateRepo.SaveCompletionFlags(ctx, flags); err != nil {
				return fmt.Errorf("failed to reset completion flag: %w", err)
			}
			s.LogInfo(ctx, "Goal completion flag reset", slog.String("period", string(goal.Period)))
		}
	}

	s.LogInfo(ctx, "Goal updated",
		slog.String("period", string(goal.Period)),
		slog.String("category", string(goal.Category)),
		slog.String("target", goal.Target.String()))
	return nil
}

// GoalProgress derives the progress record for one goal slot. An unset or
// zero target reports zero progress and no completion, never an error and
// never a division by zero.
func (s *goalService) GoalProgress(ctx context.Context, period domain.GoalPeriod, category domain.GoalCategory) (*domain.GoalProgress, error) {
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: unknown goal period %q", apperrors.ErrValidation, period)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown goal category %q", apperrors.ErrValidation, category)
	}

	goals, err := s.stateRepo.GetGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	entries, err := s.entriesForGoalPeriod(ctx, period)
	if err != nil {
		return nil, err
	}

	totals := ledger.CalculateTotals(entries)
	goal, _ := goals.Find(domain.GoalKey{Period: period, Category: category})
	return deriveGoalProgress(totals, goal, period, category), nil
}

// entriesForGoalPeriod selects the aggregation window for a goal period.
// Custom goals are unbounded and aggregate the entire log.
func (s *goalService) entriesForGoalPeriod(ctx context.Context, period domain.GoalPeriod) ([]domain.Entry, error) {
	if p, bounded := period.AggregationPeriod(); bounded {
		entries, err := s.entryRepo.ListEntriesBetween(ctx, p.Range(s.today()))
		if err != nil {
			return nil, fmt.Errorf("failed to list entries for goal period %s: %w", period, err)
		}
		return entries, nil
	}
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for custom goal: %w", err)
	}
	return entries, nil
}

// deriveGoalProgress turns totals plus a configured target into the progress
// record. Savings goals complete at or above the target; expense goals are
// limits that complete while spending stays at or under it.
func deriveGoalProgress(totals domain.Totals, goal domain.Goal, period domain.GoalPeriod, category domain.GoalCategory) *domain.GoalProgress {
	current := totals.Balance
	if category == domain.GoalExpense {
		current = totals.Expense
	}

	progress := &domain.GoalProgress{
		CurrentValue: current,
		TargetGoal:   goal.Target,
		Progress:     decimal.Zero,
		Remaining:    decimal.Zero,
		Category:     category,
		Period:       period,
	}

	if goal.Target.IsZero() {
		// Unset goal: progress undefined, reported as zero.
		return progress
	}

	pct := current.Div(goal.Target).Mul(oneHundred)
	if pct.GreaterThan(oneHundred) {
		pct = oneHundred
	}
	progress.Progress = pct

	remaining := goal.Target.Sub(current)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	progress.Remaining = remaining

	if category == domain.GoalSavings {
		progress.IsCompleted = current.GreaterThanOrEqual(goal.Target)
	} else {
		progress.IsCompleted = current.LessThanOrEqual(goal.Target)
		progress.IsOverLimit = current.GreaterThan(goal.Target)
	}
	return progress
}

// SavingsProgressForAchievements derives progress for the savings goal
// periods the achievement engine tracks.
func (s *goalService) SavingsProgressForAchievements(ctx context.Context) (map[domain.GoalPeriod]domain.GoalProgress, error) {
	out := make(map[domain.GoalPeriod]domain.GoalProgress, 3)
	for _, period := range []domain.GoalPeriod{domain.GoalMonthly, domain.GoalYearly, domain.GoalCustom} {
		p, err := s.GoalProgress(ctx, period, domain.GoalSavings)
		if err != nil {
			return nil, err
		}
		out[period] = *p
	}
	return out, nil
}
