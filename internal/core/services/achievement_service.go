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

// achievementService implements the AchievementSvc interface over the fixed
// rule table in domain.AchievementRules.
type achievementService struct {
	BaseService
	entryRepo portsrepo.EntryReader
	stateRepo portsrepo.StateRepository
	goalSvc   portssvc.GoalReaderSvc
	rules     []domain.AchievementRule
}

// AchievementServiceOption is a functional option for configuring the
// achievement service.
type AchievementServiceOption func(*achievementService)

// WithAchievementRules overrides the rule table, for tests.
func WithAchievementRules(rules []domain.AchievementRule) AchievementServiceOption {
	return func(s *achievementService) { s.rules = rules }
}

// NewAchievementService creates a new achievement service with the provided
// options.
func NewAchievementService(entryRepo portsrepo.EntryReader, stateRepo portsrepo.StateRepository, goalSvc portssvc.GoalReaderSvc, options ...AchievementServiceOption) portssvc.AchievementSvc {
	svc := &achievementService{
		entryRepo: entryRepo,
		stateRepo: stateRepo,
		goalSvc:   goalSvc,
		rules:     domain.AchievementRules,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AchievementSvc = (*achievementService)(nil)

// CheckAchievements evaluates every still-locked rule against freshly
// computed aggregates. The unlocked set only grows; a rule whose predicate
// turns false again stays unlocked. The set persists only when it changed.
func (s *achievementService) CheckAchievements(ctx context.Context) ([]domain.AchievementStatus, []domain.AchievementStatus, error) {
	unlocked, err := s.stateRepo.GetUnlockedAchievements(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load unlocked achievements: %w", err)
	}

	actx, err := s.buildContext(ctx)
	if err != nil {
		return nil, nil, err
	}

	var newly []domain.AchievementStatus
	var flagPeriods []domain.GoalPeriod
	for _, rule := range s.rules {
		if unlocked.Contains(rule.ID) {
			continue
		}
		if !rule.Check(*actx) {
			continue
		}
		unlocked.IDs = append(unlocked.IDs, rule.ID)
		newly = append(newly, statusFor(rule, true))
		if rule.GoalPeriod != "" {
			flagPeriods = append(flagPeriods, rule.GoalPeriod)
		}
	}

	if len(newly) > 0 {
		if err := s.stateRepo.SaveUnlockedAchievements(ctx, unlocked); err != nil {
			s.LogError(ctx, err, "Failed to persist unlocked achievements")
			return nil, nil, fmt.Errorf("failed to persist unlocked achievements: %w", err)
		}
		for _, a := range newly {
			s.LogInfo(ctx, "Achievement unlocked", slog.String("achievement_id", a.ID))
		}
	}

	// Goal-completion unlocks also raise the matching completion flag;
	// the flag is only ever cleared by an explicit goal-target change.
	if len(flagPeriods) > 0 {
		if err := s.raiseCompletionFlags(ctx, flagPeriods); err != nil {
			return nil, nil, err
		}
	}

	return newly, s.statuses(unlocked), nil
}

// ListAchievements returns the full rule table with unlocked flags, without
// evaluating or persisting anything.
func (s *achievementService) ListAchievements(ctx context.Context) ([]domain.AchievementStatus, error) {
	unlocked, err := s.stateRepo.GetUnlockedAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load unlocked achievements: %w", err)
	}
	return s.statuses(unlocked), nil
}

// buildContext computes the aggregates the rule predicates inspect.
func (s *achievementService) buildContext(ctx context.Context) (*domain.AchievementContext, error) {
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for achievement check: %w", err)
	}

	streak, err := s.stateRepo.GetStreak(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load streak for achievement check: %w", err)
	}

	savings, err := s.goalSvc.SavingsProgressForAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to derive goal progress for achievement check: %w", err)
	}

	return &domain.AchievementContext{
		EntryCount:      len(entries),
		Streak:          streak,
		Totals:          ledger.CalculateTotals(entries),
		SavingsProgress: savings,
	}, nil
}

func (s *achievementService) raiseCompletionFlags(ctx context.Context, periods []domain.GoalPeriod) error {
	flags, err := s.stateRepo.GetCompletionFlags(ctx)
	if err != nil {
		return fmt.Errorf("failed to load completion flags: %w", err)
	}
	changed := false
	for _, p := range periods {
		if !flags.ForPeriod(p) {
			flags.SetForPeriod(p, true)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	if err := s.stateRepo.SaveCompletionFlags(ctx, flags); err != nil {
		return fmt.Errorf("failed to save completion flags: %w", err)
	}
	return nil
}

func (s *achievementService) statuses(unlocked domain.UnlockedAchievements) []domain.AchievementStatus {
	out := make([]domain.AchievementStatus, len(s.rules))
	for i, rule := range s.rules {
		out[i] = statusFor(rule, unlocked.Contains(rule.ID))
	}
	return out
}

func statusFor(rule domain.AchievementRule, unlocked bool) domain.AchievementStatus {
	return domain.AchievementStatus{
		ID:          rule.ID,
		Title:       rule.Title,
		Description: rule.Description,
		Icon:        rule.Icon,
		Unlocked:    unlocked,
	}
}
