package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spendwise/spendwise_backend/internal/core/domain"
	portsrepo "github.com/spendwise/spendwise_backend/internal/core/ports/repositories"
	portssvc "github.com/spendwise/spendwise_backend/internal/core/ports/services"
)

// streakService implements the StreakSvc interface.
type streakService struct {
	BaseService
	stateRepo portsrepo.StateRepository
}

// NewStreakService creates a new streak service.
func NewStreakService(stateRepo portsrepo.StateRepository) portssvc.StreakSvc {
	return &streakService{stateRepo: stateRepo}
}

var _ portssvc.StreakSvc = (*streakService)(nil)

// RegisterActivity records that an entry was added today. Same-day repeats
// are no-ops and skip the write entirely.
func (s *streakService) RegisterActivity(ctx context.Context, today domain.Date) (domain.Streak, error) {
	streak, err := s.stateRepo.GetStreak(ctx)
	if err != nil {
		return domain.Streak{}, fmt.Errorf("failed to load streak: %w", err)
	}

	if !streak.RegisterActivity(today) {
		return streak, nil
	}

	if err := s.stateRepo.SaveStreak(ctx, streak); err != nil {
		s.LogError(ctx, err, "Failed to save streak")
		return domain.Streak{}, fmt.Errorf("failed to save streak: %w", err)
	}

	s.LogInfo(ctx, "Streak updated",
		slog.Int("current", streak.CurrentStreak),
		slog.Int("longest", streak.LongestStreak))
	return streak, nil
}

// GetStreak returns the current streak record.
func (s *streakService) GetStreak(ctx context.Context) (domain.Streak, error) {
	streak, err := s.stateRepo.GetStreak(ctx)
	if err != nil {
		return domain.Streak{}, fmt.Errorf("failed to load streak: %w", err)
	}
	return streak, nil
}
