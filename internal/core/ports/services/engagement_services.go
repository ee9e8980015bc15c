package services

import (
	"context"

	"github.com/spendwise/spendwise_backend/internal/core/domain"
)

// StreakSvc maintains the consecutive-activity record.
type StreakSvc interface {
	// RegisterActivity records that an entry was added today and returns
	// the updated streak. Idempotent within a calendar day.
	RegisterActivity(ctx context.Context, today domain.Date) (domain.Streak, error)

	// GetStreak returns the current streak record.
	GetStreak(ctx context.Context) (domain.Streak, error)
}

// AchievementSvc evaluates the fixed rule table against fresh aggregates.
type AchievementSvc interface {
	// CheckAchievements evaluates every still-locked rule, persists any new
	// unlocks and returns both the newly unlocked rules and the full table
	// with current unlocked flags. Unlocking is strictly monotonic.
	CheckAchievements(ctx context.Context) (newlyUnlocked []domain.AchievementStatus, all []domain.AchievementStatus, err error)

	// ListAchievements returns the full rule table with unlocked flags,
	// without evaluating or persisting anything.
	ListAchievements(ctx context.Context) ([]domain.AchievementStatus, error)
}
