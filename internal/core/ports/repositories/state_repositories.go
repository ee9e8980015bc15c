package repositories

import (
	"context"

	"github.com/spendwise/spendwise_backend/internal/core/domain"
)

// StateRepository persists the small derived-state blobs, one JSON document
// per key. A missing blob is not an error: each Get returns the type's
// defaults so a fresh install behaves correctly.
type StateRepository interface {
	GetBaseline(ctx context.Context) (domain.Baseline, error)
	SaveBaseline(ctx context.Context, b domain.Baseline) error

	GetGoals(ctx context.Context) (domain.GoalSet, error)
	SaveGoals(ctx context.Context, s domain.GoalSet) error

	GetCompletionFlags(ctx context.Context) (domain.CompletionFlags, error)
	SaveCompletionFlags(ctx context.Context, f domain.CompletionFlags) error

	GetStreak(ctx context.Context) (domain.Streak, error)
	SaveStreak(ctx context.Context, s domain.Streak) error

	GetUnlockedAchievements(ctx context.Context) (domain.UnlockedAchievements, error)
	SaveUnlockedAchievements(ctx context.Context, u domain.UnlockedAchievements) error
}
