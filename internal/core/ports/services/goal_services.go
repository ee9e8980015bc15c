package services

import (
	"context"

	"github.com/spendwise/spendwise_backend/internal/core/domain"
)

// GoalReaderSvc defines read operations over the configured goals.
type GoalReaderSvc interface {
	// ListGoals returns all configured goals.
	ListGoals(ctx context.Context) (domain.GoalSet, error)

	// GoalProgress derives the progress record for one goal slot. A slot
	// with no configured target reports zero progress, never an error.
	GoalProgress(ctx context.Context, period domain.GoalPeriod, category domain.GoalCategory) (*domain.GoalProgress, error)

	// SavingsProgressForAchievements derives progress for the savings goal
	// periods the achievement engine tracks (monthly, yearly, custom).
	SavingsProgressForAchievements(ctx context.Context) (map[domain.GoalPeriod]domain.GoalProgress, error)
}

// GoalWriterSvc defines write operations over the configured goals.
type GoalWriterSvc interface {
	// SetGoal creates or updates a goal slot. A zero target clears the
	// slot. Changing a savings target resets its completion flag.
	SetGoal(ctx context.Context, goal domain.Goal) error
}

// GoalSvcFacade combines all goal service interfaces.
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}
