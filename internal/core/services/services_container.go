package services

import (
	portsrepo "github.com/spendwise/spendwise_backend/internal/core/ports/repositories"
	portssvc "github.com/spendwise/spendwise_backend/internal/core/ports/services"
	"github.com/spendwise/spendwise_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Derivation-only services first; the entry service hangs the streak
	// and achievement updates off its write path.
	container.Ledger = NewLedgerService(repos.EntryRepo, repos.StateRepo)
	container.Goal = NewGoalService(repos.EntryRepo, repos.StateRepo)
	container.Streak = NewStreakService(repos.StateRepo)
	container.Achievement = NewAchievementService(repos.EntryRepo, repos.StateRepo, container.Goal)

	container.Entry = NewEntryService(
		repos.EntryRepo,
		WithStreakService(container.Streak),
		WithAchievementService(container.Achievement),
	)

	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Auth = NewAuthService(cfg)

	return container
}
