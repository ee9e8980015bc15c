package services_test

import (
	"context"

	"github.com/spendwise/spendwise_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockEntryRepository is a mock type for the EntryRepositoryFacade interface,
// shared by the service tests in this package.
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListEntriesBetween(ctx context.Context, r domain.DateRange) ([]domain.Entry, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) CountEntries(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockEntryRepository) ReplaceAllEntries(ctx context.Context, entries []domain.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// MockStateRepository is a mock type for the StateRepository interface.
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) GetBaseline(ctx context.Context) (domain.Baseline, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Baseline), args.Error(1)
}

func (m *MockStateRepository) SaveBaseline(ctx context.Context, b domain.Baseline) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockStateRepository) GetGoals(ctx context.Context) (domain.GoalSet, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.GoalSet), args.Error(1)
}

func (m *MockStateRepository) SaveGoals(ctx context.Context, s domain.GoalSet) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStateRepository) GetCompletionFlags(ctx context.Context) (domain.CompletionFlags, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CompletionFlags), args.Error(1)
}

func (m *MockStateRepository) SaveCompletionFlags(ctx context.Context, f domain.CompletionFlags) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockStateRepository) GetStreak(ctx context.Context) (domain.Streak, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Streak), args.Error(1)
}

func (m *MockStateRepository) SaveStreak(ctx context.Context, s domain.Streak) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStateRepository) GetUnlockedAchievements(ctx context.Context) (domain.UnlockedAchievements, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.UnlockedAchievements), args.Error(1)
}

func (m *MockStateRepository) SaveUnlockedAchievements(ctx context.Context, u domain.UnlockedAchievements) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
