package domain_test

import (
	"testing"

	"github.com/spendwise/spendwise_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestStreak_RegisterActivity_FirstEver(t *testing.T) {
	var s domain.Streak
	today := domain.MustParseDate("2024-05-01")

	changed := s.RegisterActivity(today)

	assert.True(t, changed)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.LongestStreak)
	assert.Equal(t, today, s.LastEntryDate)
}

func TestStreak_RegisterActivity_SameDayIsNoOp(t *testing.T) {
	var s domain.Streak
	today := domain.MustParseDate("2024-05-01")
	s.RegisterActivity(today)

	changed := s.RegisterActivity(today)

	assert.False(t, changed)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.LongestStreak)
}

func TestStreak_RegisterActivity_ConsecutiveDays(t *testing.T) {
	var s domain.Streak
	start := domain.MustParseDate("2024-05-01")

	for i := 0; i < 3; i++ {
		assert.True(t, s.RegisterActivity(start.AddDays(i)))
	}

	assert.Equal(t, 3, s.CurrentStreak)
	assert.Equal(t, 3, s.LongestStreak)
}

func TestStreak_RegisterActivity_GapResetsCurrentOnly(t *testing.T) {
	var s domain.Streak
	start := domain.MustParseDate("2024-05-01")
	for i := 0; i < 3; i++ {
		s.RegisterActivity(start.AddDays(i))
	}

	changed := s.RegisterActivity(start.AddDays(5))

	assert.True(t, changed)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 3, s.LongestStreak)
	assert.Equal(t, start.AddDays(5), s.LastEntryDate)
}

func TestStreak_RegisterActivity_MonthBoundary(t *testing.T) {
	var s domain.Streak
	s.RegisterActivity(domain.MustParseDate("2024-01-31"))

	changed := s.RegisterActivity(domain.MustParseDate("2024-02-01"))

	assert.True(t, changed)
	assert.Equal(t, 2, s.CurrentStreak)
}
