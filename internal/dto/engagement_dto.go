package dto

import "github.com/spendwise/spendwise_backend/internal/core/domain"

// StreakResponse mirrors the streak record on the wire. LastEntryDate is
// empty until the first activity is registered.
type StreakResponse struct {
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
	LastEntryDate string `json:"lastEntryDate,omitempty"`
}

// AchievementCheckResponse carries the outcome of an achievement check.
type AchievementCheckResponse struct {
	NewlyUnlocked []domain.AchievementStatus `json:"newlyUnlocked"`
	Achievements  []domain.AchievementStatus `json:"achievements"`
}

// ToStreakResponse converts a streak record to wire form.
func ToStreakResponse(s domain.Streak) StreakResponse {
	resp := StreakResponse{
		CurrentStreak: s.CurrentStreak,
		LongestStreak: s.LongestStreak,
	}
	if !s.LastEntryDate.IsZero() {
		resp.LastEntryDate = s.LastEntryDate.String()
	}
	return resp
}
