package domain

import "github.com/shopspring/decimal"

// AchievementContext carries the freshly computed aggregates an achievement
// rule may inspect. SavingsProgress holds progress for the monthly, yearly
// and custom savings goals only.
type AchievementContext struct {
	EntryCount      int
	Streak          Streak
	Totals          Totals
	SavingsProgress map[GoalPeriod]GoalProgress
}

// AchievementRule is one row of the fixed rule table.
type AchievementRule struct {
	ID          string
	Title       string
	Description string
	Icon        string
	// GoalPeriod is set on goal-completion rules; unlocking one also sets
	// the matching completion flag.
	GoalPeriod GoalPeriod
	Check      func(AchievementContext) bool
}

// AchievementStatus pairs a rule with its current unlocked state for display.
type AchievementStatus struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
}

// UnlockedAchievements is the persisted, monotonically growing set of
// unlocked rule IDs, stored as a flat list.
type UnlockedAchievements struct {
	IDs []string `json:"ids"`
}

// Contains reports whether the rule ID is already unlocked.
func (u UnlockedAchievements) Contains(id string) bool {
	for _, v := range u.IDs {
		if v == id {
			return true
		}
	}
	return false
}

func entryCountAtLeast(n int) func(AchievementContext) bool {
	return func(c AchievementContext) bool { return c.EntryCount >= n }
}

func streakAtLeast(n int) func(AchievementContext) bool {
	return func(c AchievementContext) bool { return c.Streak.CurrentStreak >= n }
}

func balanceAtLeast(n int64) func(AchievementContext) bool {
	threshold := decimal.NewFromInt(n)
	return func(c AchievementContext) bool {
		return c.Totals.Balance.GreaterThanOrEqual(threshold)
	}
}

func savingsGoalCompleted(p GoalPeriod) func(AchievementContext) bool {
	return func(c AchievementContext) bool {
		return c.SavingsProgress[p].IsCompleted
	}
}

// AchievementRules is the fixed, ordered rule table. IDs are persisted and
// must stay stable across releases.
var AchievementRules = []AchievementRule{
	{ID: "first_step", Title: "First Step", Description: "Record your first entry", Icon: "🌱", Check: entryCountAtLeast(1)},
	{ID: "getting_started", Title: "Getting Started", Description: "Record 10 entries", Icon: "📒", Check: entryCountAtLeast(10)},
	{ID: "habit_builder", Title: "Habit Builder", Description: "Record 50 entries", Icon: "🗂️", Check: entryCountAtLeast(50)},
	{ID: "century_club", Title: "Century Club", Description: "Record 100 entries", Icon: "💯", Check: entryCountAtLeast(100)},
	{ID: "streak_starter", Title: "Streak Starter", Description: "Log entries 3 days in a row", Icon: "✨", Check: streakAtLeast(3)},
	{ID: "week_warrior", Title: "Week Warrior", Description: "Log entries 7 days in a row", Icon: "🔥", Check: streakAtLeast(7)},
	{ID: "monthly_master", Title: "Monthly Master", Description: "Log entries 30 days in a row", Icon: "🏆", Check: streakAtLeast(30)},
	{ID: "penny_saver", Title: "Penny Saver", Description: "Reach an all-time balance of 1,000", Icon: "🪙", Check: balanceAtLeast(1000)},
	{ID: "wealth_builder", Title: "Wealth Builder", Description: "Reach an all-time balance of 10,000", Icon: "💰", Check: balanceAtLeast(10000)},
	{ID: "monthly_goal_met", Title: "Monthly Goal Met", Description: "Complete your monthly savings goal", Icon: "🎯", GoalPeriod: GoalMonthly, Check: savingsGoalCompleted(GoalMonthly)},
	{ID: "yearly_goal_met", Title: "Yearly Goal Met", Description: "Complete your yearly savings goal", Icon: "🎉", GoalPeriod: GoalYearly, Check: savingsGoalCompleted(GoalYearly)},
	{ID: "dream_chaser", Title: "Dream Chaser", Description: "Complete a custom savings goal", Icon: "🌟", GoalPeriod: GoalCustom, Check: savingsGoalCompleted(GoalCustom)},
}
