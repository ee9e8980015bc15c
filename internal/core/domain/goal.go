package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxGoals caps the number of independent goal targets a user may configure.
const MaxGoals = 10

// GoalPeriod is the window a goal target applies to. Unlike Period it has no
// quarterly variant and adds "custom", an unbounded window with a user label.
type GoalPeriod string

const (
	GoalDaily   GoalPeriod = "daily"
	GoalWeekly  GoalPeriod = "weekly"
	GoalMonthly GoalPeriod = "monthly"
	GoalYearly  GoalPeriod = "yearly"
	GoalCustom  GoalPeriod = "custom"
)

// IsValid reports whether p is a known goal period.
func (p GoalPeriod) IsValid() bool {
	switch p {
	case GoalDaily, GoalWeekly, GoalMonthly, GoalYearly, GoalCustom:
		return true
	}
	return false
}

// ParseGoalPeriod parses a goal period keyword.
func ParseGoalPeriod(s string) (GoalPeriod, error) {
	p := GoalPeriod(strings.ToLower(s))
	if !p.IsValid() {
		return "", fmt.Errorf("unknown goal period %q", s)
	}
	return p, nil
}

// AggregationPeriod maps a bounded goal period to its Period keyword.
// GoalCustom has no calendar bound; ok is false and the caller aggregates
// over the entire entry log.
func (p GoalPeriod) AggregationPeriod() (Period, bool) {
	switch p {
	case GoalDaily:
		return PeriodToday, true
	case GoalWeekly:
		return PeriodWeekly, true
	case GoalMonthly:
		return PeriodMonthly, true
	case GoalYearly:
		return PeriodYearly, true
	}
	return PeriodToday, false
}

// GoalCategory distinguishes a savings target (reach or exceed) from an
// expense limit (stay under).
type GoalCategory string

const (
	GoalSavings GoalCategory = "savings"
	GoalExpense GoalCategory = "expense"
)

// IsValid reports whether c is a known goal category.
func (c GoalCategory) IsValid() bool {
	return c == GoalSavings || c == GoalExpense
}

// ParseGoalCategory parses a goal category keyword.
func ParseGoalCategory(s string) (GoalCategory, error) {
	c := GoalCategory(strings.ToLower(s))
	if !c.IsValid() {
		return "", fmt.Errorf("unknown goal category %q", s)
	}
	return c, nil
}

// GoalKey identifies one goal slot.
type GoalKey struct {
	Period   GoalPeriod   `json:"period"`
	Category GoalCategory `json:"category"`
}

// Goal is one configured target. A zero target means the goal is not set:
// it is not displayed and its progress is undefined (reported as zero).
type Goal struct {
	Period   GoalPeriod      `json:"period"`
	Category GoalCategory    `json:"category"`
	Target   decimal.Decimal `json:"target"`
	Label    string          `json:"label,omitempty"` // custom goals only
}

// Key returns the slot this goal occupies.
func (g Goal) Key() GoalKey {
	return GoalKey{Period: g.Period, Category: g.Category}
}

// GoalSet is the persisted collection of configured goals, at most MaxGoals.
type GoalSet struct {
	Goals []Goal `json:"goals"`
}

// Find returns the goal for the given slot, if configured.
func (s GoalSet) Find(key GoalKey) (Goal, bool) {
	for _, g := range s.Goals {
		if g.Key() == key {
			return g, true
		}
	}
	return Goal{}, false
}

// GoalProgress is the derived progress record for one goal slot.
// For savings goals IsCompleted means the target was reached; for expense
// goals it means spending is still within the limit, and IsOverLimit flags
// the breach. Progress is capped at 100 for display.
type GoalProgress struct {
	CurrentValue decimal.Decimal `json:"currentValue"`
	TargetGoal   decimal.Decimal `json:"targetGoal"`
	Progress     decimal.Decimal `json:"progress"`
	Remaining    decimal.Decimal `json:"remaining"`
	IsCompleted  bool            `json:"isCompleted"`
	IsOverLimit  bool            `json:"isOverLimit"`
	Category     GoalCategory    `json:"category"`
	Period       GoalPeriod      `json:"period"`
}

// CompletionFlags records which savings goals have triggered their one-time
// achievement. A flag is reset explicitly when the matching target changes,
// never by the achievement engine itself.
type CompletionFlags struct {
	Monthly bool `json:"monthly"`
	Yearly  bool `json:"yearly"`
	Custom  bool `json:"custom"`
}

// ForPeriod returns the flag for a savings goal period, if one is tracked.
func (f CompletionFlags) ForPeriod(p GoalPeriod) bool {
	switch p {
	case GoalMonthly:
		return f.Monthly
	case GoalYearly:
		return f.Yearly
	case GoalCustom:
		return f.Custom
	}
	return false
}

// SetForPeriod sets the flag for a tracked savings goal period.
func (f *CompletionFlags) SetForPeriod(p GoalPeriod, v bool) {
	switch p {
	case GoalMonthly:
		f.Monthly = v
	case GoalYearly:
		f.Yearly = v
	case GoalCustom:
		f.Custom = v
	}
}
