package dto

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise_backend/internal/core/domain"
)

// SetGoalRequest creates or updates one goal slot. A zero target clears the
// slot. Label only applies to the custom period.
type SetGoalRequest struct {
	Period   domain.GoalPeriod   `json:"period" binding:"required,oneof=daily weekly monthly yearly custom"`
	Category domain.GoalCategory `json:"category" binding:"required,oneof=savings expense"`
	Target   decimal.Decimal     `json:"target"`
	Label    string              `json:"label"`
}

// GoalResponse mirrors a configured goal on the wire.
type GoalResponse struct {
	Period   domain.GoalPeriod   `json:"period"`
	Category domain.GoalCategory `json:"category"`
	Target   decimal.Decimal     `json:"target"`
	Label    string              `json:"label,omitempty"`
}

// GoalProgressResponse is the derived progress record for one goal slot.
type GoalProgressResponse struct {
	CurrentValue decimal.Decimal     `json:"currentValue"`
	TargetGoal   decimal.Decimal     `json:"targetGoal"`
	Progress     decimal.Decimal     `json:"progress"`
	Remaining    decimal.Decimal     `json:"remaining"`
	IsCompleted  bool                `json:"isCompleted"`
	IsOverLimit  bool                `json:"isOverLimit"`
	Category     domain.GoalCategory `json:"category"`
	Period       domain.GoalPeriod   `json:"period"`
}

// ToGoalResponses converts a goal set to wire form.
func ToGoalResponses(s domain.GoalSet) []GoalResponse {
	out := make([]GoalResponse, len(s.Goals))
	for i, g := range s.Goals {
		out[i] = GoalResponse{Period: g.Period, Category: g.Category, Target: g.Target, Label: g.Label}
	}
	return out
}

// ToGoalProgressResponse converts a progress record to wire form.
func ToGoalProgressResponse(p *domain.GoalProgress) GoalProgressResponse {
	return GoalProgressResponse{
		CurrentValue: p.CurrentValue,
		TargetGoal:   p.TargetGoal,
		Progress:     p.Progress,
		Remaining:    p.Remaining,
		IsCompleted:  p.IsCompleted,
		IsOverLimit:  p.IsOverLimit,
		Category:     p.Category,
		Period:       p.Period,
	}
}
