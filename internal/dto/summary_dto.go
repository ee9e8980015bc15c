package dto

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise_backend/internal/core/domain"
)

// ModeBreakdownResponse splits an amount across the two payment rails.
type ModeBreakdownResponse struct {
	UPI  decimal.Decimal `json:"upi"`
	Cash decimal.Decimal `json:"cash"`
}

// SummaryResponse is the aggregate of one calendar window.
type SummaryResponse struct {
	Start         string                `json:"start"`
	End           string                `json:"end"`
	Expense       decimal.Decimal       `json:"expense"`
	Income        decimal.Decimal       `json:"income"`
	Balance       decimal.Decimal       `json:"balance"`
	ExpenseByMode ModeBreakdownResponse `json:"expenseByMode"`
	IncomeByMode  ModeBreakdownResponse `json:"incomeByMode"`
}

// BalancesResponse carries the derived balances. Null means the matching
// baseline was never set, which is distinct from a zero balance.
type BalancesResponse struct {
	Bank *decimal.Decimal `json:"bank"`
	Cash *decimal.Decimal `json:"cash"`
}

// SetBaselineRequest stores the starting balances. Null fields clear them.
type SetBaselineRequest struct {
	Bank *decimal.Decimal `json:"bank"`
	Cash *decimal.Decimal `json:"cash"`
}

// ToSummaryResponse converts a domain.Summary to its wire form.
func ToSummaryResponse(s *domain.Summary) SummaryResponse {
	return SummaryResponse{
		Start:         s.Range.Start.String(),
		End:           s.Range.End.String(),
		Expense:       s.Totals.Expense,
		Income:        s.Totals.Income,
		Balance:       s.Totals.Balance,
		ExpenseByMode: ModeBreakdownResponse{UPI: s.Totals.ExpenseByMode.UPI, Cash: s.Totals.ExpenseByMode.Cash},
		IncomeByMode:  ModeBreakdownResponse{UPI: s.Totals.IncomeByMode.UPI, Cash: s.Totals.IncomeByMode.Cash},
	}
}
