// Package ledger holds the pure aggregation functions the services and
// repositories share. Everything here is a side-effect-free fold over an
// entry slice, safe to call concurrently.
package ledger

import (
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise_backend/internal/core/domain"
)

// CalculateTotals folds an entry set into expense/income totals and per-mode
// breakdowns. Every non-expense entry is summed as income, including balance
// adjustments and the two transfer types; callers that want those excluded
// must filter first. Balance is income minus expense, exactly.
func CalculateTotals(entries []domain.Entry) domain.Totals {
	t := domain.Totals{
		Expense:       decimal.Zero,
		Income:        decimal.Zero,
		Balance:       decimal.Zero,
		ExpenseByMode: domain.ModeBreakdown{UPI: decimal.Zero, Cash: decimal.Zero},
		IncomeByMode:  domain.ModeBreakdown{UPI: decimal.Zero, Cash: decimal.Zero},
	}

	for _, e := range entries {
		// The zero Decimal is 0, so an entry that arrived without an
		// amount contributes nothing rather than failing the fold.
		if e.Type == domain.EntryExpense {
			t.Expense = t.Expense.Add(e.Amount)
			switch e.Mode {
			case domain.ModeUPI:
				t.ExpenseByMode.UPI = t.ExpenseByMode.UPI.Add(e.Amount)
			case domain.ModeCash:
				t.ExpenseByMode.Cash = t.ExpenseByMode.Cash.Add(e.Amount)
			}
			continue
		}
		t.Income = t.Income.Add(e.Amount)
		switch e.Mode {
		case domain.ModeUPI:
			t.IncomeByMode.UPI = t.IncomeByMode.UPI.Add(e.Amount)
		case domain.ModeCash:
			t.IncomeByMode.Cash = t.IncomeByMode.Cash.Add(e.Amount)
		}
	}

	t.Balance = t.Income.Sub(t.Expense)
	return t
}

// CalculateCurrentBalance folds the entries matching the requested mode on
// top of the user-set baseline. A nil baseline means no balance can be
// computed and nil is returned.
//
// Only income, expense and balance_adjustment entries carry a mode, so the
// two transfer types never match and move neither balance. A
// balance_adjustment without a valid direction is skipped with a warning,
// never guessed.
func CalculateCurrentBalance(baseline *decimal.Decimal, entries []domain.Entry, mode domain.PaymentMode) *decimal.Decimal {
	if baseline == nil {
		return nil
	}

	balance := *baseline
	for _, e := range entries {
		if e.Mode != mode {
			continue
		}
		switch e.Type {
		case domain.EntryIncome:
			balance = balance.Add(e.Amount)
		case domain.EntryExpense:
			balance = balance.Sub(e.Amount)
		case domain.EntryBalanceAdjustment:
			switch e.AdjustmentType {
			case domain.AdjustmentAdd:
				balance = balance.Add(e.Amount)
			case domain.AdjustmentSubtract:
				balance = balance.Sub(e.Amount)
			default:
				slog.Warn("balance_adjustment entry without adjustment_type skipped",
					slog.String("entry_id", e.EntryID))
			}
		}
	}
	return &balance
}
