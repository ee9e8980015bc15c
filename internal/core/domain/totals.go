package domain

import "github.com/shopspring/decimal"

// ModeBreakdown splits an amount across the two payment rails.
type ModeBreakdown struct {
	UPI  decimal.Decimal `json:"upi"`
	Cash decimal.Decimal `json:"cash"`
}

// Totals is the aggregate of an entry set. Every non-expense entry counts as
// income, including balance adjustments and the two transfer types; callers
// that want pure income must pre-filter. Balance is always income minus
// expense.
type Totals struct {
	Expense       decimal.Decimal `json:"expense"`
	Income        decimal.Decimal `json:"income"`
	Balance       decimal.Decimal `json:"balance"`
	ExpenseByMode ModeBreakdown   `json:"expenseByMode"`
	IncomeByMode  ModeBreakdown   `json:"incomeByMode"`
}

// Baseline holds the user-set starting balances. A nil value means the
// baseline was never set and the corresponding current balance cannot be
// shown. Baselines are set once by the user, never re-derived.
type Baseline struct {
	Bank *decimal.Decimal `json:"bank"`
	Cash *decimal.Decimal `json:"cash"`
}

// Balances are the derived current balances per rail. Nil mirrors an unset
// baseline: "no balance can be computed", which is distinct from zero.
type Balances struct {
	Bank *decimal.Decimal `json:"bank"`
	Cash *decimal.Decimal `json:"cash"`
}

// Summary is the aggregate of one calendar window.
type Summary struct {
	Range  DateRange `json:"range"`
	Totals Totals    `json:"totals"`
}
