package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise_backend/internal/core/domain"
	"github.com/spendwise/spendwise_backend/internal/utils/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func entry(t domain.EntryType, mode domain.PaymentMode, amount int64, date string) domain.Entry {
	return domain.Entry{
		Amount: decimal.NewFromInt(amount),
		Type:   t,
		Mode:   mode,
		Date:   domain.MustParseDate(date),
	}
}

func TestCalculateTotals_EmptyLog(t *testing.T) {
	totals := ledger.CalculateTotals(nil)

	assert.True(t, totals.Expense.IsZero())
	assert.True(t, totals.Income.IsZero())
	assert.True(t, totals.Balance.IsZero())
	assert.True(t, totals.ExpenseByMode.UPI.IsZero())
	assert.True(t, totals.ExpenseByMode.Cash.IsZero())
	assert.True(t, totals.IncomeByMode.UPI.IsZero())
	assert.True(t, totals.IncomeByMode.Cash.IsZero())
}

func TestCalculateTotals_NonExpenseCountsAsIncome(t *testing.T) {
	// Every non-expense type lands in the income bucket, including the
	// adjustment and transfer types.
	entries := []domain.Entry{
		entry(domain.EntryIncome, domain.ModeUPI, 500, "2024-01-01"),
		entry(domain.EntryExpense, domain.ModeCash, 200, "2024-01-02"),
		{Amount: decimal.NewFromInt(50), Type: domain.EntryBalanceAdjustment, Mode: domain.ModeUPI, AdjustmentType: domain.AdjustmentAdd, Date: domain.MustParseDate("2024-01-03")},
		{Amount: decimal.NewFromInt(100), Type: domain.EntryCashWithdrawal, Date: domain.MustParseDate("2024-01-04")},
	}

	totals := ledger.CalculateTotals(entries)

	assert.True(t, totals.Expense.Equal(decimal.NewFromInt(200)))
	assert.True(t, totals.Income.Equal(decimal.NewFromInt(650)))
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(450)))
	// Transfer entries carry no mode, so the breakdowns miss them.
	assert.True(t, totals.IncomeByMode.UPI.Equal(decimal.NewFromInt(550)))
	assert.True(t, totals.IncomeByMode.Cash.IsZero())
	assert.True(t, totals.ExpenseByMode.Cash.Equal(decimal.NewFromInt(200)))
	assert.True(t, totals.ExpenseByMode.UPI.IsZero())
}

func TestCalculateTotals_OrderIndependent(t *testing.T) {
	entries := []domain.Entry{
		entry(domain.EntryIncome, domain.ModeUPI, 500, "2024-01-01"),
		entry(domain.EntryExpense, domain.ModeCash, 200, "2024-01-02"),
		entry(domain.EntryExpense, domain.ModeUPI, 75, "2024-01-03"),
	}
	reversed := []domain.Entry{entries[2], entries[1], entries[0]}

	assert.Equal(t, ledger.CalculateTotals(entries), ledger.CalculateTotals(reversed))
}

func TestCalculateCurrentBalance_NilBaseline(t *testing.T) {
	entries := []domain.Entry{
		entry(domain.EntryIncome, domain.ModeUPI, 500, "2024-01-01"),
	}

	assert.Nil(t, ledger.CalculateCurrentBalance(nil, entries, domain.ModeUPI))
}

func TestCalculateCurrentBalance_EndToEnd(t *testing.T) {
	entries := []domain.Entry{
		entry(domain.EntryIncome, domain.ModeUPI, 500, "2024-01-01"),
		entry(domain.EntryExpense, domain.ModeCash, 200, "2024-01-02"),
	}
	bankBaseline := decimalPtr(decimal.NewFromInt(1000))
	cashBaseline := decimalPtr(decimal.NewFromInt(300))

	bank := ledger.CalculateCurrentBalance(bankBaseline, entries, domain.ModeUPI)
	cash := ledger.CalculateCurrentBalance(cashBaseline, entries, domain.ModeCash)

	require.NotNil(t, bank)
	require.NotNil(t, cash)
	assert.True(t, bank.Equal(decimal.NewFromInt(1500)))
	assert.True(t, cash.Equal(decimal.NewFromInt(100)))

	totals := ledger.CalculateTotals(entries)
	assert.True(t, totals.Expense.Equal(decimal.NewFromInt(200)))
	assert.True(t, totals.Income.Equal(decimal.NewFromInt(500)))
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(300)))
}

func TestCalculateCurrentBalance_AdjustmentDirections(t *testing.T) {
	entries := []domain.Entry{
		{Amount: decimal.NewFromInt(100), Type: domain.EntryBalanceAdjustment, Mode: domain.ModeUPI, AdjustmentType: domain.AdjustmentAdd, Date: domain.MustParseDate("2024-02-01")},
		{Amount: decimal.NewFromInt(40), Type: domain.EntryBalanceAdjustment, Mode: domain.ModeUPI, AdjustmentType: domain.AdjustmentSubtract, Date: domain.MustParseDate("2024-02-02")},
	}

	got := ledger.CalculateCurrentBalance(decimalPtr(decimal.NewFromInt(1000)), entries, domain.ModeUPI)

	require.NotNil(t, got)
	assert.True(t, got.Equal(decimal.NewFromInt(1060)))
}

func TestCalculateCurrentBalance_MissingAdjustmentTypeSkipped(t *testing.T) {
	// An adjustment without a direction contributes nothing to the balance
	// fold but still lands in the income bucket of the totals. The two
	// functions diverge on purpose.
	entries := []domain.Entry{
		{Amount: decimal.NewFromInt(50), Type: domain.EntryBalanceAdjustment, Mode: domain.ModeUPI, Date: domain.MustParseDate("2024-03-01")},
	}

	bank := ledger.CalculateCurrentBalance(decimalPtr(decimal.NewFromInt(1000)), entries, domain.ModeUPI)
	require.NotNil(t, bank)
	assert.True(t, bank.Equal(decimal.NewFromInt(1000)))

	totals := ledger.CalculateTotals(entries)
	assert.True(t, totals.Income.Equal(decimal.NewFromInt(50)))
}

func TestCalculateCurrentBalance_TransfersNeverMatchAMode(t *testing.T) {
	entries := []domain.Entry{
		{Amount: decimal.NewFromInt(100), Type: domain.EntryCashWithdrawal, Date: domain.MustParseDate("2024-04-01")},
		{Amount: decimal.NewFromInt(60), Type: domain.EntryCashDeposit, Date: domain.MustParseDate("2024-04-02")},
	}
	for i := range entries {
		entries[i].Normalize()
	}

	bank := ledger.CalculateCurrentBalance(decimalPtr(decimal.NewFromInt(500)), entries, domain.ModeUPI)
	cash := ledger.CalculateCurrentBalance(decimalPtr(decimal.NewFromInt(500)), entries, domain.ModeCash)

	require.NotNil(t, bank)
	require.NotNil(t, cash)
	assert.True(t, bank.Equal(decimal.NewFromInt(500)))
	assert.True(t, cash.Equal(decimal.NewFromInt(500)))
}
