package domain

import "github.com/shopspring/decimal"

// EntryType classifies a ledger entry.
type EntryType string

const (
	EntryExpense           EntryType = "expense"
	EntryIncome            EntryType = "income"
	EntryBalanceAdjustment EntryType = "balance_adjustment"
	EntryCashWithdrawal    EntryType = "cash_withdrawal"
	EntryCashDeposit       EntryType = "cash_deposit"
)

// IsValid reports whether t is one of the known entry types.
func (t EntryType) IsValid() bool {
	switch t {
	case EntryExpense, EntryIncome, EntryBalanceAdjustment, EntryCashWithdrawal, EntryCashDeposit:
		return true
	}
	return false
}

// RequiresMode reports whether entries of this type carry a payment mode.
// The two transfer types move money between rails and carry none.
func (t EntryType) RequiresMode() bool {
	switch t {
	case EntryExpense, EntryIncome, EntryBalanceAdjustment:
		return true
	}
	return false
}

// PaymentMode is the rail an entry's money moved through.
type PaymentMode string

const (
	ModeUPI  PaymentMode = "upi"
	ModeCash PaymentMode = "cash"
)

// IsValid reports whether m is a known payment mode.
func (m PaymentMode) IsValid() bool {
	return m == ModeUPI || m == ModeCash
}

// AdjustmentType gives the direction of a balance_adjustment entry.
type AdjustmentType string

const (
	AdjustmentAdd      AdjustmentType = "add"
	AdjustmentSubtract AdjustmentType = "subtract"
)

// IsValid reports whether a is a known adjustment direction.
func (a AdjustmentType) IsValid() bool {
	return a == AdjustmentAdd || a == AdjustmentSubtract
}

// Entry is a single recorded financial event. Entries are immutable once
// created; an edit replaces the entry by ID. The JSON field names are the
// persisted vocabulary and must round-trip unchanged through import/export.
type Entry struct {
	EntryID        string          `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	Type           EntryType       `json:"type"`
	Mode           PaymentMode     `json:"mode,omitempty"`
	AdjustmentType AdjustmentType  `json:"adjustment_type,omitempty"`
	Date           Date            `json:"date"`
	Note           string          `json:"note,omitempty"`
	CategoryID     string          `json:"category_id,omitempty"`
	AuditFields
}

// Normalize fills defaulted fields and strips ones that do not apply, so all
// downstream aggregation can assume fully populated records. A missing mode
// on a mode-carrying entry defaults to upi; transfer entries never carry a
// mode or an adjustment direction.
func (e *Entry) Normalize() {
	if e.Type.RequiresMode() {
		if !e.Mode.IsValid() {
			e.Mode = ModeUPI
		}
	} else {
		e.Mode = ""
	}
	if e.Type != EntryBalanceAdjustment {
		e.AdjustmentType = ""
	}
}
