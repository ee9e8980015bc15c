package dto

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise_backend/internal/core/domain"
)

// CreateEntryRequest defines the data needed to record a new entry.
// The JSON field names are the persisted entry vocabulary and must match the
// export/import format exactly.
type CreateEntryRequest struct {
	Amount         decimal.Decimal       `json:"amount" binding:"required"`
	Type           domain.EntryType      `json:"type" binding:"required,oneof=expense income balance_adjustment cash_withdrawal cash_deposit"`
	Mode           domain.PaymentMode    `json:"mode" binding:"omitempty,oneof=upi cash"`
	AdjustmentType domain.AdjustmentType `json:"adjustment_type" binding:"omitempty,oneof=add subtract"`
	Date           domain.Date           `json:"date" binding:"required"`
	Note           string                `json:"note"`
	CategoryID     string                `json:"category_id"`
}

// ImportEntry is one record of a whole-log replacement. An empty ID gets a
// generated one, so exports from older versions keep importing.
type ImportEntry struct {
	ID             string                `json:"id"`
	Amount         decimal.Decimal       `json:"amount" binding:"required"`
	Type           domain.EntryType      `json:"type" binding:"required,oneof=expense income balance_adjustment cash_withdrawal cash_deposit"`
	Mode           domain.PaymentMode    `json:"mode" binding:"omitempty,oneof=upi cash"`
	AdjustmentType domain.AdjustmentType `json:"adjustment_type" binding:"omitempty,oneof=add subtract"`
	Date           domain.Date           `json:"date" binding:"required"`
	Note           string                `json:"note"`
	CategoryID     string                `json:"category_id"`
}

// ReplaceEntriesRequest swaps the entire entry log.
type ReplaceEntriesRequest struct {
	Entries []ImportEntry `json:"entries" binding:"required,dive"`
}

// ListEntriesParams scopes an entry listing. Period and Range are mutually
// exclusive; with neither set the whole log is returned.
type ListEntriesParams struct {
	Period *domain.Period
	Ref    *domain.Date // reference date for Period, defaults to today
	Range  *domain.DateRange
}

// EntryResponse mirrors domain.Entry on the wire.
type EntryResponse struct {
	ID             string                `json:"id"`
	Amount         decimal.Decimal       `json:"amount"`
	Type           domain.EntryType      `json:"type"`
	Mode           domain.PaymentMode    `json:"mode,omitempty"`
	AdjustmentType domain.AdjustmentType `json:"adjustment_type,omitempty"`
	Date           domain.Date           `json:"date"`
	Note           string                `json:"note,omitempty"`
	CategoryID     string                `json:"category_id,omitempty"`
}

// CreateEntryResult bundles the stored entry with the achievements its
// creation unlocked, for celebratory UI.
type CreateEntryResult struct {
	Entry         domain.Entry
	Streak        domain.Streak
	NewlyUnlocked []domain.AchievementStatus
}

// ToEntryResponse converts a domain.Entry to its wire form.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		ID:             e.EntryID,
		Amount:         e.Amount,
		Type:           e.Type,
		Mode:           e.Mode,
		AdjustmentType: e.AdjustmentType,
		Date:           e.Date,
		Note:           e.Note,
		CategoryID:     e.CategoryID,
	}
}

// ToEntryResponses converts a slice of entries to wire form.
func ToEntryResponses(entries []domain.Entry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = ToEntryResponse(&entries[i])
	}
	return out
}
