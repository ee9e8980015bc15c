package services

import (
	"context"

	"github.com/spendwise/spendwise_backend/internal/core/domain"
	"github.com/spendwise/spendwise_backend/internal/dto"
)

// EntryReaderSvc defines read operations over the entry log.
type EntryReaderSvc interface {
	// GetEntryByID retrieves a specific entry by its ID.
	GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntries retrieves entries, optionally scoped by a period keyword
	// or an explicit custom range (inclusive on both ends).
	ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.Entry, error)
}

// EntryWriterSvc defines write operations over the entry log.
type EntryWriterSvc interface {
	// CreateEntry validates, normalizes and appends a new entry, registers
	// streak activity and runs an achievement check. The newly unlocked
	// achievements ride along in the result for celebratory UI.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*dto.CreateEntryResult, error)

	// DeleteEntry removes an entry by ID. Already-unlocked achievements
	// stay unlocked regardless.
	DeleteEntry(ctx context.Context, entryID string) error

	// ReplaceAllEntries swaps the whole log for an imported set, after
	// validating and normalizing every record. Returns the accepted count.
	ReplaceAllEntries(ctx context.Context, req dto.ReplaceEntriesRequest) (int, error)
}

// EntrySvcFacade combines all entry service interfaces.
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
