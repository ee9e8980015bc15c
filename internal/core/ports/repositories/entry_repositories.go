package repositories

import (
	"context"

	"github.com/spendwise/spendwise_backend/internal/core/domain"
)

// EntryReader defines read operations over the entry log.
type EntryReader interface {
	// FindEntryByID retrieves a single entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntries retrieves the whole log ordered by date then ID.
	ListEntries(ctx context.Context) ([]domain.Entry, error)

	// ListEntriesBetween retrieves the entries whose date falls inside the
	// inclusive range, ordered by date then ID.
	ListEntriesBetween(ctx context.Context, r domain.DateRange) ([]domain.Entry, error)

	// CountEntries returns the number of entries in the log.
	CountEntries(ctx context.Context) (int, error)
}

// EntryWriter defines write operations over the entry log.
type EntryWriter interface {
	// SaveEntry appends a new entry to the log.
	SaveEntry(ctx context.Context, entry domain.Entry) error

	// DeleteEntry removes an entry by ID.
	DeleteEntry(ctx context.Context, entryID string) error

	// ReplaceAllEntries atomically swaps the whole log for the given set.
	// Used by the import path.
	ReplaceAllEntries(ctx context.Context, entries []domain.Entry) error
}

// EntryRepositoryFacade combines all entry repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
