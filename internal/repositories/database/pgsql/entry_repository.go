package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spendwise/spendwise_backend/internal/apperrors"
	"github.com/spendwise/spendwise_backend/internal/core/domain"
	portsrepo "github.com/spendwise/spendwise_backend/internal/core/ports/repositories"
)

// PgxEntryRepository persists the append-only entry log.
type PgxEntryRepository struct {
	db *pgxpool.Pool
}

func newPgxEntryRepository(db *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{db: db}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, amount, entry_type, mode, adjustment_type, entry_date, note, category_id, created_at, last_updated_at`

func scanEntry(row pgx.Row) (domain.Entry, error) {
	var e domain.Entry
	var mode, adjustment, categoryID *string
	var entryDate time.Time

	err := row.Scan(
		&e.EntryID,
		&e.Amount,
		&e.Type,
		&mode,
		&adjustment,
		&entryDate,
		&e.Note,
		&categoryID,
		&e.CreatedAt,
		&e.LastUpdatedAt,
	)
	if err != nil {
		return domain.Entry{}, err
	}

	if mode != nil {
		e.Mode = domain.PaymentMode(*mode)
	}
	if adjustment != nil {
		e.AdjustmentType = domain.AdjustmentType(*adjustment)
	}
	if categoryID != nil {
		e.CategoryID = *categoryID
	}
	e.Date = domain.DateOf(entryDate)
	return e, nil
}

// entryArgs maps a domain.Entry to the insert argument list, turning empty
// optional fields into NULLs.
func entryArgs(e domain.Entry) []any {
	var mode, adjustment, categoryID *string
	if e.Mode != "" {
		m := string(e.Mode)
		mode = &m
	}
	if e.AdjustmentType != "" {
		a := string(e.AdjustmentType)
		adjustment = &a
	}
	if e.CategoryID != "" {
		categoryID = &e.CategoryID
	}
	return []any{
		e.EntryID,
		e.Amount,
		string(e.Type),
		mode,
		adjustment,
		e.Date.Time(),
		e.Note,
		categoryID,
		e.CreatedAt,
		e.LastUpdatedAt,
	}
}

// SaveEntry appends a new entry to the log.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	query := `
		INSERT INTO entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query, entryArgs(entry)...)
	if err != nil {
		return fmt.Errorf("failed to save entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// FindEntryByID retrieves a single entry by its unique identifier.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_id = $1;`

	entry, err := scanEntry(r.db.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}
	return &entry, nil
}

// ListEntries retrieves the whole log ordered by date then ID.
func (r *PgxEntryRepository) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries ORDER BY entry_date, entry_id;`
	return r.queryEntries(ctx, query)
}

// ListEntriesBetween retrieves the entries of an inclusive date range,
// ordered by date then ID.
func (r *PgxEntryRepository) ListEntriesBetween(ctx context.Context, dr domain.DateRange) ([]domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE entry_date >= $1 AND entry_date <= $2
		ORDER BY entry_date, entry_id;
	`
	return r.queryEntries(ctx, query, dr.Start.Time(), dr.End.Time())
}

func (r *PgxEntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.Entry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading entry rows: %w", err)
	}
	return entries, nil
}

// CountEntries returns the number of entries in the log.
func (r *PgxEntryRepository) CountEntries(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM entries;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

// DeleteEntry removes an entry by ID.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReplaceAllEntries atomically swaps the whole log for the given set inside
// a single transaction, so a failed import never leaves a partial log.
func (r *PgxEntryRepository) ReplaceAllEntries(ctx context.Context, entries []domain.Entry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin replace transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, `DELETE FROM entries;`); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}

	query := `
		INSERT INTO entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, entry := range entries {
		if _, err := tx.Exec(ctx, query, entryArgs(entry)...); err != nil {
			return fmt.Errorf("failed to insert entry %s: %w", entry.EntryID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit replace transaction: %w", err)
	}
	return nil
}
