package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spendwise/spendwise_backend/internal/core/domain"
	portsrepo "github.com/spendwise/spendwise_backend/internal/core/ports/repositories"
)

// State blob keys. One JSON document per key in the app_state table.
const (
	stateKeyBaseline     = "baseline"
	stateKeyGoals        = "goals"
	stateKeyFlags        = "goal_completion_flags"
	stateKeyStreak       = "streak"
	stateKeyAchievements = "achievements"
)

// PgxStateRepository persists the small derived-state blobs as JSONB
// documents keyed by name. A missing key yields the type's defaults.
type PgxStateRepository struct {
	db *pgxpool.Pool
}

func newPgxStateRepository(db *pgxpool.Pool) portsrepo.StateRepository {
	return &PgxStateRepository{db: db}
}

var _ portsrepo.StateRepository = (*PgxStateRepository)(nil)

// getBlob unmarshals the blob under key into dest. A missing key leaves
// dest untouched, so callers pass in the zero value as the default.
func (r *PgxStateRepository) getBlob(ctx context.Context, key string, dest any) error {
	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT value FROM app_state WHERE key = $1;`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("failed to read state blob %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to decode state blob %q: %w", key, err)
	}
	return nil
}

func (r *PgxStateRepository) setBlob(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode state blob %q: %w", key, err)
	}
	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.db.Exec(ctx, query, key, raw, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write state blob %q: %w", key, err)
	}
	return nil
}

func (r *PgxStateRepository) GetBaseline(ctx context.Context) (domain.Baseline, error) {
	var b domain.Baseline
	err := r.getBlob(ctx, stateKeyBaseline, &b)
	return b, err
}

func (r *PgxStateRepository) SaveBaseline(ctx context.Context, b domain.Baseline) error {
	return r.setBlob(ctx, stateKeyBaseline, b)
}

func (r *PgxStateRepository) GetGoals(ctx context.Context) (domain.GoalSet, error) {
	var s domain.GoalSet
	err := r.getBlob(ctx, stateKeyGoals, &s)
	return s, err
}

func (r *PgxStateRepository) SaveGoals(ctx context.Context, s domain.GoalSet) error {
	return r.setBlob(ctx, stateKeyGoals, s)
}

func (r *PgxStateRepository) GetCompletionFlags(ctx context.Context) (domain.CompletionFlags, error) {
	var f domain.CompletionFlags
	err := r.getBlob(ctx, stateKeyFlags, &f)
	return f, err
}

func (r *PgxStateRepository) SaveCompletionFlags(ctx context.Context, f domain.CompletionFlags) error {
	return r.setBlob(ctx, stateKeyFlags, f)
}

func (r *PgxStateRepository) GetStreak(ctx context.Context) (domain.Streak, error) {
	var s domain.Streak
	err := r.getBlob(ctx, stateKeyStreak, &s)
	return s, err
}

func (r *PgxStateRepository) SaveStreak(ctx context.Context, s domain.Streak) error {
	return r.setBlob(ctx, stateKeyStreak, s)
}

func (r *PgxStateRepository) GetUnlockedAchievements(ctx context.Context) (domain.UnlockedAchievements, error) {
	var u domain.UnlockedAchievements
	err := r.getBlob(ctx, stateKeyAchievements, &u)
	return u, err
}

func (r *PgxStateRepository) SaveUnlockedAchievements(ctx context.Context, u domain.UnlockedAchievements) error {
	return r.setBlob(ctx, stateKeyAchievements, u)
}
