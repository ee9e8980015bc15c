package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise_backend/internal/apperrors"
	"github.com/spendwise/spendwise_backend/internal/core/domain"
	portsrepo "github.com/spendwise/spendwise_backend/internal/core/ports/repositories"
	portssvc "github.com/spendwise/spendwise_backend/internal/core/ports/services"
	"github.com/spendwise/spendwise_backend/internal/dto"
)

// entryService implements the EntrySvcFacade interface.
type entryService struct {
	BaseService
	entryRepo    portsrepo.EntryRepositoryFacade
	streakSvc    portssvc.StreakSvc
	achievements portssvc.AchievementSvc
	now          func() time.Time
}

// EntryServiceOption is a functional option for configuring the entry service.
type EntryServiceOption func(*entryService)

// WithStreakService wires the streak tracker updated on every entry creation.
func WithStreakService(s portssvc.StreakSvc) EntryServiceOption {
	return func(svc *entryService) { svc.streakSvc = s }
}

// WithAchievementService wires the achievement check run after every entry
// creation.
func WithAchievementService(a portssvc.AchievementSvc) EntryServiceOption {
	return func(svc *entryService) { svc.achievements = a }
}

// WithEntryClock overrides the clock, for tests.
func WithEntryClock(now func() time.Time) EntryServiceOption {
	return func(svc *entryService) { svc.now = now }
}

// NewEntryService creates a new entry service with the provided options.
func NewEntryService(repo portsrepo.EntryRepositoryFacade, options ...EntryServiceOption) portssvc.EntrySvcFacade {
	svc := &entryService{
		entryRepo: repo,
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// validateEntry enforces the boundary rules: positive amount, known type,
// mode where the type requires one, adjustment direction on adjustments.
func validateEntry(e *domain.Entry) error {
	if !e.Type.IsValid() {
		return fmt.Errorf("%w: unknown entry type %q", apperrors.ErrValidation, e.Type)
	}
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	if e.Type == domain.EntryBalanceAdjustment && !e.AdjustmentType.IsValid() {
		return fmt.Errorf("%w: balance_adjustment requires adjustment_type add or subtract", apperrors.ErrValidation)
	}
	if e.Mode != "" && !e.Mode.IsValid() {
		return fmt.Errorf("%w: unknown payment mode %q", apperrors.ErrValidation, e.Mode)
	}
	return nil
}

// CreateEntry validates, normalizes and appends a new entry, then registers
// streak activity and runs the achievement check. The streak and achievement
// updates are deliberately not part of the entry write: the log is the sole
// source of truth and both are re-derivable if a crash lands between them.
func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*dto.CreateEntryResult, error) {
	now := s.now().UTC()
	entry := domain.Entry{
		EntryID:        uuid.NewString(),
		Amount:         req.Amount,
		Type:           req.Type,
		Mode:           req.Mode,
		AdjustmentType: req.AdjustmentType,
		Date:           req.Date,
		Note:           req.Note,
		CategoryID:     req.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	entry.Normalize()

	if err := validateEntry(&entry); err != nil {
		return nil, err
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	result := &dto.CreateEntryResult{Entry: entry}

	if s.streakSvc != nil {
		streak, err := s.streakSvc.RegisterActivity(ctx, domain.DateOf(now))
		if err != nil {
			// The entry is saved; streak drift is advisory and self-heals
			// on the next registered activity.
			s.LogWarn(ctx, "Failed to register streak activity", slog.String("error", err.Error()))
		} else {
			result.Streak = streak
		}
	}

	if s.achievements != nil {
		newly, _, err := s.achievements.CheckAchievements(ctx)
		if err != nil {
			s.LogWarn(ctx, "Achievement check failed after entry creation", slog.String("error", err.Error()))
		} else {
			result.NewlyUnlocked = newly
		}
	}

	s.LogInfo(ctx, "Entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("type", string(entry.Type)),
		slog.String("date", entry.Date.String()))
	return result, nil
}

// GetEntryByID retrieves a specific entry by its ID.
func (s *entryService) GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListEntries retrieves entries, optionally scoped by a period keyword or an
// explicit custom range.
func (s *entryService) ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.Entry, error) {
	switch {
	case params.Range != nil:
		return s.entryRepo.ListEntriesBetween(ctx, *params.Range)
	case params.Period != nil:
		ref := domain.DateOf(s.now())
		if params.Ref != nil {
			ref = *params.Ref
		}
		return s.entryRepo.ListEntriesBetween(ctx, params.Period.Range(ref))
	default:
		return s.entryRepo.ListEntries(ctx)
	}
}

// DeleteEntry removes an entry by ID.
func (s *entryService) DeleteEntry(ctx context.Context, entryID string) error {
	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete entry", slog.String("entry_id", entryID))
		return err
	}
	s.LogInfo(ctx, "Entry deleted", slog.String("entry_id", entryID))
	return nil
}

// ReplaceAllEntries swaps the whole log for an imported set. Every record is
// validated and normalized; one bad record rejects the import so a partial
// log is never persisted.
func (s *entryService) ReplaceAllEntries(ctx context.Context, req dto.ReplaceEntriesRequest) (int, error) {
	now := s.now().UTC()
	entries := make([]domain.Entry, 0, len(req.Entries))
	for i, in := range req.Entries {
		entry := domain.Entry{
			EntryID:        in.ID,
			Amount:         in.Amount,
			Type:           in.Type,
			Mode:           in.Mode,
			AdjustmentType: in.AdjustmentType,
			Date:           in.Date,
			Note:           in.Note,
			CategoryID:     in.CategoryID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		if entry.EntryID == "" {
			entry.EntryID = uuid.NewString()
		}
		entry.Normalize()
		if err := validateEntry(&entry); err != nil {
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}

	if err := s.entryRepo.ReplaceAllEntries(ctx, entries); err != nil {
		s.LogError(ctx, err, "Failed to replace entry log", slog.Int("count", len(entries)))
		return 0, fmt.Errorf("failed to replace entries: %w", err)
	}

	s.LogInfo(ctx, "Entry log replaced", slog.Int("count", len(entries)))
	return len(entries), nil
}
