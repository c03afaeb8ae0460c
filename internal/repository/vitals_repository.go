package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/noctura/circadian-api/internal/domain"
	"github.com/noctura/circadian-api/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VitalsRepository interface {
	Upsert(ctx context.Context, entry *domain.VitalsEntry) error
	GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.VitalsEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.VitalsFilter) ([]domain.VitalsEntry, error)
	ListByDateRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.VitalsEntry, error)
	ListRecent(ctx context.Context, userID uuid.UUID, days int) ([]domain.VitalsEntry, error)
}

type vitalsRepository struct {
	db *gorm.DB
}

func NewVitalsRepository(db *gorm.DB) VitalsRepository {
	return &vitalsRepository{db: db}
}

// Upsert inserts or replaces the row for (user, date). Re-ingesting a
// day overwrites every measurement column.
func (r *vitalsRepository) Upsert(ctx context.Context, entry *domain.VitalsEntry) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"sleep_start", "sleep_end",
				"deep_minutes", "rem_minutes", "light_minutes", "awake_minutes",
				"sleep_score", "recovery_score", "timezone", "updated_at",
			}),
		}).
		Create(entry).Error
}

func (r *vitalsRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.VitalsEntry, error) {
	var entry domain.VitalsEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *vitalsRepository) List(ctx context.Context, userID uuid.UUID, filter domain.VitalsFilter) ([]domain.VitalsEntry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC")

	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// DESC order: everything strictly after the cursor position.
			query = query.Where(
				"(date < ?) OR (date = ? AND id < ?)",
				cursor.Date, cursor.Date, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.VitalsEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *vitalsRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.VitalsEntry, error) {
	var entries []domain.VitalsEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListRecent returns the most recent entries by calendar date, capped
// at days rows. The engine tolerates gaps, so no date arithmetic is
// done here.
func (r *vitalsRepository) ListRecent(ctx context.Context, userID uuid.UUID, days int) ([]domain.VitalsEntry, error) {
	var entries []domain.VitalsEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(days).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
