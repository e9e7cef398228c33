// Package storage persists per-user financial snapshots as single JSON
// documents keyed by user id. There is no per-entity persistence: a save
// fully overwrites the previous snapshot (last-write-wins).
package storage

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finai/internal/errors"
	"finai/internal/models"
)

// SnapshotRepository stores snapshots and the saved-goals cache in the
// database.
type SnapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Load returns the stored snapshot for the user. It returns
// ErrSnapshotNotFound when no snapshot exists and ErrSnapshotCorrupt when the
// stored document cannot be decoded; callers fall back to a default snapshot
// in both cases.
func (r *SnapshotRepository) Load(userID string) (*models.FinancialSnapshot, error) {
	var rec models.SnapshotRecord
	if err := r.db.First(&rec, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSnapshotNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var snap models.FinancialSnapshot
	if err := json.Unmarshal(rec.Data, &snap); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSnapshotCorrupt, err)
	}
	snap.Normalize()
	return &snap, nil
}

// Save overwrites the user's stored snapshot with the given state.
func (r *SnapshotRepository) Save(userID string, snap *models.FinancialSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rec := models.SnapshotRecord{UserID: userID, Data: data}
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// LoadGoalsCache returns the user's saved-goals cache, or an empty list when
// none has been written.
func (r *SnapshotRepository) LoadGoalsCache(userID string) ([]models.SavingsGoal, error) {
	var rec models.GoalsCacheRecord
	if err := r.db.First(&rec, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.SavingsGoal{}, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.SavingsGoal
	if err := json.Unmarshal(rec.Data, &goals); err != nil {
		// A broken cache is not worth failing over; treat as empty.
		return []models.SavingsGoal{}, nil
	}
	return goals, nil
}

// SaveGoalsCache overwrites the user's saved-goals cache.
func (r *SnapshotRepository) SaveGoalsCache(userID string, goals []models.SavingsGoal) error {
	data, err := json.Marshal(goals)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rec := models.GoalsCacheRecord{UserID: userID, Data: data}
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
