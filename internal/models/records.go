package models

import "time"

// SnapshotRecord is the database row holding one user's serialized
// FinancialSnapshot. One row per user; saves fully overwrite prior state.
type SnapshotRecord struct {
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	Data      []byte    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GoalsCacheRecord holds the per-user saved-goals convenience cache, written
// whenever a goal is added so goals survive a lost or corrupted snapshot.
type GoalsCacheRecord struct {
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	Data      []byte    `gorm:"not null" json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}
