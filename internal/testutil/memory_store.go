package testutil

import (
	"encoding/json"
	"sync"

	apperrors "finai/internal/errors"
	"finai/internal/models"
)

// MemorySnapshotStore is an in-memory snapshot store for engine tests. It
// round-trips snapshots through JSON so tests exercise the same encode/decode
// path as the database-backed repository, and it counts Save calls so tests
// can assert exactly one persist per mutation.
type MemorySnapshotStore struct {
	mu        sync.Mutex
	snapshots map[string][]byte
	goals     map[string][]byte

	SaveCalls int
	SaveErr   error // returned by Save when set
}

// NewMemorySnapshotStore creates an empty MemorySnapshotStore.
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{
		snapshots: make(map[string][]byte),
		goals:     make(map[string][]byte),
	}
}

// Load returns the stored snapshot for the user.
func (m *MemorySnapshotStore) Load(userID string) (*models.FinancialSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.snapshots[userID]
	if !ok {
		return nil, apperrors.ErrSnapshotNotFound
	}
	var snap models.FinancialSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSnapshotCorrupt, err)
	}
	snap.Normalize()
	return &snap, nil
}

// Save stores the snapshot and increments SaveCalls.
func (m *MemorySnapshotStore) Save(userID string, snap *models.FinancialSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	m.snapshots[userID] = data
	return nil
}

// LoadGoalsCache returns the stored goals cache, or empty when absent.
func (m *MemorySnapshotStore) LoadGoalsCache(userID string) ([]models.SavingsGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.goals[userID]
	if !ok {
		return []models.SavingsGoal{}, nil
	}
	var goals []models.SavingsGoal
	if err := json.Unmarshal(data, &goals); err != nil {
		return []models.SavingsGoal{}, nil
	}
	return goals, nil
}

// SaveGoalsCache stores the goals cache.
func (m *MemorySnapshotStore) SaveGoalsCache(userID string, goals []models.SavingsGoal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.Marshal(goals)
	if err != nil {
		return err
	}
	m.goals[userID] = data
	return nil
}

// Seed stores a snapshot directly, bypassing Save accounting.
func (m *MemorySnapshotStore) Seed(userID string, snap *models.FinancialSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, _ := json.Marshal(snap)
	m.snapshots[userID] = data
}

// SeedRaw stores raw bytes as a snapshot, for corrupt-data tests.
func (m *MemorySnapshotStore) SeedRaw(userID string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshots[userID] = append([]byte{}, data...)
}
