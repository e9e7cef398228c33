// Package engine implements the financial data engine: a session-scoped
// entity store over a per-user snapshot, derived metrics, the recurrence
// expander, the insight and notification rule engine, and the debt payoff
// planner.
//
// Every public command validates its input, mutates the in-memory snapshot,
// re-evaluates the rule engine, and persists the full snapshot exactly once.
// Persistence failures are logged but never surfaced: in-memory state always
// reflects the latest mutation.
package engine

import (
	"errors"
	"sync"
	"time"

	apperrors "finai/internal/errors"
	"finai/internal/logger"
	"finai/internal/models"
	"finai/internal/pagination"
)

// SnapshotStore is the persistence boundary for user snapshots.
type SnapshotStore interface {
	Load(userID string) (*models.FinancialSnapshot, error)
	Save(userID string, snap *models.FinancialSnapshot) error
	LoadGoalsCache(userID string) ([]models.SavingsGoal, error)
	SaveGoalsCache(userID string, goals []models.SavingsGoal) error
}

// Session owns the live financial state for one user. It is constructed at
// login (or first request) and discarded on logout or user switch; there are
// no ambient singletons. The mutex exists only because the HTTP layer may
// deliver concurrent requests for the same user.
type Session struct {
	userID string
	store  SnapshotStore
	now    func() time.Time

	mu            sync.Mutex
	snap          *models.FinancialSnapshot
	notifications []Notification
}

// NewSession loads the user's snapshot and prepares it for use: corrupt or
// missing snapshots fall back to the blank default, recurring transactions
// are expanded up to now, and notifications are derived from the result.
func NewSession(userID string, store SnapshotStore, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	s := &Session{userID: userID, store: store, now: now}

	snap, err := store.Load(userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrSnapshotNotFound) {
			logger.Get().Warnw("snapshot unreadable, starting with a blank slate",
				"user_id", userID, "error", err)
		}
		snap = models.DefaultSnapshot()
	}
	s.snap = snap

	if expandRecurring(snap, s.now()) {
		s.persist()
	}
	s.refreshNotifications()
	return s
}

// UserID returns the id of the user this session belongs to.
func (s *Session) UserID() string { return s.userID }

// persist writes the full snapshot. Failures are deliberately swallowed after
// logging: availability over durability.
func (s *Session) persist() {
	if err := s.store.Save(s.userID, s.snap); err != nil {
		logger.Get().Errorw("failed to persist snapshot",
			"user_id", s.userID, "error", err)
	}
}

// refreshRules re-evaluates the insight rules and rebuilds notifications.
// Called after every mutation to entities the rules read.
func (s *Session) refreshRules() {
	s.applyInsightRules()
	s.refreshNotifications()
}

// --- Queries (side-effect-free) ---

// BudgetCategories returns the active budget categories.
func (s *Session) BudgetCategories() []models.BudgetCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.BudgetCategory{}, s.snap.BudgetCategories...)
}

// SavingsGoals returns the active savings goals.
func (s *Session) SavingsGoals() []models.SavingsGoal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SavingsGoal{}, s.snap.SavingsGoals...)
}

// Transactions returns one page of transactions, most recent first.
func (s *Session) Transactions(page pagination.PageRequest) pagination.PageResponse[models.Transaction] {
	s.mu.Lock()
	defer s.mu.Unlock()
	page.Defaults()
	window, total := pagination.Slice(s.snap.Transactions, page)
	return pagination.NewPageResponse(append([]models.Transaction{}, window...), page.Page, page.PageSize, total)
}

// ActiveInsights returns non-dismissed insights.
func (s *Session) ActiveInsights() []models.Insight {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := []models.Insight{}
	for _, in := range s.snap.Insights {
		if !in.Dismissed {
			active = append(active, in)
		}
	}
	return active
}

// MonthlyTrends returns the monthly trend series.
func (s *Session) MonthlyTrends() []models.MonthlyTrend {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MonthlyTrend{}, s.snap.MonthlyTrends...)
}

// Debts returns all tracked debts.
func (s *Session) Debts() []models.Debt {
	s.mu.Lock()
	defer s.mu.Unlock()
	debts := make([]models.Debt, len(s.snap.Debts))
	for i, d := range s.snap.Debts {
		d.Payments = append([]models.DebtPayment{}, d.Payments...)
		debts[i] = d
	}
	return debts
}

// Income returns the monthly income amount and its frequency.
func (s *Session) Income() (float64, models.IncomeFrequency) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.MonthlyIncome, s.snap.IncomeFrequency
}

// Metrics returns the derived metrics bundle for the current state.
func (s *Session) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return computeMetrics(s.snap)
}

// Suggestions returns the advisory suggestions for the current state. These
// are computed fresh on every call and never persisted.
func (s *Session) Suggestions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildSuggestions(s.snap)
}

// PayoffPlan returns the snowball/avalanche payoff orderings for the current
// debt set.
func (s *Session) PayoffPlan() PayoffPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildPayoffPlan(s.snap.Debts)
}
