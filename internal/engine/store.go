package engine

import (
	"strings"

	apperrors "finai/internal/errors"
	"finai/internal/logger"
	"finai/internal/models"
	"finai/internal/uuid"
)

// Commands. Each validates first (a rejected command leaves state untouched
// and persists nothing), then mutates, re-runs the rules, and persists the
// full snapshot exactly once. Update and delete by unknown id are silent
// no-ops, never errors; they still count as commands and persist.

// --- Budget categories ---

// AddBudgetCategory creates a new category with zero spend.
func (s *Session) AddBudgetCategory(name string, budget float64, color string) (*models.BudgetCategory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.ErrInvalidName
	}
	if budget <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Budget must be greater than zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cat := models.BudgetCategory{
		ID:     uuid.New(),
		Name:   name,
		Budget: budget,
		Color:  color,
		Trend:  models.TrendUp,
	}
	s.snap.BudgetCategories = append(s.snap.BudgetCategories, cat)
	s.refreshRules()
	s.persist()
	return &cat, nil
}

// BudgetCategoryPatch is a partial update; nil fields are left untouched.
type BudgetCategoryPatch struct {
	Name   *string
	Budget *float64
	Spent  *float64
	Color  *string
	Trend  *models.Trend
}

// UpdateBudgetCategory merges the patch into the category with the given id.
// Returns (nil, nil) when the id is unknown.
func (s *Session) UpdateBudgetCategory(id string, patch BudgetCategoryPatch) (*models.BudgetCategory, error) {
	if patch.Budget != nil && *patch.Budget <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Budget must be greater than zero")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperrors.ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var updated *models.BudgetCategory
	for i := range s.snap.BudgetCategories {
		cat := &s.snap.BudgetCategories[i]
		if cat.ID != id {
			continue
		}
		if patch.Name != nil {
			cat.Name = *patch.Name
		}
		if patch.Budget != nil {
			cat.Budget = *patch.Budget
		}
		if patch.Spent != nil {
			cat.Spent = *patch.Spent
		}
		if patch.Color != nil {
			cat.Color = *patch.Color
		}
		if patch.Trend != nil {
			cat.Trend = *patch.Trend
		}
		copied := *cat
		updated = &copied
		break
	}

	s.refreshRules()
	s.persist()
	return updated, nil
}

// DeleteBudgetCategory removes the category from the active set. Historical
// transactions referencing it by name are left alone.
func (s *Session) DeleteBudgetCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.snap.BudgetCategories[:0]
	for _, cat := range s.snap.BudgetCategories {
		if cat.ID != id {
			kept = append(kept, cat)
		}
	}
	s.snap.BudgetCategories = kept

	s.refreshRules()
	s.persist()
	return nil
}

// --- Savings goals ---

// SavingsGoalInput holds the fields for creating a goal.
type SavingsGoalInput struct {
	Name                string
	Description         string
	Current             float64
	Target              float64
	TargetDate          models.Date
	Category            string
	MonthlyContribution float64
	Color               string
}

// AddSavingsGoal creates a new goal. The starting amount is clamped into
// [0, target]. The saved-goals cache is refreshed as a side effect.
func (s *Session) AddSavingsGoal(in SavingsGoalInput) (*models.SavingsGoal, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.ErrInvalidName
	}
	if in.Target <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Target must be greater than zero")
	}
	if in.Current < 0 || in.MonthlyContribution < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amounts must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goal := models.SavingsGoal{
		ID:                  uuid.New(),
		Name:                in.Name,
		Description:         in.Description,
		Current:             clamp(in.Current, 0, in.Target),
		Target:              in.Target,
		TargetDate:          in.TargetDate,
		Category:            in.Category,
		MonthlyContribution: in.MonthlyContribution,
		Color:               in.Color,
	}
	s.snap.SavingsGoals = append(s.snap.SavingsGoals, goal)

	if err := s.store.SaveGoalsCache(s.userID, s.snap.SavingsGoals); err != nil {
		logger.Get().Warnw("failed to update goals cache", "user_id", s.userID, "error", err)
	}

	s.refreshRules()
	s.persist()
	return &goal, nil
}

// SavingsGoalPatch is a partial update; nil fields are left untouched.
type SavingsGoalPatch struct {
	Name                *string
	Description         *string
	Current             *float64
	Target              *float64
	TargetDate          *models.Date
	Category            *string
	MonthlyContribution *float64
	Color               *string
}

// UpdateSavingsGoal merges the patch into the goal with the given id.
// Returns (nil, nil) when the id is unknown.
func (s *Session) UpdateSavingsGoal(id string, patch SavingsGoalPatch) (*models.SavingsGoal, error) {
	if patch.Target != nil && *patch.Target <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Target must be greater than zero")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperrors.ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var updated *models.SavingsGoal
	for i := range s.snap.SavingsGoals {
		goal := &s.snap.SavingsGoals[i]
		if goal.ID != id {
			continue
		}
		if patch.Name != nil {
			goal.Name = *patch.Name
		}
		if patch.Description != nil {
			goal.Description = *patch.Description
		}
		if patch.Target != nil {
			goal.Target = *patch.Target
		}
		if patch.Current != nil {
			goal.Current = *patch.Current
		}
		if patch.TargetDate != nil {
			goal.TargetDate = *patch.TargetDate
		}
		if patch.Category != nil {
			goal.Category = *patch.Category
		}
		if patch.MonthlyContribution != nil {
			goal.MonthlyContribution = *patch.MonthlyContribution
		}
		if patch.Color != nil {
			goal.Color = *patch.Color
		}
		goal.Current = clamp(goal.Current, 0, goal.Target)
		copied := *goal
		updated = &copied
		break
	}

	s.refreshRules()
	s.persist()
	return updated, nil
}

// DeleteSavingsGoal removes the goal with the given id.
func (s *Session) DeleteSavingsGoal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.snap.SavingsGoals[:0]
	for _, goal := range s.snap.SavingsGoals {
		if goal.ID != id {
			kept = append(kept, goal)
		}
	}
	s.snap.SavingsGoals = kept

	s.refreshRules()
	s.persist()
	return nil
}

// AddMoneyToGoal adds amount to the goal's current balance, clamped to the
// target. Unknown ids are a silent no-op.
func (s *Session) AddMoneyToGoal(id string, amount float64) (*models.SavingsGoal, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var updated *models.SavingsGoal
	for i := range s.snap.SavingsGoals {
		goal := &s.snap.SavingsGoals[i]
		if goal.ID != id {
			continue
		}
		goal.Current = clamp(goal.Current+amount, 0, goal.Target)
		copied := *goal
		updated = &copied
		break
	}

	s.refreshRules()
	s.persist()
	return updated, nil
}

// --- Transactions ---

// TransactionInput holds the fields for creating a transaction.
type TransactionInput struct {
	Amount      float64
	Category    string
	Description string
	Date        models.Date
	Type        models.TransactionType

	IsRecurring            bool
	Recurrence             models.Frequency
	RecurrenceIntervalDays int
	RecurrenceEndDate      *models.Date
}

// AddTransaction records a transaction. Expense transactions whose category
// matches a budget category name (case-insensitive) increase that category's
// spend as part of the same operation, and the current month's trend entry is
// updated. New transactions are prepended: most recent first.
func (s *Session) AddTransaction(in TransactionInput) (*models.Transaction, error) {
	if in.Amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if !in.Type.Valid() {
		return nil, apperrors.ErrInvalidTxType
	}
	if in.IsRecurring && !in.Recurrence.Valid() {
		return nil, apperrors.ErrInvalidFrequency
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	date := in.Date
	if date.IsZero() {
		date = models.DateOf(s.now())
	}

	tx := models.Transaction{
		ID:          uuid.New(),
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        date,
		Type:        in.Type,
	}
	if in.IsRecurring {
		tx.IsRecurring = true
		tx.Recurrence = in.Recurrence
		tx.RecurrenceIntervalDays = in.RecurrenceIntervalDays
		tx.RecurrenceEndDate = in.RecurrenceEndDate
	}

	s.snap.Transactions = append([]models.Transaction{tx}, s.snap.Transactions...)
	applyCategorySpend(s.snap, tx)
	s.applyTransactionToTrends(tx)

	s.refreshRules()
	s.persist()
	return &tx, nil
}

// --- Income ---

// UpdateMonthlyIncome sets the monthly income and rewrites the current
// month's trend entry.
func (s *Session) UpdateMonthlyIncome(income float64) error {
	if income < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Income must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.MonthlyIncome = income

	trend := s.currentMonthTrend()
	trend.Income = income
	if income != 0 && trend.Expenses != 0 {
		trend.Savings = income - trend.Expenses
	} else {
		trend.Savings = 0
	}

	s.refreshRules()
	s.persist()
	return nil
}

// SetIncomeFrequency sets how often income arrives.
func (s *Session) SetIncomeFrequency(freq models.IncomeFrequency) error {
	if !freq.Type.Valid() {
		return apperrors.ErrInvalidFrequency
	}
	if freq.Type == models.FrequencyCustom && freq.Days <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidFrequency, "Custom frequency requires a positive day interval")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.IncomeFrequency = freq
	s.refreshRules()
	s.persist()
	return nil
}

// --- Insights ---

// DismissInsight hides the insight from the active view. Dismissing an
// unknown or already-dismissed id is a no-op.
func (s *Session) DismissInsight(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Insights {
		if s.snap.Insights[i].ID == id {
			s.snap.Insights[i].Dismissed = true
			break
		}
	}

	s.persist()
	return nil
}

// --- Debts ---

// DebtInput holds the fields for creating a debt.
type DebtInput struct {
	Amount       float64
	Creditor     string
	Type         models.DebtType
	Description  string
	StartDate    models.Date
	DueDate      models.Date
	Frequency    models.Frequency
	InterestRate float64
}

// AddDebt creates a new debt with no payments and remaining equal to the
// original amount.
func (s *Session) AddDebt(in DebtInput) (*models.Debt, error) {
	if in.Amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if strings.TrimSpace(in.Creditor) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidName, "Creditor must not be empty")
	}
	if !in.Type.Valid() {
		return nil, apperrors.ErrInvalidDebtType
	}
	if !in.Frequency.Valid() {
		return nil, apperrors.ErrInvalidFrequency
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	debt := models.Debt{
		ID:           uuid.New(),
		Amount:       in.Amount,
		Creditor:     in.Creditor,
		Type:         in.Type,
		Description:  in.Description,
		StartDate:    in.StartDate,
		DueDate:      in.DueDate,
		Payments:     []models.DebtPayment{},
		Frequency:    in.Frequency,
		InterestRate: in.InterestRate,
		Remaining:    in.Amount,
	}
	s.snap.Debts = append(s.snap.Debts, debt)

	s.refreshRules()
	s.persist()
	return &debt, nil
}

// DebtPatch is a partial update; nil fields are left untouched.
type DebtPatch struct {
	Amount       *float64
	Creditor     *string
	Type         *models.DebtType
	Description  *string
	StartDate    *models.Date
	DueDate      *models.Date
	Frequency    *models.Frequency
	InterestRate *float64
}

// UpdateDebt merges the patch into the debt with the given id. Changing the
// principal recomputes remaining from the payment history. Returns (nil, nil)
// when the id is unknown.
func (s *Session) UpdateDebt(id string, patch DebtPatch) (*models.Debt, error) {
	if patch.Amount != nil && *patch.Amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, apperrors.ErrInvalidDebtType
	}
	if patch.Frequency != nil && !patch.Frequency.Valid() {
		return nil, apperrors.ErrInvalidFrequency
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var updated *models.Debt
	for i := range s.snap.Debts {
		debt := &s.snap.Debts[i]
		if debt.ID != id {
			continue
		}
		if patch.Amount != nil {
			debt.Amount = *patch.Amount
			debt.RecomputeRemaining()
		}
		if patch.Creditor != nil {
			debt.Creditor = *patch.Creditor
		}
		if patch.Type != nil {
			debt.Type = *patch.Type
		}
		if patch.Description != nil {
			debt.Description = *patch.Description
		}
		if patch.StartDate != nil {
			debt.StartDate = *patch.StartDate
		}
		if patch.DueDate != nil {
			debt.DueDate = *patch.DueDate
		}
		if patch.Frequency != nil {
			debt.Frequency = *patch.Frequency
		}
		if patch.InterestRate != nil {
			debt.InterestRate = *patch.InterestRate
		}
		copied := *debt
		updated = &copied
		break
	}

	s.refreshRules()
	s.persist()
	return updated, nil
}

// DeleteDebt removes the debt and its payment history.
func (s *Session) DeleteDebt(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.snap.Debts[:0]
	for _, debt := range s.snap.Debts {
		if debt.ID != id {
			kept = append(kept, debt)
		}
	}
	s.snap.Debts = kept

	s.refreshRules()
	s.persist()
	return nil
}

// AddDebtPayment appends a payment and re-derives remaining from the full
// payment history. Overpayment is allowed and leaves remaining negative.
// Unknown debt ids are a silent no-op.
func (s *Session) AddDebtPayment(debtID string, amount float64, date models.Date) (*models.Debt, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var updated *models.Debt
	for i := range s.snap.Debts {
		debt := &s.snap.Debts[i]
		if debt.ID != debtID {
			continue
		}
		debt.Payments = append(debt.Payments, models.DebtPayment{
			ID:     uuid.New(),
			Amount: amount,
			Date:   date,
		})
		debt.RecomputeRemaining()
		copied := *debt
		copied.Payments = append([]models.DebtPayment{}, debt.Payments...)
		updated = &copied
		break
	}

	s.refreshRules()
	s.persist()
	return updated, nil
}

// --- Shared helpers ---

// applyCategorySpend adds an expense transaction's amount to the spend of the
// budget category whose name matches, case-insensitively. Income transactions
// and unmatched categories leave the category set unchanged.
func applyCategorySpend(snap *models.FinancialSnapshot, tx models.Transaction) bool {
	if tx.Type != models.TransactionTypeExpense {
		return false
	}
	for i := range snap.BudgetCategories {
		if strings.EqualFold(snap.BudgetCategories[i].Name, tx.Category) {
			snap.BudgetCategories[i].Spent += tx.Amount
			return true
		}
	}
	return false
}

// currentMonthTrend returns the trend entry for the month containing now,
// appending one when the skeleton does not cover it.
func (s *Session) currentMonthTrend() *models.MonthlyTrend {
	month := s.now().Format("Jan")
	for i := range s.snap.MonthlyTrends {
		if s.snap.MonthlyTrends[i].Month == month {
			return &s.snap.MonthlyTrends[i]
		}
	}
	s.snap.MonthlyTrends = append(s.snap.MonthlyTrends, models.MonthlyTrend{Month: month})
	return &s.snap.MonthlyTrends[len(s.snap.MonthlyTrends)-1]
}

// applyTransactionToTrends folds a new transaction into the current month's
// aggregate. Savings is income minus expenses only once both are non-zero.
func (s *Session) applyTransactionToTrends(tx models.Transaction) {
	trend := s.currentMonthTrend()
	switch tx.Type {
	case models.TransactionTypeExpense:
		trend.Expenses += tx.Amount
	case models.TransactionTypeIncome:
		trend.Income += tx.Amount
	}
	if trend.Income != 0 && trend.Expenses != 0 {
		trend.Savings = trend.Income - trend.Expenses
	} else {
		trend.Savings = 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
