package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finai/internal/models"
	"finai/internal/uuid"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// NewCategory builds a budget category fixture.
func NewCategory(name string, spent, budget float64) models.BudgetCategory {
	return models.BudgetCategory{
		ID:     uuid.New(),
		Name:   name,
		Spent:  spent,
		Budget: budget,
		Color:  "#3b82f6",
		Trend:  models.TrendUp,
	}
}

// NewGoal builds a savings goal fixture due 90 days out.
func NewGoal(name string, current, target float64) models.SavingsGoal {
	return models.SavingsGoal{
		ID:         uuid.New(),
		Name:       name,
		Current:    current,
		Target:     target,
		TargetDate: models.DateOf(time.Now().AddDate(0, 0, 90)),
		Category:   "General",
		Color:      "#22c55e",
	}
}

// NewDebt builds a debt fixture with no payments.
func NewDebt(creditor string, amount, interestRate float64) models.Debt {
	return models.Debt{
		ID:           uuid.New(),
		Amount:       amount,
		Creditor:     creditor,
		Type:         models.DebtTypePersonalLoan,
		StartDate:    models.DateOf(time.Now().AddDate(0, -1, 0)),
		DueDate:      models.DateOf(time.Now().AddDate(0, 6, 0)),
		Payments:     []models.DebtPayment{},
		Frequency:    models.FrequencyMonthly,
		InterestRate: interestRate,
		Remaining:    amount,
	}
}

// NewExpense builds an expense transaction fixture.
func NewExpense(category string, amount float64, date models.Date) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		Amount:      amount,
		Category:    category,
		Description: fmt.Sprintf("Expense %d", nextID()),
		Date:        date,
		Type:        models.TransactionTypeExpense,
	}
}

// NewSnapshot builds a normalized snapshot fixture.
func NewSnapshot() *models.FinancialSnapshot {
	return models.DefaultSnapshot()
}
