package engine

import (
	"testing"
	"time"

	"finai/internal/models"
	"finai/internal/pagination"
	"finai/internal/testutil"
)

func defaultPage() pagination.PageRequest {
	return pagination.PageRequest{Page: 1, PageSize: 20}
}

func pageRequest(page, size int) pagination.PageRequest {
	return pagination.PageRequest{Page: page, PageSize: size}
}

// fixedClock keeps tests inside June so the default trend skeleton covers the
// current month.
func fixedClock() time.Time {
	return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func newTestSession(t *testing.T) (*Session, *testutil.MemorySnapshotStore) {
	t.Helper()
	store := testutil.NewMemorySnapshotStore()
	mgr := NewManagerWithClock(store, fixedClock)
	return mgr.Session("user-1"), store
}

func TestAddBudgetCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, store := newTestSession(t)

		cat, err := s.AddBudgetCategory("Groceries", 500, "#3b82f6")
		testutil.AssertNoError(t, err)

		if cat.ID == "" {
			t.Fatal("expected generated category ID")
		}
		if cat.Spent != 0 {
			t.Errorf("expected zero spent, got %f", cat.Spent)
		}
		if cat.Trend != models.TrendUp {
			t.Errorf("expected default trend up, got %s", cat.Trend)
		}
		if store.SaveCalls != 1 {
			t.Errorf("expected exactly 1 save, got %d", store.SaveCalls)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		s, store := newTestSession(t)

		_, err := s.AddBudgetCategory("  ", 500, "")
		testutil.AssertAppError(t, err, "INVALID_NAME")
		if store.SaveCalls != 0 {
			t.Errorf("rejected command must not persist, got %d saves", store.SaveCalls)
		}
	})

	t.Run("non_positive_budget", func(t *testing.T) {
		s, _ := newTestSession(t)

		_, err := s.AddBudgetCategory("Groceries", 0, "")
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")
	})
}

func TestUpdateBudgetCategory(t *testing.T) {
	t.Run("partial_patch", func(t *testing.T) {
		s, _ := newTestSession(t)
		cat, _ := s.AddBudgetCategory("Groceries", 500, "#3b82f6")

		budget := 600.0
		updated, err := s.UpdateBudgetCategory(cat.ID, BudgetCategoryPatch{Budget: &budget})
		testutil.AssertNoError(t, err)

		if updated.Budget != 600 {
			t.Errorf("expected budget 600, got %f", updated.Budget)
		}
		if updated.Name != "Groceries" {
			t.Errorf("unpatched name must be kept, got %s", updated.Name)
		}
	})

	t.Run("unknown_id_is_noop", func(t *testing.T) {
		s, store := newTestSession(t)
		saves := store.SaveCalls

		budget := 600.0
		updated, err := s.UpdateBudgetCategory("missing", BudgetCategoryPatch{Budget: &budget})
		testutil.AssertNoError(t, err)
		if updated != nil {
			t.Fatal("expected nil for unknown id")
		}
		// The command still completes and persists.
		if store.SaveCalls != saves+1 {
			t.Errorf("expected one save for the no-op command, got %d", store.SaveCalls-saves)
		}
	})
}

func TestDeleteBudgetCategory(t *testing.T) {
	s, _ := newTestSession(t)
	cat, _ := s.AddBudgetCategory("Groceries", 500, "")
	s.AddTransaction(TransactionInput{
		Amount: 50, Category: "Groceries", Description: "Milk",
		Type: models.TransactionTypeExpense,
	})

	testutil.AssertNoError(t, s.DeleteBudgetCategory(cat.ID))

	if len(s.BudgetCategories()) != 0 {
		t.Fatal("expected category to be removed")
	}
	// Historical transactions keep their category text.
	page := s.Transactions(defaultPage())
	if len(page.Data) != 1 || page.Data[0].Category != "Groceries" {
		t.Error("expected transaction to keep its category after delete")
	}
}

func TestCategorySpendLinkage(t *testing.T) {
	t.Run("case_insensitive_match", func(t *testing.T) {
		s, _ := newTestSession(t)
		cat, _ := s.AddBudgetCategory("Groceries", 500, "")

		_, err := s.AddTransaction(TransactionInput{
			Amount: 75.50, Category: "groceries", Description: "Weekly shop",
			Type: models.TransactionTypeExpense,
		})
		testutil.AssertNoError(t, err)

		cats := s.BudgetCategories()
		if cats[0].ID != cat.ID || cats[0].Spent != 75.50 {
			t.Errorf("expected spent 75.50, got %f", cats[0].Spent)
		}
	})

	t.Run("income_does_not_touch_spend", func(t *testing.T) {
		s, _ := newTestSession(t)
		s.AddBudgetCategory("Groceries", 500, "")

		s.AddTransaction(TransactionInput{
			Amount: 200, Category: "Groceries", Description: "Refund",
			Type: models.TransactionTypeIncome,
		})

		if spent := s.BudgetCategories()[0].Spent; spent != 0 {
			t.Errorf("income must not change spend, got %f", spent)
		}
	})

	t.Run("unmatched_category_is_kept", func(t *testing.T) {
		s, store := newTestSession(t)
		saves := store.SaveCalls

		tx, err := s.AddTransaction(TransactionInput{
			Amount: 30, Category: "Nonexistent", Description: "Stray",
			Type: models.TransactionTypeExpense,
		})
		testutil.AssertNoError(t, err)
		if tx == nil {
			t.Fatal("transaction with unmatched category must still be recorded")
		}
		if store.SaveCalls != saves+1 {
			t.Errorf("expected one save, got %d", store.SaveCalls-saves)
		}
	})
}

func TestSavingsGoalClamping(t *testing.T) {
	t.Run("initial_amount_clamped_to_target", func(t *testing.T) {
		s, _ := newTestSession(t)

		goal, err := s.AddSavingsGoal(SavingsGoalInput{Name: "Vacation", Current: 5000, Target: 3000})
		testutil.AssertNoError(t, err)
		if goal.Current != 3000 {
			t.Errorf("expected current clamped to 3000, got %f", goal.Current)
		}
	})

	t.Run("add_money_caps_at_target", func(t *testing.T) {
		s, _ := newTestSession(t)
		goal, _ := s.AddSavingsGoal(SavingsGoalInput{Name: "Vacation", Current: 2900, Target: 3000})

		updated, err := s.AddMoneyToGoal(goal.ID, 500)
		testutil.AssertNoError(t, err)
		if updated.Current != 3000 {
			t.Errorf("expected current capped at 3000, got %f", updated.Current)
		}
	})

	t.Run("add_money_unknown_goal_is_noop", func(t *testing.T) {
		s, _ := newTestSession(t)

		updated, err := s.AddMoneyToGoal("missing", 100)
		testutil.AssertNoError(t, err)
		if updated != nil {
			t.Fatal("expected nil for unknown goal")
		}
	})

	t.Run("goal_written_to_cache", func(t *testing.T) {
		s, store := newTestSession(t)
		s.AddSavingsGoal(SavingsGoalInput{Name: "Vacation", Target: 3000})

		cached, err := store.LoadGoalsCache("user-1")
		testutil.AssertNoError(t, err)
		if len(cached) != 1 || cached[0].Name != "Vacation" {
			t.Error("expected goal in the goals cache")
		}
	})
}

func TestOneSavePerMutation(t *testing.T) {
	s, store := newTestSession(t)

	s.AddBudgetCategory("Groceries", 500, "")
	s.AddSavingsGoal(SavingsGoalInput{Name: "Vacation", Target: 3000})
	s.AddTransaction(TransactionInput{
		Amount: 50, Category: "Groceries", Description: "Milk",
		Type: models.TransactionTypeExpense,
	})
	s.UpdateMonthlyIncome(5000)
	s.AddDebt(DebtInput{
		Amount: 1000, Creditor: "Bank", Type: models.DebtTypePersonalLoan,
		Frequency: models.FrequencyMonthly,
	})

	if store.SaveCalls != 5 {
		t.Errorf("expected 5 saves for 5 mutations, got %d", store.SaveCalls)
	}
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	s, store := newTestSession(t)
	store.SaveErr = errTest

	cat, err := s.AddBudgetCategory("Groceries", 500, "")
	testutil.AssertNoError(t, err)
	if cat == nil {
		t.Fatal("mutation must succeed in memory despite persistence failure")
	}
	if len(s.BudgetCategories()) != 1 {
		t.Error("in-memory state must reflect the mutation")
	}
}

var errTest = errFailedSave{}

type errFailedSave struct{}

func (errFailedSave) Error() string { return "disk full" }

func TestDebtLifecycle(t *testing.T) {
	t.Run("payments_reduce_remaining", func(t *testing.T) {
		s, _ := newTestSession(t)
		debt, _ := s.AddDebt(DebtInput{
			Amount: 1000, Creditor: "Bank", Type: models.DebtTypePersonalLoan,
			Frequency: models.FrequencyMonthly,
		})

		s.AddDebtPayment(debt.ID, 200, models.NewDate(2025, time.June, 1))
		updated, err := s.AddDebtPayment(debt.ID, 300, models.NewDate(2025, time.June, 10))
		testutil.AssertNoError(t, err)

		if updated.Remaining != 500 {
			t.Errorf("expected remaining 500, got %f", updated.Remaining)
		}
		if len(updated.Payments) != 2 {
			t.Errorf("expected 2 payments, got %d", len(updated.Payments))
		}
	})

	t.Run("overpayment_goes_negative", func(t *testing.T) {
		s, _ := newTestSession(t)
		debt, _ := s.AddDebt(DebtInput{
			Amount: 100, Creditor: "Friend", Type: models.DebtTypeOther,
			Frequency: models.FrequencyMonthly,
		})

		updated, err := s.AddDebtPayment(debt.ID, 150, models.NewDate(2025, time.June, 1))
		testutil.AssertNoError(t, err)
		if updated.Remaining != -50 {
			t.Errorf("expected remaining -50, got %f", updated.Remaining)
		}
	})

	t.Run("amount_patch_recomputes_remaining", func(t *testing.T) {
		s, _ := newTestSession(t)
		debt, _ := s.AddDebt(DebtInput{
			Amount: 1000, Creditor: "Bank", Type: models.DebtTypePersonalLoan,
			Frequency: models.FrequencyMonthly,
		})
		s.AddDebtPayment(debt.ID, 400, models.NewDate(2025, time.June, 1))

		amount := 2000.0
		updated, err := s.UpdateDebt(debt.ID, DebtPatch{Amount: &amount})
		testutil.AssertNoError(t, err)
		if updated.Remaining != 1600 {
			t.Errorf("expected remaining 1600, got %f", updated.Remaining)
		}
	})

	t.Run("payment_to_unknown_debt_is_noop", func(t *testing.T) {
		s, store := newTestSession(t)
		saves := store.SaveCalls

		updated, err := s.AddDebtPayment("missing", 100, models.NewDate(2025, time.June, 1))
		testutil.AssertNoError(t, err)
		if updated != nil {
			t.Fatal("expected nil for unknown debt")
		}
		if store.SaveCalls != saves+1 {
			t.Errorf("no-op command still persists once, got %d saves", store.SaveCalls-saves)
		}
	})

	t.Run("invalid_type_rejected", func(t *testing.T) {
		s, _ := newTestSession(t)

		_, err := s.AddDebt(DebtInput{
			Amount: 100, Creditor: "Bank", Type: "Boat Loan",
			Frequency: models.FrequencyMonthly,
		})
		testutil.AssertAppError(t, err, "INVALID_DEBT_TYPE")
	})
}

func TestDismissInsight(t *testing.T) {
	s, _ := newTestSession(t)
	s.AddBudgetCategory("Dining", 100, "")
	s.AddTransaction(TransactionInput{
		Amount: 150, Category: "Dining", Description: "Dinner",
		Type: models.TransactionTypeExpense,
	})

	insights := s.ActiveInsights()
	if len(insights) == 0 {
		t.Fatal("expected over-budget insight")
	}
	id := insights[0].ID

	testutil.AssertNoError(t, s.DismissInsight(id))
	for _, in := range s.ActiveInsights() {
		if in.ID == id {
			t.Fatal("dismissed insight must not be active")
		}
	}

	// Dismissing again, or dismissing an unknown id, stays a no-op.
	testutil.AssertNoError(t, s.DismissInsight(id))
	testutil.AssertNoError(t, s.DismissInsight("missing"))
}

func TestSetIncomeFrequency(t *testing.T) {
	t.Run("custom_requires_days", func(t *testing.T) {
		s, _ := newTestSession(t)

		err := s.SetIncomeFrequency(models.IncomeFrequency{Type: models.FrequencyCustom})
		testutil.AssertAppError(t, err, "INVALID_FREQUENCY")

		testutil.AssertNoError(t, s.SetIncomeFrequency(models.IncomeFrequency{
			Type: models.FrequencyCustom, Days: 10,
		}))
		_, freq := s.Income()
		if freq.Days != 10 {
			t.Errorf("expected custom days 10, got %d", freq.Days)
		}
	})

	t.Run("unknown_frequency_rejected", func(t *testing.T) {
		s, _ := newTestSession(t)

		err := s.SetIncomeFrequency(models.IncomeFrequency{Type: "fortnightly"})
		testutil.AssertAppError(t, err, "INVALID_FREQUENCY")
	})
}

func TestUpdateMonthlyIncomeTrends(t *testing.T) {
	s, _ := newTestSession(t)
	s.AddTransaction(TransactionInput{
		Amount: 1200, Category: "Rent", Description: "Rent",
		Type: models.TransactionTypeExpense,
	})
	testutil.AssertNoError(t, s.UpdateMonthlyIncome(5000))

	for _, trend := range s.MonthlyTrends() {
		if trend.Month == "Jun" {
			if trend.Income != 5000 {
				t.Errorf("expected June income 5000, got %f", trend.Income)
			}
			if trend.Savings != 3800 {
				t.Errorf("expected June savings 3800, got %f", trend.Savings)
			}
			return
		}
	}
	t.Fatal("June trend entry missing")
}
