package engine

import (
	"strings"
	"testing"

	"finai/internal/models"
	"finai/internal/testutil"
)

func hasSuggestion(out []string, fragment string) bool {
	for _, s := range out {
		if strings.Contains(s, fragment) {
			return true
		}
	}
	return false
}

func TestBuildSuggestions(t *testing.T) {
	t.Run("healthy_fallback", func(t *testing.T) {
		snap := models.DefaultSnapshot()
		snap.SavingsGoals = []models.SavingsGoal{testutil.NewGoal("Vacation", 2000, 3000)}

		out := buildSuggestions(snap)
		if len(out) != 1 || !strings.Contains(out[0], "Your budget looks healthy!") {
			t.Errorf("expected healthy fallback only, got %v", out)
		}
	})

	t.Run("over_budget", func(t *testing.T) {
		snap := models.DefaultSnapshot()
		snap.BudgetCategories = []models.BudgetCategory{testutil.NewCategory("Dining", 150, 100)}
		snap.SavingsGoals = []models.SavingsGoal{testutil.NewGoal("Vacation", 2000, 3000)}

		if !hasSuggestion(buildSuggestions(snap), "You are over budget in Dining.") {
			t.Error("expected over-budget suggestion")
		}
	})

	t.Run("near_budget_limit", func(t *testing.T) {
		snap := models.DefaultSnapshot()
		snap.BudgetCategories = []models.BudgetCategory{testutil.NewCategory("Dining", 95, 100)}

		if !hasSuggestion(buildSuggestions(snap), "close to your budget limit in Dining") {
			t.Error("expected near-limit suggestion")
		}
	})

	t.Run("low_savings_rate", func(t *testing.T) {
		snap := models.DefaultSnapshot()
		snap.MonthlyIncome = 1000
		snap.BudgetCategories = []models.BudgetCategory{testutil.NewCategory("Rent", 950, 1000)}

		if !hasSuggestion(buildSuggestions(snap), "savings rate is below 10%") {
			t.Error("expected low savings rate suggestion")
		}
	})

	t.Run("high_savings_rate", func(t *testing.T) {
		snap := models.DefaultSnapshot()
		snap.MonthlyIncome = 1000
		snap.BudgetCategories = []models.BudgetCategory{testutil.NewCategory("Rent", 500, 1000)}

		if !hasSuggestion(buildSuggestions(snap), "savings rate is above 20%") {
			t.Error("expected high savings rate suggestion")
		}
	})

	t.Run("no_goals", func(t *testing.T) {
		snap := models.DefaultSnapshot()

		if !hasSuggestion(buildSuggestions(snap), "Set a savings goal") {
			t.Error("expected no-goals suggestion")
		}
	})

	t.Run("goal_under_halfway", func(t *testing.T) {
		snap := models.DefaultSnapshot()
		snap.SavingsGoals = []models.SavingsGoal{testutil.NewGoal("Vacation", 1000, 3000)}

		if !hasSuggestion(buildSuggestions(snap), "less than halfway to your savings goal 'Vacation'") {
			t.Error("expected halfway suggestion")
		}
	})

	t.Run("debt_load_and_interest", func(t *testing.T) {
		snap := models.DefaultSnapshot()
		snap.MonthlyIncome = 1000
		snap.Debts = []models.Debt{testutil.NewDebt("Card Co", 800, 24)}

		out := buildSuggestions(snap)
		if !hasSuggestion(out, "total debt is more than half your monthly income") {
			t.Error("expected debt load suggestion")
		}
		if !hasSuggestion(out, "Your debt to Card Co has a high interest rate (24%)") {
			t.Error("expected high interest suggestion")
		}
	})

	t.Run("shopping_spend", func(t *testing.T) {
		snap := models.DefaultSnapshot()
		snap.MonthlyIncome = 1000
		snap.BudgetCategories = []models.BudgetCategory{testutil.NewCategory("Online Shopping", 250, 400)}

		if !hasSuggestion(buildSuggestions(snap), "over 20% of your income on shopping") {
			t.Error("expected shopping suggestion")
		}
	})
}
