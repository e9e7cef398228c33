package engine

import (
	"testing"

	"finai/internal/models"
	"finai/internal/testutil"
)

func TestBuildPayoffPlan(t *testing.T) {
	t.Run("orderings_diverge", func(t *testing.T) {
		debts := []models.Debt{
			testutil.NewDebt("A", 500, 5),
			testutil.NewDebt("B", 200, 2),
			testutil.NewDebt("C", 800, 20),
		}

		plan := BuildPayoffPlan(debts)

		wantSnowball := []string{"B", "A", "C"}
		for i, want := range wantSnowball {
			if plan.Snowball[i].Creditor != want {
				t.Errorf("snowball[%d]: expected %s, got %s", i, want, plan.Snowball[i].Creditor)
			}
		}

		wantAvalanche := []string{"C", "A", "B"}
		for i, want := range wantAvalanche {
			if plan.Avalanche[i].Creditor != want {
				t.Errorf("avalanche[%d]: expected %s, got %s", i, want, plan.Avalanche[i].Creditor)
			}
		}

		if plan.TotalDebt != 1500 {
			t.Errorf("expected total debt 1500, got %f", plan.TotalDebt)
		}
		if plan.AvgInterestRate != 9 {
			t.Errorf("expected average rate 9, got %f", plan.AvgInterestRate)
		}
	})

	t.Run("ties_keep_input_order", func(t *testing.T) {
		debts := []models.Debt{
			testutil.NewDebt("First", 300, 5),
			testutil.NewDebt("Second", 300, 5),
		}

		plan := BuildPayoffPlan(debts)
		if plan.Snowball[0].Creditor != "First" || plan.Avalanche[0].Creditor != "First" {
			t.Error("equal debts must keep their original relative order")
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		plan := BuildPayoffPlan(nil)
		if len(plan.Snowball) != 0 || len(plan.Avalanche) != 0 {
			t.Error("expected empty orderings")
		}
		if plan.TotalDebt != 0 || plan.AvgInterestRate != 0 {
			t.Error("expected zero totals")
		}
	})

	t.Run("input_not_mutated", func(t *testing.T) {
		debts := []models.Debt{
			testutil.NewDebt("A", 500, 5),
			testutil.NewDebt("B", 200, 2),
		}

		BuildPayoffPlan(debts)
		if debts[0].Creditor != "A" || debts[1].Creditor != "B" {
			t.Error("input slice order must be preserved")
		}
	})
}
