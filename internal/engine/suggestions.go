package engine

import (
	"fmt"
	"strings"

	"finai/internal/models"
)

// buildSuggestions produces the advisory text shown on the dashboard. Pure
// function of the snapshot; never persisted, recomputed on every read.
func buildSuggestions(snap *models.FinancialSnapshot) []string {
	var out []string

	for _, cat := range snap.BudgetCategories {
		if cat.Spent > cat.Budget {
			out = append(out, fmt.Sprintf(
				"You are over budget in %s. Consider reducing spending or increasing your budget for this category.",
				cat.Name))
		} else if cat.Budget > 0 && cat.Spent > 0.9*cat.Budget {
			out = append(out, fmt.Sprintf(
				"You are close to your budget limit in %s. Monitor your spending to avoid going over.",
				cat.Name))
		}
	}

	m := computeMetrics(snap)
	if snap.MonthlyIncome > 0 {
		if m.SavingsRate < 10 {
			out = append(out, "Your savings rate is below 10%. Try to save at least 10% of your income each month.")
		} else if m.SavingsRate > 20 {
			out = append(out, "Great job! Your savings rate is above 20%. Keep it up!")
		}
	}

	if len(snap.SavingsGoals) == 0 {
		out = append(out, "Set a savings goal to start working toward something important to you.")
	}
	for _, goal := range snap.SavingsGoals {
		if goal.Current < 0.5*goal.Target {
			out = append(out, fmt.Sprintf(
				"You are less than halfway to your savings goal '%s'. Consider increasing your monthly contribution.",
				goal.Name))
		}
	}

	if len(snap.Debts) > 0 {
		totalDebt := 0.0
		for _, debt := range snap.Debts {
			totalDebt += debt.Remaining
		}
		if snap.MonthlyIncome > 0 && totalDebt > 0.5*snap.MonthlyIncome {
			out = append(out, "Your total debt is more than half your monthly income. Consider using the snowball or avalanche method to pay it down faster.")
		}
		for _, debt := range snap.Debts {
			if debt.InterestRate > 10 {
				out = append(out, fmt.Sprintf(
					"Your debt to %s has a high interest rate (%g%%). Prioritize paying it off.",
					debt.Creditor, debt.InterestRate))
			}
		}
	}

	for _, cat := range snap.BudgetCategories {
		if strings.Contains(strings.ToLower(cat.Name), "shopping") &&
			snap.MonthlyIncome > 0 && cat.Spent > 0.2*snap.MonthlyIncome {
			out = append(out, "You spent over 20% of your income on shopping. Review your subscriptions and discretionary purchases.")
		}
	}

	if len(out) == 0 {
		out = append(out, "Your budget looks healthy! Keep tracking your spending and saving for your goals.")
	}
	return out
}
