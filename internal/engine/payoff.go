package engine

import (
	"sort"

	"finai/internal/models"
)

// PayoffPlan holds the two classic debt payoff orderings plus summary
// figures. Snowball orders by smallest remaining balance first (quick wins);
// avalanche orders by highest interest rate first (cheapest overall). Ties
// keep their original relative order.
type PayoffPlan struct {
	Snowball        []models.Debt `json:"snowball"`
	Avalanche       []models.Debt `json:"avalanche"`
	TotalDebt       float64       `json:"totalDebt"`
	AvgInterestRate float64       `json:"avgInterestRate"`
}

// BuildPayoffPlan computes both orderings over the given debts. The input is
// not modified.
func BuildPayoffPlan(debts []models.Debt) PayoffPlan {
	plan := PayoffPlan{
		Snowball:  make([]models.Debt, len(debts)),
		Avalanche: make([]models.Debt, len(debts)),
	}
	copy(plan.Snowball, debts)
	copy(plan.Avalanche, debts)

	sort.SliceStable(plan.Snowball, func(i, j int) bool {
		return plan.Snowball[i].Remaining < plan.Snowball[j].Remaining
	})
	sort.SliceStable(plan.Avalanche, func(i, j int) bool {
		return plan.Avalanche[i].InterestRate > plan.Avalanche[j].InterestRate
	})

	for _, debt := range debts {
		plan.TotalDebt += debt.Remaining
		plan.AvgInterestRate += debt.InterestRate
	}
	if len(debts) > 0 {
		plan.AvgInterestRate /= float64(len(debts))
	}
	return plan
}
