package engine

import "finai/internal/models"

// Metrics is the derived dashboard summary. All fields are recomputed from
// the snapshot on every read and never stored.
type Metrics struct {
	TotalBudget         float64 `json:"totalBudget"`
	TotalSpent          float64 `json:"totalSpent"`
	TotalSavingsTarget  float64 `json:"totalSavingsTarget"`
	TotalSavingsCurrent float64 `json:"totalSavingsCurrent"`
	MonthlyIncome       float64 `json:"monthlyIncome"`
	SavingsRate         float64 `json:"savingsRate"`
}

// computeMetrics derives the summary figures. The savings rate is
// (income - spent) / income as a percentage, and 0 when income is 0.
func computeMetrics(snap *models.FinancialSnapshot) Metrics {
	m := Metrics{MonthlyIncome: snap.MonthlyIncome}
	for _, cat := range snap.BudgetCategories {
		m.TotalBudget += cat.Budget
		m.TotalSpent += cat.Spent
	}
	for _, goal := range snap.SavingsGoals {
		m.TotalSavingsTarget += goal.Target
		m.TotalSavingsCurrent += goal.Current
	}
	if snap.MonthlyIncome > 0 {
		m.SavingsRate = (snap.MonthlyIncome - m.TotalSpent) / snap.MonthlyIncome * 100
	}
	return m
}
