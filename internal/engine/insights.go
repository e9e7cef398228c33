package engine

import (
	"fmt"
	"strings"

	"finai/internal/models"
)

// Insight rules. Each rule derives a stable id from its name and subject, so
// re-evaluation updates the existing insight in place instead of appending a
// duplicate. A dismissed insight stays dismissed when its rule fires again.

const frequencyRuleWindow = 10 // most recent expenses examined
const frequencyRuleMin = 5     // matches within the window that trigger the rule

// applyInsightRules evaluates every insight rule against the current snapshot
// and upserts the results. Callers hold the session mutex.
func (s *Session) applyInsightRules() {
	snap := s.snap

	// Over-budget categories.
	for _, cat := range snap.BudgetCategories {
		if cat.Spent <= cat.Budget {
			continue
		}
		over := cat.Spent - cat.Budget
		s.upsertInsight(models.Insight{
			ID:    "budget:" + cat.ID,
			Title: fmt.Sprintf("%s Budget Exceeded", cat.Name),
			Description: fmt.Sprintf(
				"You've spent $%.2f over your %s budget this month. Consider reducing expenses in this category.",
				over, cat.Name),
			Confidence: 95,
			Type:       models.InsightTypeWarning,
			Category:   "Budget",
			Actionable: true,
		})
	}

	// High spending frequency: a category appearing often among the most
	// recent expenses. Counting is case-insensitive, but the message shows
	// the category as the user typed it.
	counts := map[string]int{}
	names := map[string]string{}
	seen := 0
	for _, tx := range snap.Transactions {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		key := strings.ToLower(tx.Category)
		counts[key]++
		if _, ok := names[key]; !ok {
			names[key] = tx.Category
		}
		seen++
		if seen >= frequencyRuleWindow {
			break
		}
	}
	for key, n := range counts {
		if n < frequencyRuleMin {
			continue
		}
		s.upsertInsight(models.Insight{
			ID:    "frequency:" + key,
			Title: fmt.Sprintf("High Spending Frequency in %s", names[key]),
			Description: fmt.Sprintf(
				"You've made %d %s transactions recently. Consider setting a weekly limit to better control spending.",
				n, names[key]),
			Confidence: 85,
			Type:       models.InsightTypeInfo,
			Category:   "Optimization",
			Actionable: true,
		})
	}

	// Savings rate above the 20% guideline.
	if m := computeMetrics(snap); m.SavingsRate > 20 {
		s.upsertInsight(models.Insight{
			ID:    "savings-rate",
			Title: "Excellent Savings Rate!",
			Description: fmt.Sprintf(
				"Your savings rate of %.1f%% is above the recommended 20%%. Keep up the great work!",
				m.SavingsRate),
			Confidence: 90,
			Type:       models.InsightTypeSuccess,
			Category:   "Goals",
			Actionable: false,
		})
	}
}

// upsertInsight replaces the insight with the same id, preserving its
// dismissal flag, or appends it when new.
func (s *Session) upsertInsight(in models.Insight) {
	for i := range s.snap.Insights {
		if s.snap.Insights[i].ID == in.ID {
			in.Dismissed = s.snap.Insights[i].Dismissed
			s.snap.Insights[i] = in
			return
		}
	}
	s.snap.Insights = append(s.snap.Insights, in)
}
