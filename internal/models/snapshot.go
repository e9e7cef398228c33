package models

// SchemaVersion is the current snapshot wire-format version. Older snapshots
// without the field load as version 0 and are normalized on read.
const SchemaVersion = 1

// MonthlyTrend is one month's aggregate income, expenses, and savings for the
// dashboard trend chart.
type MonthlyTrend struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

// FinancialSnapshot is the full persisted financial state for one user. It is
// the sole unit of persistence: every mutation rewrites the whole snapshot.
type FinancialSnapshot struct {
	SchemaVersion    int              `json:"schemaVersion"`
	BudgetCategories []BudgetCategory `json:"budgetCategories"`
	SavingsGoals     []SavingsGoal    `json:"savingsGoals"`
	Transactions     []Transaction    `json:"transactions"`
	Insights         []Insight        `json:"insights"`
	MonthlyTrends    []MonthlyTrend   `json:"monthlyTrends"`
	MonthlyIncome    float64          `json:"monthlyIncome"`
	IncomeFrequency  IncomeFrequency  `json:"incomeFrequency"`
	Debts            []Debt           `json:"debts"`
}

// DefaultSnapshot returns the blank-slate state a user starts with: empty
// collections, zero income, and a six-month zeroed trend skeleton.
func DefaultSnapshot() *FinancialSnapshot {
	snap := &FinancialSnapshot{
		SchemaVersion:   SchemaVersion,
		IncomeFrequency: DefaultIncomeFrequency(),
	}
	snap.Normalize()
	return snap
}

// Normalize repairs a freshly decoded snapshot: nil collections become empty,
// a missing income frequency defaults to monthly, and the trend skeleton is
// seeded when absent.
func (s *FinancialSnapshot) Normalize() {
	if s.SchemaVersion == 0 {
		s.SchemaVersion = SchemaVersion
	}
	if s.BudgetCategories == nil {
		s.BudgetCategories = []BudgetCategory{}
	}
	if s.SavingsGoals == nil {
		s.SavingsGoals = []SavingsGoal{}
	}
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	if s.Insights == nil {
		s.Insights = []Insight{}
	}
	if s.Debts == nil {
		s.Debts = []Debt{}
	}
	if s.IncomeFrequency.Type == "" {
		s.IncomeFrequency = DefaultIncomeFrequency()
	}
	if len(s.MonthlyTrends) == 0 {
		s.MonthlyTrends = []MonthlyTrend{
			{Month: "Jan"}, {Month: "Feb"}, {Month: "Mar"},
			{Month: "Apr"}, {Month: "May"}, {Month: "Jun"},
		}
	}
}
