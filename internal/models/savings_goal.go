package models

// SavingsGoal represents a target amount the user is saving toward.
// Current is clamped to [0, Target] on every contribution.
type SavingsGoal struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	Current             float64 `json:"current"`
	Target              float64 `json:"target"`
	TargetDate          Date    `json:"targetDate"`
	Category            string  `json:"category"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	Color               string  `json:"color"`
}
