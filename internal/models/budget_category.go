package models

// Trend indicates the direction a category's spending is moving. Display-only.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// BudgetCategory represents a spending category with a budget target.
// Spent accumulates from expense transactions whose category name matches
// (case-insensitive); it is never edited directly by the user.
type BudgetCategory struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Spent  float64 `json:"spent"`
	Budget float64 `json:"budget"`
	Color  string  `json:"color"`
	Trend  Trend   `json:"trend"`
}
