package models

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	}
	return false
}

// Transaction represents a single dated movement of money. The category is a
// soft link to a BudgetCategory by name; historical transactions keep their
// category text even if the category is later renamed or deleted.
//
// Transactions are immutable once created, except that the recurrence expander
// advances NextRecurrenceDate as it emits concrete instances.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      float64         `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        Date            `json:"date"`
	Type        TransactionType `json:"type"`

	// Recurrence metadata
	IsRecurring            bool      `json:"isRecurring,omitempty"`
	Recurrence             Frequency `json:"recurrence,omitempty"`
	RecurrenceIntervalDays int       `json:"recurrenceIntervalDays,omitempty"`
	RecurrenceEndDate      *Date     `json:"recurrenceEndDate,omitempty"`
	NextRecurrenceDate     *Date     `json:"nextRecurrenceDate,omitempty"`
}
