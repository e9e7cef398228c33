package models

// DebtType classifies a debt.
type DebtType string

const (
	DebtTypePersonalLoan DebtType = "Personal Loan"
	DebtTypeCreditCard   DebtType = "Credit Card"
	DebtTypeMortgage     DebtType = "Mortgage"
	DebtTypeStudentLoan  DebtType = "Student Loan"
	DebtTypeMedical      DebtType = "Medical"
	DebtTypeOther        DebtType = "Other"
)

// Valid reports whether t is a known debt type.
func (t DebtType) Valid() bool {
	switch t {
	case DebtTypePersonalLoan, DebtTypeCreditCard, DebtTypeMortgage,
		DebtTypeStudentLoan, DebtTypeMedical, DebtTypeOther:
		return true
	}
	return false
}

// Debt represents money owed to a creditor. Remaining is stored but always
// recomputed as Amount minus the sum of payments; overpayment drives it
// negative, signalling a credit with the creditor.
type Debt struct {
	ID           string        `json:"id"`
	Amount       float64       `json:"amount"`
	Creditor     string        `json:"creditor"`
	Type         DebtType      `json:"type"`
	Description  string        `json:"description,omitempty"`
	StartDate    Date          `json:"startDate"`
	DueDate      Date          `json:"dueDate"`
	Payments     []DebtPayment `json:"payments"`
	Frequency    Frequency     `json:"frequency"`
	InterestRate float64       `json:"interestRate,omitempty"`
	Remaining    float64       `json:"remaining"`
}

// RecomputeRemaining re-derives Remaining from the original amount and the
// payment history. Not clamped at zero.
func (d *Debt) RecomputeRemaining() {
	total := 0.0
	for _, p := range d.Payments {
		total += p.Amount
	}
	d.Remaining = d.Amount - total
}

// DebtPayment is a single payment toward a debt. Immutable once appended;
// owned exclusively by its parent debt.
type DebtPayment struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Date   Date    `json:"date"`
}
