package models

import "encoding/json"

// Frequency represents how often a recurring amount repeats.
type Frequency string

const (
	FrequencyDaily       Frequency = "daily"
	FrequencyWeekly      Frequency = "weekly"
	FrequencyBiWeekly    Frequency = "bi-weekly"
	FrequencySemiMonthly Frequency = "semi-monthly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyQuarterly   Frequency = "quarterly"
	FrequencyYearly      Frequency = "yearly"
	FrequencyCustom      Frequency = "custom"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiWeekly, FrequencySemiMonthly,
		FrequencyMonthly, FrequencyQuarterly, FrequencyYearly, FrequencyCustom:
		return true
	}
	return false
}

// IncomeFrequency describes how often income arrives. Non-custom frequencies
// serialize as a bare string; custom serializes as {"type":"custom","days":N}.
// Both forms are accepted on decode for compatibility with older snapshots.
type IncomeFrequency struct {
	Type Frequency `json:"type"`
	Days int       `json:"days,omitempty"`
}

// DefaultIncomeFrequency is monthly income.
func DefaultIncomeFrequency() IncomeFrequency {
	return IncomeFrequency{Type: FrequencyMonthly}
}

// MarshalJSON implements json.Marshaler.
func (f IncomeFrequency) MarshalJSON() ([]byte, error) {
	if f.Type != FrequencyCustom {
		return json.Marshal(string(f.Type))
	}
	return json.Marshal(struct {
		Type Frequency `json:"type"`
		Days int       `json:"days"`
	}{f.Type, f.Days})
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *IncomeFrequency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Type = Frequency(s)
		f.Days = 0
		return nil
	}
	var obj struct {
		Type Frequency `json:"type"`
		Days int       `json:"days"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	f.Type = obj.Type
	f.Days = obj.Days
	return nil
}
