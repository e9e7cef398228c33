package engine

import (
	"time"

	"finai/internal/models"
	"finai/internal/uuid"
)

// expandRecurring walks every recurring template transaction and emits the
// concrete instances that fall due between the template's cursor and now.
// The cursor (NextRecurrenceDate) is advanced past the last emitted date and
// stored back on the template, so re-running the expansion is a no-op until
// time moves forward again.
//
// Emitted instances are plain transactions: they carry no recurrence
// metadata, and expense instances count against the matching budget category
// exactly as a hand-entered expense would. Instances whose date, description,
// and amount already match an existing transaction are skipped, which keeps
// the expansion safe against snapshots saved mid-expansion. The template
// itself occupies its own start date (its spend was applied when it was
// recorded), so the first emitted instance falls one period later.
//
// Returns true when the snapshot changed.
func expandRecurring(snap *models.FinancialSnapshot, now time.Time) bool {
	today := models.DateOf(now)
	changed := false

	var emitted []models.Transaction
	for i := range snap.Transactions {
		tmpl := &snap.Transactions[i]
		if !tmpl.IsRecurring {
			continue
		}

		cursor := tmpl.Date
		if tmpl.NextRecurrenceDate != nil {
			cursor = *tmpl.NextRecurrenceDate
		}

		for !cursor.After(today.Time) {
			if tmpl.RecurrenceEndDate != nil && cursor.After(tmpl.RecurrenceEndDate.Time) {
				break
			}
			if !hasInstance(snap, emitted, cursor, tmpl.Description, tmpl.Amount) {
				inst := models.Transaction{
					ID:          uuid.New(),
					Amount:      tmpl.Amount,
					Category:    tmpl.Category,
					Description: tmpl.Description,
					Date:        cursor,
					Type:        tmpl.Type,
				}
				emitted = append(emitted, inst)
				applyCategorySpend(snap, inst)
				changed = true
			}
			cursor = advance(cursor, tmpl.Recurrence, tmpl.RecurrenceIntervalDays)
		}

		if tmpl.NextRecurrenceDate == nil || !cursor.Equal(tmpl.NextRecurrenceDate.Time) {
			next := cursor
			tmpl.NextRecurrenceDate = &next
			changed = true
		}
	}

	if len(emitted) > 0 {
		snap.Transactions = append(emitted, snap.Transactions...)
	}
	return changed
}

// advance steps a recurrence cursor forward by one period.
func advance(d models.Date, freq models.Frequency, intervalDays int) models.Date {
	switch freq {
	case models.FrequencyDaily:
		return d.AddDays(1)
	case models.FrequencyWeekly:
		return d.AddDays(7)
	case models.FrequencyBiWeekly:
		return d.AddDays(14)
	case models.FrequencySemiMonthly:
		return d.AddDays(15)
	case models.FrequencyMonthly:
		return d.AddMonths(1)
	case models.FrequencyQuarterly:
		return d.AddMonths(3)
	case models.FrequencyYearly:
		return d.AddYears(1)
	case models.FrequencyCustom:
		if intervalDays <= 0 {
			intervalDays = 1
		}
		return d.AddDays(intervalDays)
	}
	return d.AddDays(1)
}

// hasInstance reports whether a transaction with the same date, description,
// and amount already exists in the snapshot or in this expansion pass.
// Recurring templates count: a template matches its own start date.
func hasInstance(snap *models.FinancialSnapshot, emitted []models.Transaction, date models.Date, desc string, amount float64) bool {
	for _, tx := range snap.Transactions {
		if tx.Date.Equal(date.Time) && tx.Description == desc && tx.Amount == amount {
			return true
		}
	}
	for _, tx := range emitted {
		if tx.Date.Equal(date.Time) && tx.Description == desc && tx.Amount == amount {
			return true
		}
	}
	return false
}
