package engine

import (
	"fmt"

	"finai/internal/models"
)

// notificationWindowDays is how far ahead due-date reminders look.
const notificationWindowDays = 7

// Notification is a transient alert derived from the snapshot. Notifications
// live only in the session: they are rebuilt after every mutation and lost on
// logout. The Read flag survives rebuilds for notifications whose message is
// unchanged.
type Notification struct {
	Message string      `json:"message"`
	Read    bool        `json:"read"`
	Date    models.Date `json:"date"`
}

// refreshNotifications rebuilds the notification list from the snapshot,
// carrying the Read flag over by message text. Callers hold the session mutex
// (or are still inside NewSession).
func (s *Session) refreshNotifications() {
	read := make(map[string]bool, len(s.notifications))
	for _, n := range s.notifications {
		if n.Read {
			read[n.Message] = true
		}
	}

	now := s.now()
	today := models.DateOf(now)
	var fresh []Notification

	for _, debt := range s.snap.Debts {
		if debt.Remaining <= 0 || debt.DueDate.IsZero() {
			continue
		}
		days := debt.DueDate.DaysUntil(now)
		if days >= 0 && days <= notificationWindowDays {
			fresh = append(fresh, Notification{
				Message: fmt.Sprintf("Debt to %s is due in %d day(s).", debt.Creditor, days),
				Date:    today,
			})
		}
	}

	for _, cat := range s.snap.BudgetCategories {
		if cat.Spent > cat.Budget {
			fresh = append(fresh, Notification{
				Message: fmt.Sprintf("You are over budget in %s by $%.2f.", cat.Name, cat.Spent-cat.Budget),
				Date:    today,
			})
		}
	}

	for _, goal := range s.snap.SavingsGoals {
		if goal.Current >= goal.Target || goal.TargetDate.IsZero() {
			continue
		}
		days := goal.TargetDate.DaysUntil(now)
		if days >= 0 && days <= notificationWindowDays {
			fresh = append(fresh, Notification{
				Message: fmt.Sprintf("Savings goal '%s' is due in %d day(s).", goal.Name, days),
				Date:    today,
			})
		}
	}

	for i := range fresh {
		if read[fresh[i].Message] {
			fresh[i].Read = true
		}
	}
	s.notifications = fresh
}

// Notifications returns the current notification list.
func (s *Session) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Notification{}, s.notifications...)
}

// MarkNotificationsRead marks every current notification as read.
func (s *Session) MarkNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}
