package entities

import "time"

// DeadlineStatus classifies how urgent a service order deadline is.

type DeadlineStatus string

const (
	DeadlineNone     DeadlineStatus = "none"
	DeadlineOverdue  DeadlineStatus = "overdue"
	DeadlineDueToday DeadlineStatus = "due_today"
	DeadlineDueSoon  DeadlineStatus = "due_soon"
)

type DeadlineAssessment struct {
	Status  DeadlineStatus `json:"status"`
	Message string         `json:"message,omitempty"`
}

// Midnight truncates t to the start of its calendar day, keeping the location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EvaluateDeadline classifies the end date of a service order relative to now.
// Time-of-day is ignored on both sides. Closed orders and orders without an end
// date have no deadline. The due-soon window covers up to two days ahead.
func EvaluateDeadline(endDate *time.Time, phase ServiceOrderPhase, now time.Time) DeadlineAssessment {
	if endDate == nil || phase.IsTerminal() {
		return DeadlineAssessment{Status: DeadlineNone}
	}

	due := Midnight(endDate.In(now.Location()))
	today := Midnight(now)

	switch {
	case due.Before(today):
		return DeadlineAssessment{Status: DeadlineOverdue, Message: "Prazo vencido"}
	case due.Equal(today):
		return DeadlineAssessment{Status: DeadlineDueToday, Message: "Prazo vence hoje"}
	case !due.After(today.AddDate(0, 0, 2)):
		return DeadlineAssessment{Status: DeadlineDueSoon, Message: "Prazo próximo do vencimento"}
	default:
		return DeadlineAssessment{Status: DeadlineNone}
	}
}
