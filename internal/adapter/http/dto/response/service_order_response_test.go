package response

import (
	"testing"
	"time"

	"manutencao_xpto/internal/domain/entities"
)

func TestFromServiceOrder_DeadlineBadge(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

	t.Run("open order due today", func(t *testing.T) {
		due := time.Date(2026, 8, 29, 23, 0, 0, 0, time.UTC)
		resp := FromServiceOrder(entities.ServiceOrder{
			ID:      "os-1",
			Phase:   entities.PhaseEmExecucao,
			EndDate: &due,
		}, now)
		if resp.DeadlineStatus != string(entities.DeadlineDueToday) {
			t.Fatalf("expected due_today, got %s", resp.DeadlineStatus)
		}
		if resp.DeadlineMessage == "" {
			t.Fatalf("expected a deadline message")
		}
	})

	t.Run("closed order carries no badge", func(t *testing.T) {
		due := now.AddDate(0, 0, -10)
		resp := FromServiceOrder(entities.ServiceOrder{
			ID:      "os-1",
			Phase:   entities.PhaseConcluida,
			EndDate: &due,
		}, now)
		if resp.DeadlineStatus != string(entities.DeadlineNone) {
			t.Fatalf("expected none, got %s", resp.DeadlineStatus)
		}
	})

	t.Run("no end date", func(t *testing.T) {
		resp := FromServiceOrder(entities.ServiceOrder{ID: "os-1", Phase: entities.PhaseEmExecucao}, now)
		if resp.DeadlineStatus != string(entities.DeadlineNone) {
			t.Fatalf("expected none, got %s", resp.DeadlineStatus)
		}
	})
}
