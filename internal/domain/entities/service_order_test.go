package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceOrderPhase(t *testing.T) {
	for _, valid := range []string{
		"Aguardando Avaliação Técnica",
		"Avaliado, Aguardando Autorização",
		"Autorizado, Aguardando Peça",
		"Em Execução",
		"Concluída",
		"Cancelada",
	} {
		p, err := ParseServiceOrderPhase(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, ServiceOrderPhase(valid), p)
	}

	p, err := ParseServiceOrderPhase("  Em Execução  ")
	require.NoError(t, err)
	assert.Equal(t, PhaseEmExecucao, p)

	_, err = ParseServiceOrderPhase("Arquivada")
	assert.Error(t, err)
}

func TestServiceOrderPhase_IsTerminal(t *testing.T) {
	assert.True(t, PhaseConcluida.IsTerminal())
	assert.True(t, PhaseCancelada.IsTerminal())
	assert.False(t, PhaseAguardandoAvaliacao.IsTerminal())
	assert.False(t, PhaseEmExecucao.IsTerminal())
}

func TestCanTransitionPhase(t *testing.T) {
	tests := []struct {
		name string
		from ServiceOrderPhase
		to   ServiceOrderPhase
		want bool
	}{
		{"linear step", PhaseAguardandoAvaliacao, PhaseAguardandoAutorizacao, true},
		{"skip ahead is allowed", PhaseAguardandoAvaliacao, PhaseEmExecucao, true},
		{"step back is allowed", PhaseEmExecucao, PhaseAguardandoPeca, true},
		{"cancel from initial", PhaseAguardandoAvaliacao, PhaseCancelada, true},
		{"cancel from execution", PhaseEmExecucao, PhaseCancelada, true},
		{"complete from execution", PhaseEmExecucao, PhaseConcluida, true},
		{"no-op transition", PhaseEmExecucao, PhaseEmExecucao, false},
		{"reopen completed", PhaseConcluida, PhaseEmExecucao, false},
		{"reopen cancelled", PhaseCancelada, PhaseAguardandoAvaliacao, false},
		{"cancel completed", PhaseConcluida, PhaseCancelada, false},
		{"unknown target", PhaseEmExecucao, ServiceOrderPhase("Arquivada"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionPhase(tt.from, tt.to))
		})
	}
}

func TestServiceOrder_HasTechnicalConclusion(t *testing.T) {
	assert.False(t, ServiceOrder{}.HasTechnicalConclusion())
	assert.False(t, ServiceOrder{TechnicalConclusion: "   \t "}.HasTechnicalConclusion())
	assert.True(t, ServiceOrder{TechnicalConclusion: "troca do rolamento"}.HasTechnicalConclusion())
}

func TestResolveCompletionEndDate(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	t.Run("unset collapses to today", func(t *testing.T) {
		assert.Equal(t, today, ResolveCompletionEndDate(nil, now))
	})

	t.Run("past date is kept", func(t *testing.T) {
		past := now.AddDate(0, 0, -3)
		assert.Equal(t, past, ResolveCompletionEndDate(&past, now))
	})

	t.Run("future date collapses to today", func(t *testing.T) {
		future := now.AddDate(0, 0, 5)
		assert.Equal(t, today, ResolveCompletionEndDate(&future, now))
	})
}
