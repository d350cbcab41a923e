package entities

import (
	"fmt"
	"strings"
	"time"
)

// ServiceOrderPhase represents the lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - The nominal flow is linear: avaliação técnica -> autorização -> peça -> execução -> conclusão.
//   - Operators may move an order between non-terminal phases freely (the workflow
//     is permissive in the middle); only the terminal phases are hard-enforced.
//   - "Concluída" and "Cancelada" are terminal: a closed order never changes phase again.

type ServiceOrderPhase string

const (
	PhaseAguardandoAvaliacao   ServiceOrderPhase = "Aguardando Avaliação Técnica"
	PhaseAguardandoAutorizacao ServiceOrderPhase = "Avaliado, Aguardando Autorização"
	PhaseAguardandoPeca        ServiceOrderPhase = "Autorizado, Aguardando Peça"
	PhaseEmExecucao            ServiceOrderPhase = "Em Execução"
	PhaseConcluida             ServiceOrderPhase = "Concluída"
	PhaseCancelada             ServiceOrderPhase = "Cancelada"
)

func ParseServiceOrderPhase(s string) (ServiceOrderPhase, error) {
	switch ServiceOrderPhase(strings.TrimSpace(s)) {
	case PhaseAguardandoAvaliacao, PhaseAguardandoAutorizacao, PhaseAguardandoPeca,
		PhaseEmExecucao, PhaseConcluida, PhaseCancelada:
		return ServiceOrderPhase(strings.TrimSpace(s)), nil
	default:
		return "", fmt.Errorf("unknown service order phase: %q", s)
	}
}

func (p ServiceOrderPhase) IsTerminal() bool {
	return p == PhaseConcluida || p == PhaseCancelada
}

// CanTransitionPhase reports whether an order in phase from may move to phase to.
// Any non-terminal phase may move to any other phase (including the terminal ones,
// subject to the completion precondition checked at the use case); a terminal phase
// may not move at all.
func CanTransitionPhase(from, to ServiceOrderPhase) bool {
	if from.IsTerminal() {
		return false
	}
	if _, err := ParseServiceOrderPhase(string(to)); err != nil {
		return false
	}
	return to != from
}

// ServiceOrderNumberFloor is the exclusive lower bound for issued order numbers.
// The first order ever created receives number 4000.
const ServiceOrderNumberFloor = 3999

// ServiceOrder is the service order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version: optimistic-concurrency token; every conditional write bumps it.
//
// Derived fields:
//   - EstimatedTravelCost is never taken from input. It is recomputed from
//     EstimatedTravelDistanceKm, the vehicle's cost per km and EstimatedTollCosts
//     at every write that touches one of those (see EstimateTravelCost).
type ServiceOrder struct {
	ID     string            `json:"id"`
	Number int               `json:"number"`
	Phase  ServiceOrderPhase `json:"phase"`

	CustomerID   string `json:"customer_id"`
	EquipmentID  string `json:"equipment_id"`
	TechnicianID string `json:"technician_id,omitempty"`
	VehicleID    string `json:"vehicle_id,omitempty"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	Description         string `json:"description"`
	Notes               string `json:"notes,omitempty"`
	TechnicalConclusion string `json:"technical_conclusion,omitempty"`

	EstimatedTravelDistanceKm *float64 `json:"estimated_travel_distance_km,omitempty"`
	EstimatedTollCosts        *float64 `json:"estimated_toll_costs,omitempty"`
	EstimatedTravelCost       *float64 `json:"estimated_travel_cost,omitempty"`

	AttachmentURLs []string `json:"attachment_urls,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasTechnicalConclusion reports whether the order carries a usable technical
// conclusion. Whitespace-only text does not count.
func (o ServiceOrder) HasTechnicalConclusion() bool {
	return strings.TrimSpace(o.TechnicalConclusion) != ""
}

// ResolveCompletionEndDate returns the end date an order must carry once it is
// completed at time now: an already-set end date at or before now is kept,
// anything else (unset or future) collapses to now's midnight.
func ResolveCompletionEndDate(current *time.Time, now time.Time) time.Time {
	today := Midnight(now)
	if current != nil && !current.After(now) {
		return *current
	}
	return today
}
