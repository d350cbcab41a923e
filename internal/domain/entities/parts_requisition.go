package entities

import (
	"fmt"
	"strings"
	"time"
)

// RequisitionItemStatus tracks a single requested part through triage and fulfilment.
//
// An item starts in "Pendente Aprovação" and leaves it only through an explicit
// triage action; there is no path back. The post-triage statuses (compra,
// separado, entregue) are fulfilment bookkeeping and all count as triaged.

type RequisitionItemStatus string

const (
	ItemStatusPendenteAprovacao RequisitionItemStatus = "Pendente Aprovação"
	ItemStatusAprovado          RequisitionItemStatus = "Aprovado"
	ItemStatusRecusado          RequisitionItemStatus = "Recusado"
	ItemStatusAguardandoCompra  RequisitionItemStatus = "Aguardando Compra"
	ItemStatusSeparado          RequisitionItemStatus = "Separado"
	ItemStatusEntregue          RequisitionItemStatus = "Entregue"
)

func ParseRequisitionItemStatus(s string) (RequisitionItemStatus, error) {
	switch RequisitionItemStatus(strings.TrimSpace(s)) {
	case ItemStatusPendenteAprovacao, ItemStatusAprovado, ItemStatusRecusado,
		ItemStatusAguardandoCompra, ItemStatusSeparado, ItemStatusEntregue:
		return RequisitionItemStatus(strings.TrimSpace(s)), nil
	default:
		return "", fmt.Errorf("unknown requisition item status: %q", s)
	}
}

// RequisitionStatus is the requisition-level aggregate derived from the items.
// It is never set independently: AggregateRequisitionStatus is its only writer.

type RequisitionStatus string

const (
	RequisitionStatusPendente         RequisitionStatus = "Pendente"
	RequisitionStatusTriagemRealizada RequisitionStatus = "Triagem Realizada"
)

// AggregateRequisitionStatus derives the requisition status from its items:
// while any item still awaits approval the requisition stays "Pendente"; once
// every item has been triaged it becomes "Triagem Realizada". Requisitions are
// created with at least one item, so the empty list only shows up mid-construction
// and conservatively reads as "Pendente".
func AggregateRequisitionStatus(items []PartsRequisitionItem) RequisitionStatus {
	if len(items) == 0 {
		return RequisitionStatusPendente
	}
	for _, it := range items {
		if it.Status == ItemStatusPendenteAprovacao {
			return RequisitionStatusPendente
		}
	}
	return RequisitionStatusTriagemRealizada
}

// PartsRequisitionItem is one requested part. Items have no life of their own:
// they are embedded in the parent requisition document and share its
// consistency domain.
type PartsRequisitionItem struct {
	ID          string                `json:"id"`
	PartName    string                `json:"part_name"`
	Quantity    int                   `json:"quantity"`
	Notes       string                `json:"notes,omitempty"`
	TriageNotes string                `json:"triage_notes,omitempty"`
	ImageURL    string                `json:"image_url,omitempty"`
	Status      RequisitionItemStatus `json:"status"`
}

// PartsRequisition is a technician's bundled parts request against a service order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - items embedded as a list attribute
//   - version: optimistic-concurrency token guarding the read-modify-write triage cycle
//
// ServiceOrderID and TechnicianID are set at creation and never change.
type PartsRequisition struct {
	ID             string                 `json:"id"`
	Number         int                    `json:"number"`
	ServiceOrderID string                 `json:"service_order_id"`
	TechnicianID   string                 `json:"technician_id"`
	Status         RequisitionStatus      `json:"status"`
	Items          []PartsRequisitionItem `json:"items"`
	GeneralNotes   string                 `json:"general_notes,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemIndex returns the position of the item with the given id, or -1.
func (r PartsRequisition) ItemIndex(itemID string) int {
	for i, it := range r.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}
