package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"manutencao_xpto/internal/domain/entities"
	"manutencao_xpto/internal/usecase/interfaces"
	mock_interfaces "manutencao_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// fakeRequisitionStore is an in-memory stand-in for the DynamoDB repository with
// the same optimistic-concurrency contract: Save only succeeds when the caller
// read the latest version, and bumps the version on success.
type fakeRequisitionStore struct {
	mu  sync.Mutex
	doc entities.PartsRequisition

	// beforeSave, when set, runs inside Save before the version check, letting
	// tests inject a conflicting concurrent commit deterministically.
	beforeSave func()
}

func (f *fakeRequisitionStore) Create(_ context.Context, r entities.PartsRequisition) (entities.PartsRequisition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.doc = cloneRequisition(r)
	return r, nil
}

func (f *fakeRequisitionStore) GetByID(_ context.Context, id string) (entities.PartsRequisition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.doc.ID != id {
		return entities.PartsRequisition{}, nil
	}
	return cloneRequisition(f.doc), nil
}

func (f *fakeRequisitionStore) ListByServiceOrderID(_ context.Context, serviceOrderID string) ([]entities.PartsRequisition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.doc.ServiceOrderID == serviceOrderID {
		return []entities.PartsRequisition{cloneRequisition(f.doc)}, nil
	}
	return nil, nil
}

func (f *fakeRequisitionStore) Save(_ context.Context, r entities.PartsRequisition) (entities.PartsRequisition, error) {
	if f.beforeSave != nil {
		hook := f.beforeSave
		f.beforeSave = nil
		hook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.doc.ID != r.ID || f.doc.Version != r.Version {
		return entities.PartsRequisition{}, interfaces.ErrVersionConflict
	}
	r.Version++
	f.doc = cloneRequisition(r)
	return cloneRequisition(r), nil
}

func (f *fakeRequisitionStore) NextNumber(context.Context) (int, error) {
	return 1, nil
}

func cloneRequisition(r entities.PartsRequisition) entities.PartsRequisition {
	out := r
	out.Items = append([]entities.PartsRequisitionItem(nil), r.Items...)
	return out
}

var _ interfaces.IPartsRequisitionRepository = (*fakeRequisitionStore)(nil)

func newTriageFixture(t *testing.T) (*PartsRequisitionUseCase, *fakeRequisitionStore) {
	t.Helper()
	store := &fakeRequisitionStore{
		doc: entities.PartsRequisition{
			ID:             "req-1",
			Number:         7,
			ServiceOrderID: "os-1",
			TechnicianID:   "tech-1",
			Status:         entities.RequisitionStatusPendente,
			Items: []entities.PartsRequisitionItem{
				{ID: "i1", PartName: "filtro de óleo", Quantity: 2, Status: entities.ItemStatusPendenteAprovacao},
				{ID: "i2", PartName: "correia", Quantity: 1, Status: entities.ItemStatusPendenteAprovacao},
				{ID: "i3", PartName: "rolamento", Quantity: 4, Status: entities.ItemStatusPendenteAprovacao},
			},
			Version: 1,
		},
	}
	return NewPartsRequisitionUseCase(store, nil, nil), store
}

func TestPartsRequisitionUseCase_Create(t *testing.T) {
	validInput := func() CreatePartsRequisitionInput {
		return CreatePartsRequisitionInput{
			ServiceOrderID: "os-1",
			TechnicianID:   "tech-1",
			Items:          []CreateRequisitionItemInput{{PartName: "filtro", Quantity: 2}},
		}
	}

	t.Run("invalid service order id", func(t *testing.T) {
		uc := NewPartsRequisitionUseCase(nil, nil, nil)
		in := validInput()
		in.ServiceOrderID = "  "
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidServiceOrderID) {
			t.Fatalf("expected ErrInvalidServiceOrderID, got %v", err)
		}
	})

	t.Run("invalid technician id", func(t *testing.T) {
		uc := NewPartsRequisitionUseCase(nil, nil, nil)
		in := validInput()
		in.TechnicianID = ""
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidTechnicianID) {
			t.Fatalf("expected ErrInvalidTechnicianID, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		uc := NewPartsRequisitionUseCase(nil, nil, nil)
		in := validInput()
		in.Items = nil
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidRequisitionItems) {
			t.Fatalf("expected ErrInvalidRequisitionItems, got %v", err)
		}
	})

	t.Run("item with zero quantity", func(t *testing.T) {
		uc := NewPartsRequisitionUseCase(nil, nil, nil)
		in := validInput()
		in.Items = []CreateRequisitionItemInput{{PartName: "filtro", Quantity: 0}}
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidRequisitionItems) {
			t.Fatalf("expected ErrInvalidRequisitionItems, got %v", err)
		}
	})

	t.Run("service order missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, nil)
		uc := NewPartsRequisitionUseCase(nil, orders, nil)

		_, err := uc.Create(context.Background(), validInput())
		if !errors.Is(err, ErrServiceOrderNotFound) {
			t.Fatalf("expected ErrServiceOrderNotFound, got %v", err)
		}
	})

	t.Run("success seeds every item pending and aggregates pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1"}, nil)

		repo := mock_interfaces.NewMockIPartsRequisitionRepository(ctrl)
		repo.EXPECT().NextNumber(gomock.Any()).Return(12, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PartsRequisition{})).DoAndReturn(
			func(_ context.Context, r entities.PartsRequisition) (entities.PartsRequisition, error) {
				if r.ID == "" || r.Number != 12 || r.Version != 1 {
					t.Fatalf("unexpected requisition: %+v", r)
				}
				if r.Status != entities.RequisitionStatusPendente {
					t.Fatalf("expected status Pendente, got %s", r.Status)
				}
				for _, it := range r.Items {
					if it.Status != entities.ItemStatusPendenteAprovacao || it.ID == "" {
						t.Fatalf("unexpected item: %+v", it)
					}
				}
				return r, nil
			},
		)

		uc := NewPartsRequisitionUseCase(repo, orders, nil)
		in := validInput()
		in.Items = append(in.Items, CreateRequisitionItemInput{PartName: "correia", Quantity: 1})
		res, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(res.Items))
		}
	})
}

func TestPartsRequisitionUseCase_TriageItem_Validation(t *testing.T) {
	uc := NewPartsRequisitionUseCase(nil, nil, nil)

	t.Run("invalid requisition id", func(t *testing.T) {
		_, err := uc.TriageItem(context.Background(), "  ", "i1", "Aprovado", nil)
		if !errors.Is(err, ErrInvalidRequisitionID) {
			t.Fatalf("expected ErrInvalidRequisitionID, got %v", err)
		}
	})

	t.Run("invalid item id", func(t *testing.T) {
		_, err := uc.TriageItem(context.Background(), "req-1", "", "Aprovado", nil)
		if !errors.Is(err, ErrInvalidRequisitionItemID) {
			t.Fatalf("expected ErrInvalidRequisitionItemID, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := uc.TriageItem(context.Background(), "req-1", "i1", "Extraviado", nil)
		if !errors.Is(err, ErrInvalidItemStatus) {
			t.Fatalf("expected ErrInvalidItemStatus, got %v", err)
		}
	})

	t.Run("pending approval is not a triage target", func(t *testing.T) {
		_, err := uc.TriageItem(context.Background(), "req-1", "i1", "Pendente Aprovação", nil)
		if !errors.Is(err, ErrInvalidTriageTarget) {
			t.Fatalf("expected ErrInvalidTriageTarget, got %v", err)
		}
	})
}

func TestPartsRequisitionUseCase_TriageItem_NotFound(t *testing.T) {
	t.Run("requisition missing aborts with no write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartsRequisitionRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "req-9").Return(entities.PartsRequisition{}, nil)
		uc := NewPartsRequisitionUseCase(repo, nil, nil)

		_, err := uc.TriageItem(context.Background(), "req-9", "i1", "Aprovado", nil)
		if !errors.Is(err, ErrRequisitionNotFound) {
			t.Fatalf("expected ErrRequisitionNotFound, got %v", err)
		}
	})

	t.Run("item missing aborts with no write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartsRequisitionRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.PartsRequisition{
			ID:    "req-1",
			Items: []entities.PartsRequisitionItem{{ID: "i1", Status: entities.ItemStatusPendenteAprovacao}},
		}, nil)
		uc := NewPartsRequisitionUseCase(repo, nil, nil)

		_, err := uc.TriageItem(context.Background(), "req-1", "i9", "Aprovado", nil)
		if !errors.Is(err, ErrRequisitionItemNotFound) {
			t.Fatalf("expected ErrRequisitionItemNotFound, got %v", err)
		}
	})
}

func TestPartsRequisitionUseCase_TriageItem_EndToEnd(t *testing.T) {
	// 3 items pending -> triage one approved: still Pendente.
	// Triage the remaining two refused: Triagem Realizada.
	uc, store := newTriageFixture(t)
	ctx := context.Background()

	notes := "fornecedor habitual"
	res, err := uc.TriageItem(ctx, "req-1", "i1", "Aprovado", &notes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.RequisitionStatusPendente {
		t.Fatalf("expected Pendente after partial triage, got %s", res.Status)
	}
	if res.Items[0].Status != entities.ItemStatusAprovado || res.Items[0].TriageNotes != notes {
		t.Fatalf("unexpected item after triage: %+v", res.Items[0])
	}

	if _, err = uc.TriageItem(ctx, "req-1", "i2", "Recusado", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err = uc.TriageItem(ctx, "req-1", "i3", "Recusado", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.RequisitionStatusTriagemRealizada {
		t.Fatalf("expected Triagem Realizada after full triage, got %s", res.Status)
	}
	if store.doc.Status != entities.RequisitionStatusTriagemRealizada {
		t.Fatalf("stored aggregate drifted: %s", store.doc.Status)
	}
}

func TestPartsRequisitionUseCase_TriageItem_Idempotence(t *testing.T) {
	uc, store := newTriageFixture(t)
	ctx := context.Background()

	first, err := uc.TriageItem(ctx, "req-1", "i1", "Aprovado", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.TriageItem(ctx, "req-1", "i1", "Aprovado", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Status != second.Status {
		t.Fatalf("status changed on repeat: %s vs %s", first.Status, second.Status)
	}
	if store.doc.Items[0].Status != entities.ItemStatusAprovado {
		t.Fatalf("unexpected stored item: %+v", store.doc.Items[0])
	}
	// The repeated triage keeps the existing annotation when no notes are given.
	if store.doc.Items[0].TriageNotes != "" {
		t.Fatalf("unexpected triage notes: %q", store.doc.Items[0].TriageNotes)
	}
}

func TestPartsRequisitionUseCase_TriageItem_RetriesOnConflict(t *testing.T) {
	uc, store := newTriageFixture(t)
	ctx := context.Background()

	// Between the read and the write of the first attempt, a concurrent triage
	// commits item i2. The conflicting attempt must be retried and both updates
	// must survive.
	store.beforeSave = func() {
		store.mu.Lock()
		defer store.mu.Unlock()
		idx := store.doc.ItemIndex("i2")
		store.doc.Items[idx].Status = entities.ItemStatusRecusado
		store.doc.Status = entities.AggregateRequisitionStatus(store.doc.Items)
		store.doc.Version++
	}

	res, err := uc.TriageItem(ctx, "req-1", "i1", "Aprovado", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Items[res.ItemIndex("i1")].Status != entities.ItemStatusAprovado {
		t.Fatalf("triaged item lost: %+v", res.Items)
	}
	if res.Items[res.ItemIndex("i2")].Status != entities.ItemStatusRecusado {
		t.Fatalf("concurrent update lost: %+v", res.Items)
	}
}

func TestPartsRequisitionUseCase_TriageItem_ConflictRetriesExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPartsRequisitionRepository(ctrl)
	doc := entities.PartsRequisition{
		ID:      "req-1",
		Items:   []entities.PartsRequisitionItem{{ID: "i1", Status: entities.ItemStatusPendenteAprovacao}},
		Version: 1,
	}
	repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(doc, nil).Times(casMaxAttempts)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.PartsRequisition{}, interfaces.ErrVersionConflict).Times(casMaxAttempts)

	uc := NewPartsRequisitionUseCase(repo, nil, nil)
	_, err := uc.TriageItem(context.Background(), "req-1", "i1", "Aprovado", nil)
	if !errors.Is(err, ErrTriageConflict) {
		t.Fatalf("expected ErrTriageConflict, got %v", err)
	}
}

func TestPartsRequisitionUseCase_TriageItem_ConcurrentItems(t *testing.T) {
	// Two goroutines triage two distinct items of the same requisition. The CAS
	// loop must ensure neither write is lost, whatever the interleaving.
	uc, store := newTriageFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = uc.TriageItem(ctx, "req-1", "i1", "Aprovado", nil)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = uc.TriageItem(ctx, "req-1", "i2", "Recusado", nil)
	}()
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("triage %d failed: %v", i, err)
		}
	}
	if got := store.doc.Items[store.doc.ItemIndex("i1")].Status; got != entities.ItemStatusAprovado {
		t.Fatalf("item i1 update lost: %s", got)
	}
	if got := store.doc.Items[store.doc.ItemIndex("i2")].Status; got != entities.ItemStatusRecusado {
		t.Fatalf("item i2 update lost: %s", got)
	}
	if store.doc.Status != entities.RequisitionStatusPendente {
		t.Fatalf("expected Pendente with i3 still pending, got %s", store.doc.Status)
	}
}
