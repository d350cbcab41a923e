package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"manutencao_xpto/internal/adapter/http/handlers/mocks"
	"manutencao_xpto/internal/domain/entities"
	"manutencao_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders", h.CreateServiceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing customer id fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders", h.CreateServiceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString(`{"equipment_id":"eq-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("one way distance is doubled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders", h.CreateServiceOrder)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateServiceOrderInput) (entities.ServiceOrder, error) {
				if in.EstimatedTravelDistanceKm == nil || *in.EstimatedTravelDistanceKm != 100 {
					t.Fatalf("expected round-trip distance 100, got %v", in.EstimatedTravelDistanceKm)
				}
				return entities.ServiceOrder{ID: "os-1", Number: 4000, Phase: entities.PhaseAguardandoAvaliacao}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString(`{"customer_id":"c-1","equipment_id":"eq-1","one_way_distance_km":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["number"] != float64(4000) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestServiceOrderHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders/:id", h.GetServiceOrder)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ServiceOrder{}, usecase.ErrServiceOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("response carries deadline badge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders/:id", h.GetServiceOrder)

		yesterday := time.Now().UTC().AddDate(0, 0, -1)
		uc.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{
			ID:      "os-1",
			Phase:   entities.PhaseEmExecucao,
			EndDate: &yesterday,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/os-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["deadline_status"] != string(entities.DeadlineOverdue) {
			t.Fatalf("expected overdue deadline, got %s", w.Body.String())
		}
	})
}

func TestServiceOrderHandler_PhaseEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("transition conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/service-orders/:id/phase", h.TransitionPhase)

		uc.EXPECT().TransitionPhase(gomock.Any(), "os-1", string(entities.PhaseEmExecucao)).
			Return(entities.ServiceOrder{}, usecase.ErrServiceOrderClosed)

		req := httptest.NewRequest(http.MethodPatch, "/v1/service-orders/os-1/phase", bytes.NewBufferString(`{"phase":"Em Execução"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("complete requires conclusion in payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/service-orders/:id/complete", h.CompleteServiceOrder)

		req := httptest.NewRequest(http.MethodPatch, "/v1/service-orders/os-1/complete", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("complete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/service-orders/:id/complete", h.CompleteServiceOrder)

		uc.EXPECT().Complete(gomock.Any(), "os-1", "troca de bomba").
			Return(entities.ServiceOrder{ID: "os-1", Phase: entities.PhaseConcluida}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/service-orders/os-1/complete", bytes.NewBufferString(`{"technical_conclusion":"troca de bomba"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/service-orders/:id/cancel", h.CancelServiceOrder)

		uc.EXPECT().Cancel(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Phase: entities.PhaseCancelada}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/service-orders/os-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_Attachments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("upload without file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders/:id/attachments", h.AddAttachment)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders/os-1/attachments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("upload success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders/:id/attachments", h.AddAttachment)

		uc.EXPECT().AddAttachment(gomock.Any(), "os-1", "laudo.pdf", gomock.Any(), gomock.Any()).
			Return(entities.ServiceOrder{ID: "os-1", AttachmentURLs: []string{"https://blobs/os-1/laudo.pdf"}}, nil)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, _ := mw.CreateFormFile("file", "laudo.pdf")
		_, _ = fw.Write([]byte("%PDF-1.4"))
		_ = mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders/os-1/attachments", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("remove requires url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.DELETE("/v1/service-orders/:id/attachments", h.RemoveAttachment)

		req := httptest.NewRequest(http.MethodDelete, "/v1/service-orders/os-1/attachments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("remove unknown url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.DELETE("/v1/service-orders/:id/attachments", h.RemoveAttachment)

		uc.EXPECT().RemoveAttachment(gomock.Any(), "os-1", "https://blobs/nope.pdf").
			Return(entities.ServiceOrder{}, usecase.ErrAttachmentNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/service-orders/os-1/attachments?url=https%3A%2F%2Fblobs%2Fnope.pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapServiceOrderError(t *testing.T) {
	if got := mapServiceOrderError(usecase.ErrInvalidCustomerID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceOrderError(usecase.ErrVehicleNotFound); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceOrderError(usecase.ErrServiceOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapServiceOrderError(usecase.ErrServiceOrderClosed); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapServiceOrderError(usecase.ErrMissingTechnicalConclusion); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapServiceOrderError(usecase.ErrWriteConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapServiceOrderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
	if got := mapServiceOrderError(fmt.Errorf("operation error DynamoDB: GetItem: %w", &net.DNSError{Err: "no such host"})); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
}
