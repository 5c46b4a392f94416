package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"taller_mecanico/internal/adapter/http/handlers/mocks"
	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/domain/workflow"
	"taller_mecanico/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWorkOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orden-de-trabajos", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/orden-de-trabajos", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing description", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orden-de-trabajos", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/orden-de-trabajos", bytes.NewBufferString(`{"zona":"norte"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkOrder{})).
			Return(entities.WorkOrder{ID: "ot-1", Estado: entities.OrderStatusIngresado, Descripcion: "cambio de frenos"}, nil)

		r := gin.New()
		r.POST("/v1/orden-de-trabajos", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/orden-de-trabajos", bytes.NewBufferString(`{"descripcion":"cambio de frenos"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["estado"] != "ingresado" {
			t.Fatalf("expected estado ingresado, got %v", body["estado"])
		}
	})
}

func TestWorkOrderHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition returns 409 with successors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "ot-1", entities.OrderStatusFinalizado).
			Return(entities.WorkOrder{}, &workflow.TransitionError{
				From:    entities.OrderStatusIngresado,
				To:      entities.OrderStatusFinalizado,
				Allowed: workflow.Transitions(entities.OrderStatusIngresado),
			})

		r := gin.New()
		r.PATCH("/v1/orden-de-trabajos/:id/estado", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orden-de-trabajos/ot-1/estado", bytes.NewBufferString(`{"estado":"finalizado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_TRANSITION" {
			t.Fatalf("expected INVALID_TRANSITION, got %v", body["code"])
		}
	})

	t.Run("unknown estado rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orden-de-trabajos/:id/estado", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orden-de-trabajos/ot-1/estado", bytes.NewBufferString(`{"estado":"volando"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_Finalize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		uc.EXPECT().Finalize(gomock.Any(), "ot-1").
			Return(entities.WorkOrder{ID: "ot-1", Estado: entities.OrderStatusFinalizado, FacturaID: "fac-1"}, nil)

		r := gin.New()
		r.POST("/v1/orden-de-trabajos/:id/finalize", h.Finalize)

		req := httptest.NewRequest(http.MethodPost, "/v1/orden-de-trabajos/ot-1/finalize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["factura_id"] != "fac-1" {
			t.Fatalf("expected factura_id fac-1, got %v", body["factura_id"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		uc.EXPECT().Finalize(gomock.Any(), "missing").Return(entities.WorkOrder{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.POST("/v1/orden-de-trabajos/:id/finalize", h.Finalize)

		req := httptest.NewRequest(http.MethodPost, "/v1/orden-de-trabajos/missing/finalize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("finalize failure surfaces as 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		uc.EXPECT().Finalize(gomock.Any(), "ot-1").
			Return(entities.WorkOrder{}, fmt.Errorf("%w: %v", usecase.ErrFinalizeFailed, errors.New("dynamo down")))

		r := gin.New()
		r.POST("/v1/orden-de-trabajos/:id/finalize", h.Finalize)

		req := httptest.NewRequest(http.MethodPost, "/v1/orden-de-trabajos/ot-1/finalize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "no se pudo finalizar la orden" {
			t.Fatalf("unexpected message %v", body["message"])
		}
	})
}

func TestWorkOrderHandler_GenerateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already invoiced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		uc.EXPECT().GenerateInvoice(gomock.Any(), "ot-1").Return(entities.WorkOrder{}, workflow.ErrAlreadyInvoiced)

		r := gin.New()
		r.POST("/v1/orden-de-trabajos/:id/facturar", h.GenerateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/orden-de-trabajos/ot-1/facturar", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "ALREADY_INVOICED" {
			t.Fatalf("expected ALREADY_INVOICED, got %v", body["code"])
		}
	})
}

func TestWorkOrderHandler_Deliver(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invoice not paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		uc.EXPECT().Deliver(gomock.Any(), "ot-1").Return(entities.WorkOrder{}, workflow.ErrInvoiceNotPaid)

		r := gin.New()
		r.POST("/v1/orden-de-trabajos/:id/entregar", h.Deliver)

		req := httptest.NewRequest(http.MethodPost, "/v1/orden-de-trabajos/ot-1/entregar", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delivered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		uc.EXPECT().Deliver(gomock.Any(), "ot-1").
			Return(entities.WorkOrder{ID: "ot-1", Estado: entities.OrderStatusEntregado}, nil)

		r := gin.New()
		r.POST("/v1/orden-de-trabajos/:id/entregar", h.Deliver)

		req := httptest.NewRequest(http.MethodPost, "/v1/orden-de-trabajos/ot-1/entregar", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
