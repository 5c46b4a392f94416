package handlers

import (
	"bytes"
	"encoding/json"
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

func TestPartHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("duplicate sku", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPartUseCase(ctrl)
		h := NewPartHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Part{}, usecase.ErrPartSKUExists)

		r := gin.New()
		r.POST("/v1/repuestos", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/repuestos", bytes.NewBufferString(`{"sku":"FLT-001","nombre":"Filtro","stock":5,"stock_minimo":2,"precio_unitario":4990}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPartHandler_ListBelowMinimum(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPartUseCase(ctrl)
	h := NewPartHandler(uc)

	uc.EXPECT().ListBelowMinimum(gomock.Any()).Return([]entities.Part{
		{ID: "rep-1", SKU: "FLT-001", Stock: 1, StockMinimo: 5},
	}, nil)

	r := gin.New()
	r.GET("/v1/repuestos/bajo-stock", h.ListBelowMinimum)

	req := httptest.NewRequest(http.MethodGet, "/v1/repuestos/bajo-stock", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body) != 1 || body[0]["bajo_stock"] != true {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestPartHandler_ApproveRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPartUseCase(ctrl)
		h := NewPartHandler(uc)

		uc.EXPECT().ApproveRequest(gomock.Any(), "rep-1", 2).Return(entities.Part{ID: "rep-1", Stock: 5}, nil)

		r := gin.New()
		r.POST("/v1/repuestos/:id/aprobar-solicitud", h.ApproveRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/repuestos/rep-1/aprobar-solicitud", bytes.NewBufferString(`{"cantidad":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["aprobado"] != true {
			t.Fatalf("expected aprobado true, got %v", body["aprobado"])
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPartUseCase(ctrl)
		h := NewPartHandler(uc)

		uc.EXPECT().ApproveRequest(gomock.Any(), "rep-1", 9).
			Return(entities.Part{}, &workflow.InsufficientStockError{Disponible: 2, Solicitado: 9})

		r := gin.New()
		r.POST("/v1/repuestos/:id/aprobar-solicitud", h.ApproveRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/repuestos/rep-1/aprobar-solicitud", bytes.NewBufferString(`{"cantidad":9}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INSUFFICIENT_STOCK" {
			t.Fatalf("expected INSUFFICIENT_STOCK, got %v", body["code"])
		}
	})
}
