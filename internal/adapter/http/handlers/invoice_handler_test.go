package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taller_mecanico/internal/adapter/http/handlers/mocks"
	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "fac-1").Return(entities.Invoice{
			ID: "fac-1", NumeroFactura: "FACT-1-ot-1", Subtotal: 75100, IVA: 14269, Total: 89369,
			OrdenID: "ot-1", EstadoPago: entities.PaymentStatusPendiente,
		}, nil)

		r := gin.New()
		r.GET("/v1/facturas/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/facturas/fac-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total"] != float64(89369) {
			t.Fatalf("expected total 89369, got %v", body["total"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		r := gin.New()
		r.GET("/v1/facturas/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/facturas/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_Pay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("paid with empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Pay(gomock.Any(), "fac-1", gomock.Any()).
			Return(entities.Invoice{ID: "fac-1", EstadoPago: entities.PaymentStatusPagado}, nil)

		r := gin.New()
		r.POST("/v1/facturas/:id/pagar", h.Pay)

		req := httptest.NewRequest(http.MethodPost, "/v1/facturas/fac-1/pagar", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["estado_pago"] != "pagado" {
			t.Fatalf("expected pagado, got %v", body["estado_pago"])
		}
	})

	t.Run("gateway rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Pay(gomock.Any(), "fac-1", gomock.Any()).
			Return(entities.Invoice{}, usecase.ErrPaymentGatewayBadRequest)

		r := gin.New()
		r.POST("/v1/facturas/:id/pagar", h.Pay)

		req := httptest.NewRequest(http.MethodPost, "/v1/facturas/fac-1/pagar", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
