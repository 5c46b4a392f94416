package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"taller_mecanico/internal/domain/entities"
	mock_interfaces "taller_mecanico/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInvoiceUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Invoice{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestInvoiceUseCase_Pay(t *testing.T) {
	t.Run("already paid is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "fac-1").
			Return(entities.Invoice{ID: "fac-1", EstadoPago: entities.PaymentStatusPagado}, nil)

		inv, err := uc.Pay(context.Background(), "fac-1", json.RawMessage(`{}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.EstadoPago != entities.PaymentStatusPagado {
			t.Fatalf("expected pagado, got %s", inv.EstadoPago)
		}
	})

	t.Run("amount comes from the stored invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "fac-1").
			Return(entities.Invoice{ID: "fac-1", NumeroFactura: "FACT-1-ot-1", Total: 89369, EstadoPago: entities.PaymentStatusPendiente}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("invalid payload sent to gateway: %v", err)
				}
				if m["transaction_amount"] != float64(89369) {
					t.Fatalf("expected transaction_amount 89369, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "fac-1" {
					t.Fatalf("expected external_reference fac-1, got %v", m["external_reference"])
				}
				return "pay-1", "approved", json.RawMessage(`{"id":1}`), nil
			})
		repo.EXPECT().UpdatePaymentStatus(gomock.Any(), "fac-1", entities.PaymentStatusPagado).
			Return(entities.Invoice{ID: "fac-1", EstadoPago: entities.PaymentStatusPagado}, nil)

		// transaction_amount in the payload is ignored in favor of the invoice total.
		inv, err := uc.Pay(context.Background(), "fac-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.EstadoPago != entities.PaymentStatusPagado {
			t.Fatalf("expected pagado, got %s", inv.EstadoPago)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "fac-1").
			Return(entities.Invoice{ID: "fac-1", Total: 10, EstadoPago: entities.PaymentStatusPendiente}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.Pay(context.Background(), "fac-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("gateway bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "fac-1").
			Return(entities.Invoice{ID: "fac-1", Total: 10, EstadoPago: entities.PaymentStatusPendiente}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"error":"bad_request","status":400}`))

		_, err := uc.Pay(context.Background(), "fac-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})

	t.Run("gateway failure leaves invoice pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "fac-1").
			Return(entities.Invoice{ID: "fac-1", Total: 10, EstadoPago: entities.PaymentStatusPendiente}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New("boom"))
		// No UpdatePaymentStatus expectation: estado_pago must stay untouched.

		if _, err := uc.Pay(context.Background(), "fac-1", json.RawMessage(`{}`)); err == nil {
			t.Fatal("expected error")
		}
	})
}
