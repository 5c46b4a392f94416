package workflow

import (
	"errors"
	"strings"
	"testing"

	"taller_mecanico/internal/domain/entities"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from, to entities.OrderStatus
	}{
		{entities.OrderStatusIngresado, entities.OrderStatusEnDiagnostico},
		{entities.OrderStatusEnDiagnostico, entities.OrderStatusEnReparacion},
		{entities.OrderStatusEnDiagnostico, entities.OrderStatusIngresado},
		{entities.OrderStatusEnReparacion, entities.OrderStatusFinalizado},
		{entities.OrderStatusEnReparacion, entities.OrderStatusEnDiagnostico},
		{entities.OrderStatusFinalizado, entities.OrderStatusFacturado},
		{entities.OrderStatusFacturado, entities.OrderStatusEntregado},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct {
		from, to entities.OrderStatus
	}{
		{entities.OrderStatusIngresado, entities.OrderStatusEnReparacion},
		{entities.OrderStatusIngresado, entities.OrderStatusFinalizado},
		{entities.OrderStatusIngresado, entities.OrderStatusEntregado},
		{entities.OrderStatusEnDiagnostico, entities.OrderStatusFinalizado},
		{entities.OrderStatusEnReparacion, entities.OrderStatusIngresado},
		{entities.OrderStatusFinalizado, entities.OrderStatusEnReparacion},
		{entities.OrderStatusFinalizado, entities.OrderStatusEntregado},
		{entities.OrderStatusFacturado, entities.OrderStatusFinalizado},
		{entities.OrderStatusEntregado, entities.OrderStatusIngresado},
		{entities.OrderStatusEntregado, entities.OrderStatusFacturado},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestValidateTransition_ErrorNamesAllowedSet(t *testing.T) {
	err := ValidateTransition(entities.OrderStatusEnReparacion, entities.OrderStatusEntregado)
	var transitionErr *TransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected *TransitionError, got %v", err)
	}
	msg := transitionErr.Error()
	if !strings.Contains(msg, "finalizado") || !strings.Contains(msg, "en_diagnostico") {
		t.Fatalf("expected allowed successors in message, got %q", msg)
	}
}

func TestValidateTransition_TerminalState(t *testing.T) {
	err := ValidateTransition(entities.OrderStatusEntregado, entities.OrderStatusIngresado)
	var transitionErr *TransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected *TransitionError, got %v", err)
	}
	if !strings.Contains(transitionErr.Error(), "ninguna") {
		t.Fatalf("expected empty successor set message, got %q", transitionErr.Error())
	}
}

func TestValidateCanGenerateInvoice(t *testing.T) {
	if err := ValidateCanGenerateInvoice(entities.OrderStatusFinalizado, false); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := ValidateCanGenerateInvoice(entities.OrderStatusFinalizado, true); !errors.Is(err, ErrAlreadyInvoiced) {
		t.Fatalf("expected ErrAlreadyInvoiced, got %v", err)
	}
	if err := ValidateCanGenerateInvoice(entities.OrderStatusEnReparacion, false); !errors.Is(err, ErrNotFinalized) {
		t.Fatalf("expected ErrNotFinalized, got %v", err)
	}
	// Already-invoiced wins over wrong state.
	if err := ValidateCanGenerateInvoice(entities.OrderStatusFacturado, true); !errors.Is(err, ErrAlreadyInvoiced) {
		t.Fatalf("expected ErrAlreadyInvoiced, got %v", err)
	}
}

func TestValidateCanDeliverVehicle(t *testing.T) {
	cases := []struct {
		name  string
		state entities.OrderStatus
		pago  entities.PaymentStatus
		want  error
	}{
		{"facturado y pagado", entities.OrderStatusFacturado, entities.PaymentStatusPagado, nil},
		{"facturado sin pagar", entities.OrderStatusFacturado, entities.PaymentStatusPendiente, ErrInvoiceNotPaid},
		{"finalizado pagado", entities.OrderStatusFinalizado, entities.PaymentStatusPagado, ErrOrderNotInvoiced},
		{"finalizado pendiente", entities.OrderStatusFinalizado, entities.PaymentStatusPendiente, ErrOrderNotInvoiced},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCanDeliverVehicle(tc.state, tc.pago)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected nil, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateCanApprovePart(t *testing.T) {
	if err := ValidateCanApprovePart(5, 5); err != nil {
		t.Fatalf("expected nil when stock covers request, got %v", err)
	}

	err := ValidateCanApprovePart(2, 3)
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected *InsufficientStockError, got %v", err)
	}
	if got := stockErr.Error(); got != "Stock insuficiente. Disponible: 2, Solicitado: 3" {
		t.Fatalf("unexpected message %q", got)
	}
}
