// Package workflow is the sole authority on orden de trabajo state
// transitions and the gating predicates built on top of them.
package workflow

import (
	"errors"
	"fmt"
	"strings"

	"taller_mecanico/internal/domain/entities"
)

// validTransitions is the fixed successor table. The only back-edges are
// en_diagnostico → ingresado and en_reparacion → en_diagnostico (reopening);
// entregado is terminal.
var validTransitions = map[entities.OrderStatus][]entities.OrderStatus{
	entities.OrderStatusIngresado:     {entities.OrderStatusEnDiagnostico},
	entities.OrderStatusEnDiagnostico: {entities.OrderStatusEnReparacion, entities.OrderStatusIngresado},
	entities.OrderStatusEnReparacion:  {entities.OrderStatusFinalizado, entities.OrderStatusEnDiagnostico},
	entities.OrderStatusFinalizado:    {entities.OrderStatusFacturado},
	entities.OrderStatusFacturado:     {entities.OrderStatusEntregado},
	entities.OrderStatusEntregado:     {},
}

var (
	ErrAlreadyInvoiced  = errors.New("esta orden ya tiene una factura generada")
	ErrNotFinalized     = errors.New("solo se pueden facturar órdenes finalizadas")
	ErrOrderNotInvoiced = errors.New("la orden debe estar facturada para entregar el vehículo")
	ErrInvoiceNotPaid   = errors.New("la factura debe estar pagada para entregar el vehículo")
)

// TransitionError reports a disallowed state change, naming the allowed
// successor set of the current state (possibly empty).

type TransitionError struct {
	From    entities.OrderStatus
	To      entities.OrderStatus
	Allowed []entities.OrderStatus
}

func (e *TransitionError) Error() string {
	allowed := "ninguna"
	if len(e.Allowed) > 0 {
		names := make([]string, len(e.Allowed))
		for i, s := range e.Allowed {
			names[i] = string(s)
		}
		allowed = strings.Join(names, ", ")
	}
	return fmt.Sprintf("No se puede cambiar de %q a %q. Transiciones válidas: %s", e.From, e.To, allowed)
}

// InsufficientStockError reports a part request exceeding availability.

type InsufficientStockError struct {
	Disponible int
	Solicitado int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stock insuficiente. Disponible: %d, Solicitado: %d", e.Disponible, e.Solicitado)
}

// Transitions returns the successor set of current; an unrecognized state
// has no successors.
func Transitions(current entities.OrderStatus) []entities.OrderStatus {
	return validTransitions[current]
}

// CanTransition reports whether target is in the successor set of current.
func CanTransition(current, target entities.OrderStatus) bool {
	for _, s := range validTransitions[current] {
		if s == target {
			return true
		}
	}
	return false
}

// ValidateTransition returns a *TransitionError when the change is not
// allowed; it never silently corrects the target.
func ValidateTransition(current, target entities.OrderStatus) error {
	if CanTransition(current, target) {
		return nil
	}
	return &TransitionError{From: current, To: target, Allowed: validTransitions[current]}
}

// ValidateCanGenerateInvoice gates invoice generation: the order must be
// exactly finalizado and not yet invoiced. The two rejection reasons are
// distinguishable via errors.Is.
func ValidateCanGenerateInvoice(state entities.OrderStatus, hasInvoice bool) error {
	if hasInvoice {
		return ErrAlreadyInvoiced
	}
	if state != entities.OrderStatusFinalizado {
		return ErrNotFinalized
	}
	return nil
}

// ValidateCanDeliverVehicle gates delivery: order facturado and invoice pagado.
func ValidateCanDeliverVehicle(state entities.OrderStatus, pago entities.PaymentStatus) error {
	if state != entities.OrderStatusFacturado {
		return ErrOrderNotInvoiced
	}
	if pago != entities.PaymentStatusPagado {
		return ErrInvoiceNotPaid
	}
	return nil
}

// ValidateCanApprovePart gates a part-request approval against current stock.
func ValidateCanApprovePart(stockActual, cantidadSolicitada int) error {
	if stockActual < cantidadSolicitada {
		return &InsufficientStockError{Disponible: stockActual, Solicitado: cantidadSolicitada}
	}
	return nil
}
