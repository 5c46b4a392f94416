package entities

import "time"

// OrderStatus represents the lifecycle of an orden de trabajo.
//
// Domain notes:
//   - Allowed transitions are owned by internal/domain/workflow; nothing else
//     mutates Estado directly.
//   - "entregado" is terminal.

type OrderStatus string

const (
	OrderStatusIngresado     OrderStatus = "ingresado"
	OrderStatusEnDiagnostico OrderStatus = "en_diagnostico"
	OrderStatusEnReparacion  OrderStatus = "en_reparacion"
	OrderStatusFinalizado    OrderStatus = "finalizado"
	OrderStatusFacturado     OrderStatus = "facturado"
	OrderStatusEntregado     OrderStatus = "entregado"
)

// Presupuesto is the pre-approved estimate optionally attached to an order.
// When an order has no line items, MontoTotal (IVA included) is the fallback
// pricing source at finalize time.

type Presupuesto struct {
	MontoTotal float64 `json:"monto_total"`
}

// WorkOrder is the orden de trabajo persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Line items are embedded in the order item: finalize reads the whole order in
// one GetItem and the items never exist without their order.

type WorkOrder struct {
	ID          string       `json:"id"`
	Estado      OrderStatus  `json:"estado"`
	Descripcion string       `json:"descripcion"`
	ClienteID   string       `json:"cliente_id,omitempty"`
	VehiculoID  string       `json:"vehiculo_id,omitempty"`
	MecanicoID  string       `json:"mecanico_id,omitempty"`
	Zona        string       `json:"zona,omitempty"`
	Presupuesto *Presupuesto `json:"presupuesto,omitempty"`
	FacturaID   string       `json:"factura_id,omitempty"`
	Items       []LineItem   `json:"items_detalle"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// HasInvoice reports whether the order was already invoiced; once true,
// finalize becomes an idempotent state re-stamp.
func (o WorkOrder) HasInvoice() bool {
	return o.FacturaID != ""
}
