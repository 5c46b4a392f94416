package entities

import "time"

// PaymentStatus represents the payment state of a factura.
//
// The vehicle-delivery gate requires "pagado".

type PaymentStatus string

const (
	PaymentStatusPendiente PaymentStatus = "pendiente"
	PaymentStatusPagado    PaymentStatus = "pagado"
)

// DesgloseItem is one priced entry inside the invoice breakdown.

type DesgloseItem struct {
	Descripcion    string  `json:"descripcion"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
	Subtotal       float64 `json:"subtotal"`
}

// Desglose is the invoice itemization partitioned by line-item type.

type Desglose struct {
	Servicios []DesgloseItem `json:"servicios"`
	Repuestos []DesgloseItem `json:"repuestos"`
	ManoObra  []DesgloseItem `json:"mano_obra"`
	Otros     []DesgloseItem `json:"otros"`
}

// Invoice is the factura generated at finalize time, immutable afterward
// except for its payment state.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (orden_id-index): orden_id

type Invoice struct {
	ID            string        `json:"id"`
	NumeroFactura string        `json:"numero_factura"`
	FechaEmision  string        `json:"fecha_emision"`
	Subtotal      float64       `json:"subtotal"`
	IVA           float64       `json:"iva"`
	Total         float64       `json:"total"`
	Desglose      Desglose      `json:"desglose"`
	OrdenID       string        `json:"orden_id"`
	EstadoPago    PaymentStatus `json:"estado_pago"`
	CreatedAt     time.Time     `json:"created_at"`
}
