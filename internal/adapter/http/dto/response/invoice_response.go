package response

import (
	"time"

	"taller_mecanico/internal/domain/entities"
)

// Invoice is the wire shape of a factura, breakdown included.
type Invoice struct {
	ID            string          `json:"id"`
	NumeroFactura string          `json:"numero_factura"`
	FechaEmision  string          `json:"fecha_emision"`
	Subtotal      float64         `json:"subtotal"`
	IVA           float64         `json:"iva"`
	Total         float64         `json:"total"`
	Desglose      InvoiceDesglose `json:"desglose"`
	OrdenID       string          `json:"orden_id"`
	EstadoPago    string          `json:"estado_pago"`
	CreatedAt     time.Time       `json:"created_at"`
}

type InvoiceDesglose struct {
	Servicios []InvoiceDesgloseItem `json:"servicios"`
	Repuestos []InvoiceDesgloseItem `json:"repuestos"`
	ManoObra  []InvoiceDesgloseItem `json:"mano_obra"`
	Otros     []InvoiceDesgloseItem `json:"otros"`
}

type InvoiceDesgloseItem struct {
	Descripcion    string  `json:"descripcion"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
	Subtotal       float64 `json:"subtotal"`
}

func FromInvoice(inv entities.Invoice) Invoice {
	return Invoice{
		ID:            inv.ID,
		NumeroFactura: inv.NumeroFactura,
		FechaEmision:  inv.FechaEmision,
		Subtotal:      inv.Subtotal,
		IVA:           inv.IVA,
		Total:         inv.Total,
		Desglose: InvoiceDesglose{
			Servicios: fromDesgloseItems(inv.Desglose.Servicios),
			Repuestos: fromDesgloseItems(inv.Desglose.Repuestos),
			ManoObra:  fromDesgloseItems(inv.Desglose.ManoObra),
			Otros:     fromDesgloseItems(inv.Desglose.Otros),
		},
		OrdenID:    inv.OrdenID,
		EstadoPago: string(inv.EstadoPago),
		CreatedAt:  inv.CreatedAt,
	}
}

func fromDesgloseItems(items []entities.DesgloseItem) []InvoiceDesgloseItem {
	out := make([]InvoiceDesgloseItem, 0, len(items))
	for _, it := range items {
		out = append(out, InvoiceDesgloseItem{
			Descripcion:    it.Descripcion,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       it.Subtotal,
		})
	}
	return out
}
