package response

import (
	"time"

	"taller_mecanico/internal/domain/entities"
)

type Part struct {
	ID             string    `json:"id"`
	SKU            string    `json:"sku"`
	Nombre         string    `json:"nombre"`
	Stock          int       `json:"stock"`
	StockMinimo    int       `json:"stock_minimo"`
	PrecioUnitario float64   `json:"precio_unitario"`
	BajoStock      bool      `json:"bajo_stock"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromPart(p entities.Part) Part {
	return Part{
		ID:             p.ID,
		SKU:            p.SKU,
		Nombre:         p.Nombre,
		Stock:          p.Stock,
		StockMinimo:    p.StockMinimo,
		PrecioUnitario: p.PrecioUnitario,
		BajoStock:      p.BelowMinimum(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromParts(parts []entities.Part) []Part {
	out := make([]Part, 0, len(parts))
	for _, p := range parts {
		out = append(out, FromPart(p))
	}
	return out
}

// PartApproval is the answer to an approve-request check.
type PartApproval struct {
	Aprobado bool `json:"aprobado"`
	Part     Part `json:"repuesto"`
}
