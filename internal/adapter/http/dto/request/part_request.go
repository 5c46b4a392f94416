package request

import "taller_mecanico/internal/domain/entities"

// Part is the create/update payload for a repuesto.
type Part struct {
	SKU            string  `json:"sku" binding:"required,sku"`
	Nombre         string  `json:"nombre" binding:"required"`
	Stock          int     `json:"stock" binding:"gte=0"`
	StockMinimo    int     `json:"stock_minimo" binding:"gte=0"`
	PrecioUnitario float64 `json:"precio_unitario" binding:"gte=0"`
}

func (r Part) ToEntity() entities.Part {
	return entities.Part{
		SKU:            r.SKU,
		Nombre:         r.Nombre,
		Stock:          r.Stock,
		StockMinimo:    r.StockMinimo,
		PrecioUnitario: r.PrecioUnitario,
	}
}

// PartApproval asks whether cantidad units can be taken from stock.
type PartApproval struct {
	Cantidad int `json:"cantidad" binding:"required,gt=0"`
}
