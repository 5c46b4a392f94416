package entities

import "time"

// Part is a repuesto in the shop inventory.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (sku-index): sku
//
// Stock is mutated only by the finalize transaction and never goes negative.

type Part struct {
	ID             string    `json:"id"`
	SKU            string    `json:"sku"`
	Nombre         string    `json:"nombre"`
	Stock          int       `json:"stock"`
	StockMinimo    int       `json:"stock_minimo"`
	PrecioUnitario float64   `json:"precio_unitario"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BelowMinimum reports whether the part needs restocking.
func (p Part) BelowMinimum() bool {
	return p.Stock <= p.StockMinimo
}
