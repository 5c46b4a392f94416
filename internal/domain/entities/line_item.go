package entities

// LineItemType buckets a line item into the invoice breakdown groups.

type LineItemType string

const (
	LineItemTypeServicio LineItemType = "servicio"
	LineItemTypeRepuesto LineItemType = "repuesto"
	LineItemTypeManoObra LineItemType = "mano_obra"
	LineItemTypeOtro     LineItemType = "otro"
)

// LineItem is a priced unit of work attached to exactly one WorkOrder.
//
// RepuestoID is set when Tipo is "repuesto" (drives the stock decrement at
// finalize time); ServicioID when Tipo is "servicio".

type LineItem struct {
	Tipo           LineItemType `json:"tipo"`
	Descripcion    string       `json:"descripcion"`
	Cantidad       int          `json:"cantidad"`
	PrecioUnitario float64      `json:"precio_unitario"`
	Subtotal       float64      `json:"subtotal,omitempty"`
	RepuestoID     string       `json:"repuesto_id,omitempty"`
	ServicioID     string       `json:"servicio_id,omitempty"`
}

// ResolveSubtotal returns the stored subtotal when present, otherwise
// cantidad × precio unitario.
func (i LineItem) ResolveSubtotal() float64 {
	if i.Subtotal > 0 {
		return i.Subtotal
	}
	return i.PrecioUnitario * float64(i.Cantidad)
}
