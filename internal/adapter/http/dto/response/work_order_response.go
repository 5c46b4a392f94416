package response

import (
	"time"

	"taller_mecanico/internal/domain/entities"
)

// WorkOrder is the wire shape of an orden de trabajo.
type WorkOrder struct {
	ID          string              `json:"id"`
	Estado      string              `json:"estado"`
	Descripcion string              `json:"descripcion"`
	ClienteID   string              `json:"cliente_id,omitempty"`
	VehiculoID  string              `json:"vehiculo_id,omitempty"`
	MecanicoID  string              `json:"mecanico_id,omitempty"`
	Zona        string              `json:"zona,omitempty"`
	Presupuesto *WorkOrderBudget    `json:"presupuesto,omitempty"`
	FacturaID   string              `json:"factura_id,omitempty"`
	Items       []WorkOrderLineItem `json:"items_detalle"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type WorkOrderBudget struct {
	MontoTotal float64 `json:"monto_total"`
}

type WorkOrderLineItem struct {
	Tipo           string  `json:"tipo"`
	Descripcion    string  `json:"descripcion"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
	Subtotal       float64 `json:"subtotal,omitempty"`
	RepuestoID     string  `json:"repuesto_id,omitempty"`
	ServicioID     string  `json:"servicio_id,omitempty"`
}

func FromWorkOrder(o entities.WorkOrder) WorkOrder {
	items := make([]WorkOrderLineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, WorkOrderLineItem{
			Tipo:           string(it.Tipo),
			Descripcion:    it.Descripcion,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       it.Subtotal,
			RepuestoID:     it.RepuestoID,
			ServicioID:     it.ServicioID,
		})
	}

	resp := WorkOrder{
		ID:          o.ID,
		Estado:      string(o.Estado),
		Descripcion: o.Descripcion,
		ClienteID:   o.ClienteID,
		VehiculoID:  o.VehiculoID,
		MecanicoID:  o.MecanicoID,
		Zona:        o.Zona,
		FacturaID:   o.FacturaID,
		Items:       items,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if o.Presupuesto != nil {
		resp.Presupuesto = &WorkOrderBudget{MontoTotal: o.Presupuesto.MontoTotal}
	}
	return resp
}
