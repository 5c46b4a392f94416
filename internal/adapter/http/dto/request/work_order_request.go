package request

import "taller_mecanico/internal/domain/entities"

// WorkOrderCreate is the intake payload for a new orden de trabajo.
type WorkOrderCreate struct {
	Descripcion      string   `json:"descripcion" binding:"required"`
	ClienteID        string   `json:"cliente_id"`
	VehiculoID       string   `json:"vehiculo_id"`
	MecanicoID       string   `json:"mecanico_id"`
	Zona             string   `json:"zona"`
	PresupuestoMonto *float64 `json:"presupuesto_monto" binding:"omitempty,gt=0"`
}

func (r WorkOrderCreate) ToEntity() entities.WorkOrder {
	o := entities.WorkOrder{
		Descripcion: r.Descripcion,
		ClienteID:   r.ClienteID,
		VehiculoID:  r.VehiculoID,
		MecanicoID:  r.MecanicoID,
		Zona:        r.Zona,
	}
	if r.PresupuestoMonto != nil {
		o.Presupuesto = &entities.Presupuesto{MontoTotal: *r.PresupuestoMonto}
	}
	return o
}

// WorkOrderStatusUpdate carries the target estado for a transition.
type WorkOrderStatusUpdate struct {
	Estado string `json:"estado" binding:"required,oneof=ingresado en_diagnostico en_reparacion finalizado facturado entregado"`
}

// WorkOrderLineItem is one priced entry appended to an order.
type WorkOrderLineItem struct {
	Tipo           string  `json:"tipo" binding:"required,oneof=servicio repuesto mano_obra otro"`
	Descripcion    string  `json:"descripcion" binding:"required"`
	Cantidad       int     `json:"cantidad" binding:"required,gt=0"`
	PrecioUnitario float64 `json:"precio_unitario" binding:"gte=0"`
	RepuestoID     string  `json:"repuesto_id"`
	ServicioID     string  `json:"servicio_id"`
}

func (r WorkOrderLineItem) ToEntity() entities.LineItem {
	return entities.LineItem{
		Tipo:           entities.LineItemType(r.Tipo),
		Descripcion:    r.Descripcion,
		Cantidad:       r.Cantidad,
		PrecioUnitario: r.PrecioUnitario,
		RepuestoID:     r.RepuestoID,
		ServicioID:     r.ServicioID,
	}
}
