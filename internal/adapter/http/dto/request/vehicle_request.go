package request

import "taller_mecanico/internal/domain/entities"

// Vehicle is the create/update payload for a vehiculo.
type Vehicle struct {
	Patente   string `json:"patente" binding:"required,patente"`
	Marca     string `json:"marca" binding:"required"`
	Modelo    string `json:"modelo" binding:"required"`
	Anio      int    `json:"anio" binding:"required"`
	ClienteID string `json:"cliente_id" binding:"required"`
}

func (r Vehicle) ToEntity() entities.Vehicle {
	return entities.Vehicle{
		Patente:   r.Patente,
		Marca:     r.Marca,
		Modelo:    r.Modelo,
		Anio:      r.Anio,
		ClienteID: r.ClienteID,
	}
}
