package response

import (
	"time"

	"taller_mecanico/internal/domain/entities"
)

type Vehicle struct {
	ID        string    `json:"id"`
	Patente   string    `json:"patente"`
	Marca     string    `json:"marca"`
	Modelo    string    `json:"modelo"`
	Anio      int       `json:"anio"`
	ClienteID string    `json:"cliente_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromVehicle(v entities.Vehicle) Vehicle {
	return Vehicle{
		ID:        v.ID,
		Patente:   v.Patente,
		Marca:     v.Marca,
		Modelo:    v.Modelo,
		Anio:      v.Anio,
		ClienteID: v.ClienteID,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromVehicles(vehicles []entities.Vehicle) []Vehicle {
	out := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return out
}
