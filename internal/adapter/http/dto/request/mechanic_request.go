package request

import "taller_mecanico/internal/domain/entities"

// Mechanic is the create/update payload for a mecanico. RUT is optional but
// validated when present.
type Mechanic struct {
	RUT          string `json:"rut" binding:"omitempty,rut"`
	Nombre       string `json:"nombre" binding:"required"`
	Apellido     string `json:"apellido" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Especialidad string `json:"especialidad" binding:"required"`
	Estado       string `json:"estado" binding:"omitempty,oneof=disponible ocupado"`
	Zona         string `json:"zona"`
}

func (r Mechanic) ToEntity() entities.Mechanic {
	return entities.Mechanic{
		RUT:          r.RUT,
		Nombre:       r.Nombre,
		Apellido:     r.Apellido,
		Email:        r.Email,
		Especialidad: r.Especialidad,
		Estado:       entities.MechanicStatus(r.Estado),
		Zona:         r.Zona,
	}
}
