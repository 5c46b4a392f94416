package response

import (
	"time"

	"taller_mecanico/internal/domain/entities"
)

type Mechanic struct {
	ID           string    `json:"id"`
	RUT          string    `json:"rut,omitempty"`
	Nombre       string    `json:"nombre"`
	Apellido     string    `json:"apellido"`
	Email        string    `json:"email"`
	Especialidad string    `json:"especialidad"`
	Estado       string    `json:"estado"`
	Zona         string    `json:"zona,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromMechanic(m entities.Mechanic) Mechanic {
	return Mechanic{
		ID:           m.ID,
		RUT:          m.RUT,
		Nombre:       m.Nombre,
		Apellido:     m.Apellido,
		Email:        m.Email,
		Especialidad: m.Especialidad,
		Estado:       string(m.Estado),
		Zona:         m.Zona,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func FromMechanics(mechanics []entities.Mechanic) []Mechanic {
	out := make([]Mechanic, 0, len(mechanics))
	for _, m := range mechanics {
		out = append(out, FromMechanic(m))
	}
	return out
}
