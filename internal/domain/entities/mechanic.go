package entities

import "time"

// MechanicStatus is the availability state shown on the encargado dashboard.

type MechanicStatus string

const (
	MechanicStatusDisponible MechanicStatus = "disponible"
	MechanicStatusOcupado    MechanicStatus = "ocupado"
)

// Mechanic is a shop mechanic assignable to work orders.

type Mechanic struct {
	ID           string         `json:"id"`
	RUT          string         `json:"rut,omitempty"`
	Nombre       string         `json:"nombre"`
	Apellido     string         `json:"apellido"`
	Email        string         `json:"email"`
	Especialidad string         `json:"especialidad"`
	Estado       MechanicStatus `json:"estado"`
	Zona         string         `json:"zona,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
