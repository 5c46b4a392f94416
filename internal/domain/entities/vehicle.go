package entities

import "time"

// Vehicle belongs to a Client; Patente is one of the three Chilean plate
// formats, stored normalized (upper-case, no separators).

type Vehicle struct {
	ID        string    `json:"id"`
	Patente   string    `json:"patente"`
	Marca     string    `json:"marca"`
	Modelo    string    `json:"modelo"`
	Anio      int       `json:"anio"`
	ClienteID string    `json:"cliente_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
