package entities

import "time"

// Client is a taller customer. RUT is validated (mod-11 check digit) before
// persistence.

type Client struct {
	ID        string    `json:"id"`
	RUT       string    `json:"rut"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	Ciudad    string    `json:"ciudad,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
