package response

import (
	"time"

	"taller_mecanico/internal/domain/entities"
)

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

func FromClient(c entities.Client) Client {
	return Client{
		ID:        c.ID,
		RUT:       c.RUT,
		Nombre:    c.Nombre,
		Apellido:  c.Apellido,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Ciudad:    c.Ciudad,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromClients(clients []entities.Client) []Client {
	out := make([]Client, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
