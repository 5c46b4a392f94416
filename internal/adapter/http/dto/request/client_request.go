package request

import "taller_mecanico/internal/domain/entities"

// Client is the create/update payload for a cliente. RUT and telefono use the
// custom Chilean validators registered in RegisterCustomValidators.
type Client struct {
	RUT      string `json:"rut" binding:"required,rut"`
	Nombre   string `json:"nombre" binding:"required"`
	Apellido string `json:"apellido" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Telefono string `json:"telefono" binding:"required,telefono_cl"`
	Ciudad   string `json:"ciudad"`
}

func (r Client) ToEntity() entities.Client {
	return entities.Client{
		RUT:      r.RUT,
		Nombre:   r.Nombre,
		Apellido: r.Apellido,
		Email:    r.Email,
		Telefono: r.Telefono,
		Ciudad:   r.Ciudad,
	}
}
