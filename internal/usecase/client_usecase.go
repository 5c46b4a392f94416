package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"
	"taller_mecanico/pkg/validation"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound  = errors.New("cliente no encontrado")
	ErrInvalidClientID = errors.New("invalid client id")

	// ErrValidation wraps every field-level rejection; the concrete reason
	// travels in the wrapped message. Validation fails closed: nothing is
	// persisted after a validation error.
	ErrValidation = errors.New("validation error")
)

type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := validateClientFields(c); err != nil {
		return entities.Client{}, err
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.RUT = validation.FormatRut(c.RUT)
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

func (u *ClientUseCase) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	if strings.TrimSpace(c.ID) == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	if err := validateClientFields(c); err != nil {
		return entities.Client{}, err
	}

	c.RUT = validation.FormatRut(c.RUT)
	c.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	return u.repo.Delete(ctx, id)
}

func validateClientFields(c entities.Client) error {
	if strings.TrimSpace(c.Nombre) == "" || strings.TrimSpace(c.Apellido) == "" {
		return fmt.Errorf("%w: nombre y apellido son obligatorios", ErrValidation)
	}
	if err := validation.ValidateRut(c.RUT); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := validation.ValidatePhone(c.Telefono); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
