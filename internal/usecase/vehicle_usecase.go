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
	ErrVehicleNotFound  = errors.New("vehículo no encontrado")
	ErrInvalidVehicleID = errors.New("invalid vehicle id")
)

type IVehicleUseCase interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	ListByClientID(ctx context.Context, clienteID string) ([]entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	repo       interfaces.IVehicleRepository
	clientRepo interfaces.IClientRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, clientRepo interfaces.IClientRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, clientRepo: clientRepo}
}

func (u *VehicleUseCase) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	if err := validateVehicleFields(v); err != nil {
		return entities.Vehicle{}, err
	}

	if v.ClienteID != "" {
		owner, err := u.clientRepo.GetByID(ctx, v.ClienteID)
		if err != nil {
			return entities.Vehicle{}, err
		}
		if owner.ID == "" {
			return entities.Vehicle{}, ErrClientNotFound
		}
	}

	now := time.Now().UTC()
	v.ID = uuid.NewString()
	v.Patente = validation.FormatPatente(v.Patente)
	v.CreatedAt = now
	v.UpdatedAt = now
	return u.repo.Create(ctx, v)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) ListByClientID(ctx context.Context, clienteID string) ([]entities.Vehicle, error) {
	clienteID = strings.TrimSpace(clienteID)
	if clienteID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clienteID)
}

func (u *VehicleUseCase) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	if strings.TrimSpace(v.ID) == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	if err := validateVehicleFields(v); err != nil {
		return entities.Vehicle{}, err
	}

	v.Patente = validation.FormatPatente(v.Patente)
	v.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if updated.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, nil
}

func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidVehicleID
	}
	return u.repo.Delete(ctx, id)
}

func validateVehicleFields(v entities.Vehicle) error {
	if err := validation.ValidatePatente(v.Patente); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := validation.ValidateVehicleYear(v.Anio); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if strings.TrimSpace(v.Marca) == "" || strings.TrimSpace(v.Modelo) == "" {
		return fmt.Errorf("%w: marca y modelo son obligatorios", ErrValidation)
	}
	return nil
}
