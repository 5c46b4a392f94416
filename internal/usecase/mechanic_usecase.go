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
	ErrMechanicNotFound  = errors.New("mecánico no encontrado")
	ErrInvalidMechanicID = errors.New("invalid mechanic id")
)

type IMechanicUseCase interface {
	Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	GetByID(ctx context.Context, id string) (entities.Mechanic, error)
	List(ctx context.Context) ([]entities.Mechanic, error)
	Update(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	Delete(ctx context.Context, id string) error
}

type MechanicUseCase struct {
	repo interfaces.IMechanicRepository
}

var _ IMechanicUseCase = (*MechanicUseCase)(nil)

func NewMechanicUseCase(repo interfaces.IMechanicRepository) *MechanicUseCase {
	return &MechanicUseCase{repo: repo}
}

func (u *MechanicUseCase) Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	if err := validateMechanicFields(m); err != nil {
		return entities.Mechanic{}, err
	}

	now := time.Now().UTC()
	m.ID = uuid.NewString()
	if m.Estado == "" {
		m.Estado = entities.MechanicStatusDisponible
	}
	if m.RUT != "" {
		m.RUT = validation.FormatRut(m.RUT)
	}
	m.CreatedAt = now
	m.UpdatedAt = now
	return u.repo.Create(ctx, m)
}

func (u *MechanicUseCase) GetByID(ctx context.Context, id string) (entities.Mechanic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Mechanic{}, ErrInvalidMechanicID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if m.ID == "" {
		return entities.Mechanic{}, ErrMechanicNotFound
	}
	return m, nil
}

func (u *MechanicUseCase) List(ctx context.Context) ([]entities.Mechanic, error) {
	return u.repo.List(ctx)
}

func (u *MechanicUseCase) Update(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	if strings.TrimSpace(m.ID) == "" {
		return entities.Mechanic{}, ErrInvalidMechanicID
	}
	if err := validateMechanicFields(m); err != nil {
		return entities.Mechanic{}, err
	}

	if m.RUT != "" {
		m.RUT = validation.FormatRut(m.RUT)
	}
	m.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if updated.ID == "" {
		return entities.Mechanic{}, ErrMechanicNotFound
	}
	return updated, nil
}

func (u *MechanicUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidMechanicID
	}
	return u.repo.Delete(ctx, id)
}

func validateMechanicFields(m entities.Mechanic) error {
	if strings.TrimSpace(m.Nombre) == "" || strings.TrimSpace(m.Apellido) == "" {
		return fmt.Errorf("%w: nombre y apellido son obligatorios", ErrValidation)
	}
	// RUT is optional for mechanics (legacy records lack it) but validated
	// when present.
	if m.RUT != "" {
		if err := validation.ValidateRut(m.RUT); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	return nil
}
