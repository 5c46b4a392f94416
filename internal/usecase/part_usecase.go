package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/domain/workflow"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPartID    = errors.New("invalid part id")
	ErrPartSKUExists    = errors.New("ya existe un repuesto con ese SKU")
	ErrInvalidPartField = errors.New("invalid part field")
)

// IPartUseCase exposes the repuestos inventory: CRUD plus the part-request
// approval check used by the mechanic dashboard before a part is consumed.

type IPartUseCase interface {
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	List(ctx context.Context) ([]entities.Part, error)
	ListBelowMinimum(ctx context.Context) ([]entities.Part, error)
	Update(ctx context.Context, p entities.Part) (entities.Part, error)
	ApproveRequest(ctx context.Context, id string, cantidad int) (entities.Part, error)
}

type PartUseCase struct {
	repo interfaces.IPartRepository
}

var _ IPartUseCase = (*PartUseCase)(nil)

func NewPartUseCase(repo interfaces.IPartRepository) *PartUseCase {
	return &PartUseCase{repo: repo}
}

func (u *PartUseCase) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	if err := validatePartFields(p); err != nil {
		return entities.Part{}, err
	}

	// SKU is unique across the inventory.
	if existing, err := u.repo.GetBySKU(ctx, p.SKU); err != nil {
		return entities.Part{}, err
	} else if existing.ID != "" {
		return entities.Part{}, ErrPartSKUExists
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *PartUseCase) GetByID(ctx context.Context, id string) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPartID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	if p.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return p, nil
}

func (u *PartUseCase) List(ctx context.Context) ([]entities.Part, error) {
	return u.repo.List(ctx)
}

// ListBelowMinimum returns parts at or under their minimum-stock threshold.
func (u *PartUseCase) ListBelowMinimum(ctx context.Context) ([]entities.Part, error) {
	parts, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	low := make([]entities.Part, 0, len(parts))
	for _, p := range parts {
		if p.BelowMinimum() {
			low = append(low, p)
		}
	}
	return low, nil
}

func (u *PartUseCase) Update(ctx context.Context, p entities.Part) (entities.Part, error) {
	if strings.TrimSpace(p.ID) == "" {
		return entities.Part{}, ErrInvalidPartID
	}
	if err := validatePartFields(p); err != nil {
		return entities.Part{}, err
	}

	p.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Part{}, err
	}
	if updated.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return updated, nil
}

// ApproveRequest checks a requested quantity against availability. It never
// mutates stock; the decrement belongs to the finalize transaction.
func (u *PartUseCase) ApproveRequest(ctx context.Context, id string, cantidad int) (entities.Part, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	if err := workflow.ValidateCanApprovePart(p.Stock, cantidad); err != nil {
		return entities.Part{}, err
	}
	return p, nil
}

func validatePartFields(p entities.Part) error {
	if strings.TrimSpace(p.Nombre) == "" {
		return ErrInvalidPartField
	}
	if p.Stock < 0 || p.StockMinimo < 0 || p.PrecioUnitario < 0 {
		return ErrInvalidPartField
	}
	return nil
}
