package interfaces

import (
	"context"

	"taller_mecanico/internal/domain/entities"
)

// IPartRepository abstracts DynamoDB persistence for Part.
//
// Stock writes during finalize go through IWorkOrderRepository.FinalizeTx;
// Update here covers the inventory CRUD surface only.

type IPartRepository interface {
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	GetBySKU(ctx context.Context, sku string) (entities.Part, error)
	List(ctx context.Context) ([]entities.Part, error)
	Update(ctx context.Context, p entities.Part) (entities.Part, error)
}
