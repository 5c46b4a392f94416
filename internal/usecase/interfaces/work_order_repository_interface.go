package interfaces

import (
	"context"

	"taller_mecanico/internal/domain/entities"
)

// StockAdjustment is one clamped stock write applied inside the finalize
// transaction. NewStock is the already-clamped absolute value, never negative.

type StockAdjustment struct {
	PartID   string
	NewStock int
}

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
// FinalizeTx persists the invoice, the order update (estado finalizado +
// factura_id) and all stock adjustments in a single TransactWriteItems,
// conditioned on the order not having an invoice yet. A zero-value order with
// a nil error means the condition failed (someone else invoiced first).

type IWorkOrderRepository interface {
	Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.WorkOrder, error)
	AddItem(ctx context.Context, id string, item entities.LineItem) (entities.WorkOrder, error)
	FinalizeTx(ctx context.Context, orderID string, invoice entities.Invoice, adjustments []StockAdjustment) (entities.WorkOrder, error)
}
