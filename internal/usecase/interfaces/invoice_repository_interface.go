package interfaces

import (
	"context"

	"taller_mecanico/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// There is no Create: invoices are only ever written by the finalize
// transaction (IWorkOrderRepository.FinalizeTx). The single mutation allowed
// afterward is the payment state.

type IInvoiceRepository interface {
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByOrderID(ctx context.Context, ordenID string) (entities.Invoice, error)
	UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Invoice, error)
}
