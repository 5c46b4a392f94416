package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/domain/workflow"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrOrderNotFound      = errors.New("orden no encontrada")
	ErrInvalidDescription = errors.New("la descripción es obligatoria")
	ErrInvalidLineItem    = errors.New("item inválido")
	ErrPartNotFound       = errors.New("repuesto no encontrado")
	ErrFinalizeFailed     = errors.New("no se pudo finalizar la orden")
)

// ivaRate is the Chilean VAT applied to every invoice. Business constant,
// not configuration.
const ivaRate = 0.19

// fallbackLaborCharge is the default "mano de obra general" amount used when
// an order reaches finalize with neither line items nor a budget. Overridable
// via DEFAULT_LABOR_CHARGE.
const fallbackLaborCharge = 75000

// IWorkOrderUseCase exposes the orden de trabajo lifecycle:
//
//   - intake (Create) and detail reads
//   - state transitions gated by the workflow table
//   - the finalize/invoicing engine (Finalize, GenerateInvoice)
//   - vehicle delivery (Deliver)

type IWorkOrderUseCase interface {
	Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	UpdateStatus(ctx context.Context, id string, target entities.OrderStatus) (entities.WorkOrder, error)
	AddItem(ctx context.Context, id string, item entities.LineItem) (entities.WorkOrder, error)
	Finalize(ctx context.Context, id string) (entities.WorkOrder, error)
	GenerateInvoice(ctx context.Context, id string) (entities.WorkOrder, error)
	Deliver(ctx context.Context, id string) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo        interfaces.IWorkOrderRepository
	partRepo    interfaces.IPartRepository
	invoiceRepo interfaces.IInvoiceRepository

	// locks serializes finalize per order id; the conditional write inside
	// FinalizeTx covers races across processes.
	locks sync.Map
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, partRepo interfaces.IPartRepository, invoiceRepo interfaces.IInvoiceRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, partRepo: partRepo, invoiceRepo: invoiceRepo}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	if strings.TrimSpace(o.Descripcion) == "" {
		return entities.WorkOrder{}, ErrInvalidDescription
	}

	now := time.Now().UTC()
	o.ID = uuid.NewString()
	o.Estado = entities.OrderStatusIngresado
	o.FacturaID = ""
	if o.Items == nil {
		o.Items = []entities.LineItem{}
	}
	o.CreatedAt = now
	o.UpdatedAt = now
	return u.repo.Create(ctx, o)
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.ID == "" {
		return entities.WorkOrder{}, ErrOrderNotFound
	}
	return o, nil
}

// UpdateStatus applies one transition from the workflow table. Disallowed
// transitions are rejected with the allowed successor set, never corrected.
func (u *WorkOrderUseCase) UpdateStatus(ctx context.Context, id string, target entities.OrderStatus) (entities.WorkOrder, error) {
	order, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	if err := workflow.ValidateTransition(order.Estado, target); err != nil {
		return entities.WorkOrder{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, order.ID, target)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

// AddItem appends a line item. Part-typed items are checked against current
// stock before acceptance; the actual decrement happens at finalize.
func (u *WorkOrderUseCase) AddItem(ctx context.Context, id string, item entities.LineItem) (entities.WorkOrder, error) {
	order, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	if item.Cantidad <= 0 || item.PrecioUnitario < 0 || strings.TrimSpace(item.Descripcion) == "" {
		return entities.WorkOrder{}, ErrInvalidLineItem
	}

	if item.Tipo == entities.LineItemTypeRepuesto && item.RepuestoID != "" {
		part, err := u.partRepo.GetByID(ctx, item.RepuestoID)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		if part.ID == "" {
			return entities.WorkOrder{}, ErrPartNotFound
		}
		if err := workflow.ValidateCanApprovePart(part.Stock, item.Cantidad); err != nil {
			return entities.WorkOrder{}, err
		}
	}

	updated, err := u.repo.AddItem(ctx, order.ID, item)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

// Finalize turns the order into an invoiced, stock-adjusted record exactly
// once. When an invoice already exists it only re-stamps estado finalizado:
// no second invoice, no second stock decrement.
func (u *WorkOrderUseCase) Finalize(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidOrderID
	}

	unlock := u.lockOrder(id)
	defer unlock()

	log.Printf("[workorder][usecase] finalize start order_id=%s", id)
	order, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	if order.HasInvoice() {
		log.Printf("[workorder][usecase] finalize idempotent re-stamp order_id=%s factura_id=%s", id, order.FacturaID)
		return u.restampFinalized(ctx, order.ID)
	}

	invoice, adjustments, err := u.buildInvoice(ctx, order)
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("%w: %v", ErrFinalizeFailed, err)
	}

	updated, err := u.repo.FinalizeTx(ctx, order.ID, invoice, adjustments)
	if err != nil {
		log.Printf("[workorder][usecase] finalize tx failed order_id=%s err=%v", id, err)
		return entities.WorkOrder{}, fmt.Errorf("%w: %v", ErrFinalizeFailed, err)
	}
	if updated.ID == "" {
		// Lost the conditional write: another caller invoiced first.
		log.Printf("[workorder][usecase] finalize lost invoice race order_id=%s", id)
		return u.restampFinalized(ctx, order.ID)
	}

	log.Printf("[workorder][usecase] finalize success order_id=%s factura_id=%s numero=%s total=%.0f",
		id, invoice.ID, invoice.NumeroFactura, invoice.Total)
	return updated, nil
}

// GenerateInvoice is the encargado dashboard action for orders that reached
// finalizado without an invoice (estado set through plain CRUD): it applies
// the invoice gate strictly, runs the invoicing engine and advances the order
// to facturado.
func (u *WorkOrderUseCase) GenerateInvoice(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidOrderID
	}

	unlock := u.lockOrder(id)
	defer unlock()

	order, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	if err := workflow.ValidateCanGenerateInvoice(order.Estado, order.HasInvoice()); err != nil {
		return entities.WorkOrder{}, err
	}

	invoice, adjustments, err := u.buildInvoice(ctx, order)
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("%w: %v", ErrFinalizeFailed, err)
	}

	updated, err := u.repo.FinalizeTx(ctx, order.ID, invoice, adjustments)
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("%w: %v", ErrFinalizeFailed, err)
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, workflow.ErrAlreadyInvoiced
	}

	return u.UpdateStatus(ctx, order.ID, entities.OrderStatusFacturado)
}

// Deliver hands the vehicle back: order facturado and invoice pagado.
func (u *WorkOrderUseCase) Deliver(ctx context.Context, id string) (entities.WorkOrder, error) {
	order, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	if !order.HasInvoice() {
		return entities.WorkOrder{}, workflow.ErrOrderNotInvoiced
	}
	invoice, err := u.invoiceRepo.GetByID(ctx, order.FacturaID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if err := workflow.ValidateCanDeliverVehicle(order.Estado, invoice.EstadoPago); err != nil {
		return entities.WorkOrder{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, order.ID, entities.OrderStatusEntregado)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

// buildInvoice computes the point-in-time invoice for an un-invoiced order.
//
// Pricing priority: line items, then budget back-derivation (monto_total
// includes IVA, so subtotal = round(monto / 1.19)), then the default labor
// charge. Stock adjustments are clamped at zero; availability is the
// caller's concern before this point.
func (u *WorkOrderUseCase) buildInvoice(ctx context.Context, order entities.WorkOrder) (entities.Invoice, []interfaces.StockAdjustment, error) {
	subtotal := 0.0
	desglose := entities.Desglose{
		Servicios: []entities.DesgloseItem{},
		Repuestos: []entities.DesgloseItem{},
		ManoObra:  []entities.DesgloseItem{},
		Otros:     []entities.DesgloseItem{},
	}
	var adjustments []interfaces.StockAdjustment

	switch {
	case len(order.Items) > 0:
		for _, item := range order.Items {
			itemSubtotal := item.ResolveSubtotal()
			subtotal += itemSubtotal

			entry := entities.DesgloseItem{
				Descripcion:    item.Descripcion,
				Cantidad:       item.Cantidad,
				PrecioUnitario: item.PrecioUnitario,
				Subtotal:       itemSubtotal,
			}

			switch item.Tipo {
			case entities.LineItemTypeServicio:
				desglose.Servicios = append(desglose.Servicios, entry)
			case entities.LineItemTypeRepuesto:
				desglose.Repuestos = append(desglose.Repuestos, entry)
				if item.RepuestoID != "" {
					part, err := u.partRepo.GetByID(ctx, item.RepuestoID)
					if err != nil {
						return entities.Invoice{}, nil, err
					}
					if part.ID != "" {
						newStock := part.Stock - item.Cantidad
						if newStock < 0 {
							newStock = 0
						}
						adjustments = append(adjustments, interfaces.StockAdjustment{PartID: part.ID, NewStock: newStock})
					}
				}
			case entities.LineItemTypeManoObra:
				desglose.ManoObra = append(desglose.ManoObra, entry)
			default:
				desglose.Otros = append(desglose.Otros, entry)
			}
		}
	case order.Presupuesto != nil && order.Presupuesto.MontoTotal > 0:
		subtotal = math.Round(order.Presupuesto.MontoTotal / (1 + ivaRate))
	default:
		charge := defaultLaborCharge()
		subtotal = charge
		desglose.ManoObra = append(desglose.ManoObra, entities.DesgloseItem{
			Descripcion:    "Mano de obra general",
			Cantidad:       1,
			PrecioUnitario: charge,
			Subtotal:       charge,
		})
	}

	iva := math.Round(subtotal * ivaRate)
	now := time.Now().UTC()
	invoice := entities.Invoice{
		ID:            uuid.NewString(),
		NumeroFactura: fmt.Sprintf("FACT-%d-%s", now.UnixMilli(), order.ID),
		FechaEmision:  now.Format("2006-01-02"),
		Subtotal:      subtotal,
		IVA:           iva,
		Total:         subtotal + iva,
		Desglose:      desglose,
		OrdenID:       order.ID,
		EstadoPago:    entities.PaymentStatusPendiente,
		CreatedAt:     now,
	}
	return invoice, adjustments, nil
}

func (u *WorkOrderUseCase) restampFinalized(ctx context.Context, id string) (entities.WorkOrder, error) {
	updated, err := u.repo.UpdateStatus(ctx, id, entities.OrderStatusFinalizado)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *WorkOrderUseCase) lockOrder(id string) func() {
	v, _ := u.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func defaultLaborCharge() float64 {
	if v := strings.TrimSpace(os.Getenv("DEFAULT_LABOR_CHARGE")); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallbackLaborCharge
}
