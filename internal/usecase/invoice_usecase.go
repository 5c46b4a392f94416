package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound            = errors.New("factura no encontrada")
	ErrInvalidInvoiceID           = errors.New("invalid invoice id")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IInvoiceUseCase exposes invoice reads and the payment flow that feeds the
// vehicle-delivery gate: an invoice is marked "pagado" only after the payment
// provider approves the charge.

type IInvoiceUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByOrderID(ctx context.Context, ordenID string) (entities.Invoice, error)
	Pay(ctx context.Context, id string, mpPayload json.RawMessage) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo    interfaces.IInvoiceRepository
	gateway interfaces.IPaymentGateway
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, gateway: gateway}
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) GetByOrderID(ctx context.Context, ordenID string) (entities.Invoice, error) {
	ordenID = strings.TrimSpace(ordenID)
	if ordenID == "" {
		return entities.Invoice{}, ErrInvalidOrderID
	}

	inv, err := u.repo.GetByOrderID(ctx, ordenID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// Pay charges the invoice total through the payment gateway and marks the
// invoice "pagado". Paying an already-paid invoice is a no-op returning the
// invoice unchanged.
func (u *InvoiceUseCase) Pay(ctx context.Context, id string, mpPayload json.RawMessage) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.EstadoPago == entities.PaymentStatusPagado {
		log.Printf("[invoice][usecase] pay no-op, already paid factura_id=%s", inv.ID)
		return inv, nil
	}
	if u.gateway == nil {
		return entities.Invoice{}, errors.New("payment gateway not configured")
	}

	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		mpPayload = json.RawMessage("{}")
	}

	// The source of truth for the amount is the stored invoice.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = inv.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Factura %s", inv.NumeroFactura)
		}
		reqMap["transaction_amount"] = inv.Total
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	log.Printf("[invoice][usecase] calling payment gateway factura_id=%s total=%.0f", inv.ID, inv.Total)
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[invoice][usecase] payment gateway failed factura_id=%s err=%v", inv.ID, err)
		if isGatewayUnauthorized(err) {
			return entities.Invoice{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Invoice{}, ErrPaymentGatewayBadRequest
		}
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] payment approved factura_id=%s provider_payment_id=%s provider_status=%s",
		inv.ID, providerPaymentID, providerStatus)

	updated, err := u.repo.UpdatePaymentStatus(ctx, inv.ID, entities.PaymentStatusPagado)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
