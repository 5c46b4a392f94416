package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taller_mecanico/internal/adapter/http/dto/request"
	"taller_mecanico/internal/adapter/http/dto/response"
	"taller_mecanico/internal/usecase"
	"taller_mecanico/pkg"
)

// InvoiceHandler exposes factura reads and the payment flow.

type InvoiceHandler struct {
	useCase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(useCase usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{useCase: useCase}
}

func (h *InvoiceHandler) GetByID(c *gin.Context) {
	inv, err := h.useCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// GetByOrderID resolves the factura of an orden de trabajo; registered under
// the orden route.
func (h *InvoiceHandler) GetByOrderID(c *gin.Context) {
	inv, err := h.useCase.GetByOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// Pay charges the invoice through the payment gateway. The body is optional;
// when present it is forwarded to the provider as-is (amount excepted).
func (h *InvoiceHandler) Pay(c *gin.Context) {
	var req request.InvoicePayment
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, bindingError(err))
			return
		}
	}

	inv, err := h.useCase.Pay(c.Request.Context(), c.Param("id"), req.ProviderPayload)
	if err != nil {
		respondError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("PAYMENT_REJECTED", "el proveedor de pagos rechazó la solicitud", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAUTHORIZED", "credenciales del proveedor de pagos inválidas", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
