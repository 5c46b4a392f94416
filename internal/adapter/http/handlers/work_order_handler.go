package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taller_mecanico/internal/adapter/http/dto/request"
	"taller_mecanico/internal/adapter/http/dto/response"
	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/domain/workflow"
	"taller_mecanico/internal/usecase"
	"taller_mecanico/pkg"
)

// WorkOrderHandler exposes the orden de trabajo lifecycle over HTTP: intake,
// transitions, line items, finalize/facturar and delivery.

type WorkOrderHandler struct {
	useCase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(useCase usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{useCase: useCase}
}

func (h *WorkOrderHandler) Create(c *gin.Context) {
	var req request.WorkOrderCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	order, err := h.useCase.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) GetByID(c *gin.Context) {
	order, err := h.useCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) UpdateStatus(c *gin.Context) {
	var req request.WorkOrderStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	order, err := h.useCase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.OrderStatus(req.Estado))
	if err != nil {
		respondError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) AddItem(c *gin.Context) {
	var req request.WorkOrderLineItem
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	order, err := h.useCase.AddItem(c.Request.Context(), c.Param("id"), req.ToEntity())
	if err != nil {
		respondError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

// Finalize closes the order: generates the invoice, adjusts stock and stamps
// estado finalizado. Calling it again only re-stamps the estado.
func (h *WorkOrderHandler) Finalize(c *gin.Context) {
	order, err := h.useCase.Finalize(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

// GenerateInvoice is the explicit facturar action for orders already in
// estado finalizado without an invoice.
func (h *WorkOrderHandler) GenerateInvoice(c *gin.Context) {
	order, err := h.useCase.GenerateInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) Deliver(c *gin.Context) {
	order, err := h.useCase.Deliver(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func mapWorkOrderError(err error) *pkg.AppError {
	var transitionErr *workflow.TransitionError
	if errors.As(err, &transitionErr) {
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", transitionErr.Error(), http.StatusConflict)
	}
	var stockErr *workflow.InsufficientStockError
	if errors.As(err, &stockErr) {
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", stockErr.Error(), http.StatusConflict)
	}

	switch {
	case errors.Is(err, workflow.ErrAlreadyInvoiced):
		return pkg.NewDomainErrorSimple("ALREADY_INVOICED", err.Error(), http.StatusConflict)
	case errors.Is(err, workflow.ErrNotFinalized):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FINALIZED", err.Error(), http.StatusConflict)
	case errors.Is(err, workflow.ErrOrderNotInvoiced):
		return pkg.NewDomainErrorSimple("ORDER_NOT_INVOICED", err.Error(), http.StatusConflict)
	case errors.Is(err, workflow.ErrInvoiceNotPaid):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PAID", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrFinalizeFailed):
		return pkg.NewDomainError("FINALIZE_FAILED", usecase.ErrFinalizeFailed.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidDescription),
		errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
