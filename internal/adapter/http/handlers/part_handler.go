package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taller_mecanico/internal/adapter/http/dto/request"
	"taller_mecanico/internal/adapter/http/dto/response"
	"taller_mecanico/internal/domain/workflow"
	"taller_mecanico/internal/usecase"
	"taller_mecanico/pkg"
)

// PartHandler exposes the repuestos inventory: CRUD, the low-stock dashboard
// feed and the part-request approval check.

type PartHandler struct {
	useCase usecase.IPartUseCase
}

func NewPartHandler(useCase usecase.IPartUseCase) *PartHandler {
	return &PartHandler{useCase: useCase}
}

func (h *PartHandler) Create(c *gin.Context) {
	var req request.Part
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	part, err := h.useCase.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, mapPartError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPart(part))
}

func (h *PartHandler) GetByID(c *gin.Context) {
	part, err := h.useCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapPartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPart(part))
}

func (h *PartHandler) List(c *gin.Context) {
	parts, err := h.useCase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapPartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromParts(parts))
}

func (h *PartHandler) ListBelowMinimum(c *gin.Context) {
	parts, err := h.useCase.ListBelowMinimum(c.Request.Context())
	if err != nil {
		respondError(c, mapPartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromParts(parts))
}

func (h *PartHandler) Update(c *gin.Context) {
	var req request.Part
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	part := req.ToEntity()
	part.ID = c.Param("id")
	updated, err := h.useCase.Update(c.Request.Context(), part)
	if err != nil {
		respondError(c, mapPartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPart(updated))
}

// ApproveRequest answers whether the requested quantity is available. Stock
// is untouched either way.
func (h *PartHandler) ApproveRequest(c *gin.Context) {
	var req request.PartApproval
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	part, err := h.useCase.ApproveRequest(c.Request.Context(), c.Param("id"), req.Cantidad)
	if err != nil {
		respondError(c, mapPartError(err))
		return
	}
	c.JSON(http.StatusOK, response.PartApproval{Aprobado: true, Part: response.FromPart(part)})
}

func mapPartError(err error) *pkg.AppError {
	var stockErr *workflow.InsufficientStockError
	if errors.As(err, &stockErr) {
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", stockErr.Error(), http.StatusConflict)
	}

	switch {
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartSKUExists):
		return pkg.NewDomainErrorSimple("SKU_EXISTS", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidPartID), errors.Is(err, usecase.ErrInvalidPartField):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
