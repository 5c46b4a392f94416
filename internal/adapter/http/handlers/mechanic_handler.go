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

type MechanicHandler struct {
	useCase usecase.IMechanicUseCase
}

func NewMechanicHandler(useCase usecase.IMechanicUseCase) *MechanicHandler {
	return &MechanicHandler{useCase: useCase}
}

func (h *MechanicHandler) Create(c *gin.Context) {
	var req request.Mechanic
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	mechanic, err := h.useCase.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, mapMechanicError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMechanic(mechanic))
}

func (h *MechanicHandler) GetByID(c *gin.Context) {
	mechanic, err := h.useCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapMechanicError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMechanic(mechanic))
}

func (h *MechanicHandler) List(c *gin.Context) {
	mechanics, err := h.useCase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapMechanicError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMechanics(mechanics))
}

func (h *MechanicHandler) Update(c *gin.Context) {
	var req request.Mechanic
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	mechanic := req.ToEntity()
	mechanic.ID = c.Param("id")
	updated, err := h.useCase.Update(c.Request.Context(), mechanic)
	if err != nil {
		respondError(c, mapMechanicError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMechanic(updated))
}

func (h *MechanicHandler) Delete(c *gin.Context) {
	if err := h.useCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapMechanicError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapMechanicError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMechanicNotFound):
		return pkg.NewDomainErrorSimple("MECHANIC_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMechanicID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
