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

type VehicleHandler struct {
	useCase usecase.IVehicleUseCase
}

func NewVehicleHandler(useCase usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{useCase: useCase}
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var req request.Vehicle
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	vehicle, err := h.useCase.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) GetByID(c *gin.Context) {
	vehicle, err := h.useCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

// ListByClient returns the vehicles owned by a cliente; registered under the
// cliente route.
func (h *VehicleHandler) ListByClient(c *gin.Context) {
	vehicles, err := h.useCase.ListByClientID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *VehicleHandler) Update(c *gin.Context) {
	var req request.Vehicle
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	vehicle := req.ToEntity()
	vehicle.ID = c.Param("id")
	updated, err := h.useCase.Update(c.Request.Context(), vehicle)
	if err != nil {
		respondError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(updated))
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.useCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapVehicleError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidVehicleID), errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
