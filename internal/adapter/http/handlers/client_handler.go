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

type ClientHandler struct {
	useCase usecase.IClientUseCase
}

func NewClientHandler(useCase usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{useCase: useCase}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req request.Client
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	client, err := h.useCase.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	client, err := h.useCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.useCase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req request.Client
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	client := req.ToEntity()
	client.ID = c.Param("id")
	updated, err := h.useCase.Update(c.Request.Context(), client)
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(updated))
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.useCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
