package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"taller_mecanico/pkg"
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		log.Printf("[http][handler] %s %s failed: %v", c.Request.Method, c.FullPath(), appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func bindingError(err error) *pkg.AppError {
	return pkg.NewDomainError("INVALID_REQUEST", "cuerpo de la petición inválido", err, http.StatusBadRequest)
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "error interno", err, http.StatusInternalServerError)
}
