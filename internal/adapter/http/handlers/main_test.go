package handlers

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"taller_mecanico/internal/adapter/http/dto/request"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	request.RegisterCustomValidators()
	os.Exit(m.Run())
}
