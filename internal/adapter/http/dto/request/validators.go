package request

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"taller_mecanico/pkg/validation"
)

// RegisterCustomValidators wires the Chilean format rules into gin's binding
// engine. Must run once at startup, before any route binds a request struct.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("rut", func(fl validator.FieldLevel) bool {
		return validation.ValidateRut(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("patente", func(fl validator.FieldLevel) bool {
		return validation.ValidatePatente(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("sku", func(fl validator.FieldLevel) bool {
		return validation.ValidateSKU(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("telefono_cl", func(fl validator.FieldLevel) bool {
		return validation.ValidatePhone(fl.Field().String()) == nil
	})
}
