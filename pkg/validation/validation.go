// Package validation holds the field-level checks shared by the taller domain:
// RUT chileno, patente, teléfono, SKU and numeric range rules.
//
// Every check returns nil when the value is valid and a descriptive
// user-facing error (Spanish, like the rest of the domain) otherwise.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	patenteNueva      = regexp.MustCompile(`^[A-Z]{4}\d{2}$`)
	patenteAntigua    = regexp.MustCompile(`^[A-Z]{2}\d{4}$`)
	patenteIntermedia = regexp.MustCompile(`^[A-Z]{3}\d{3}$`)
	skuPattern        = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	rutBodyPattern    = regexp.MustCompile(`^\d+$`)
)

// CleanRut strips dots and hyphens and upper-cases the check digit.
func CleanRut(rut string) string {
	rut = strings.ReplaceAll(rut, ".", "")
	rut = strings.ReplaceAll(rut, "-", "")
	return strings.ToUpper(rut)
}

// FormatRut renders a RUT as XX.XXX.XXX-X.
func FormatRut(rut string) string {
	clean := CleanRut(rut)
	if len(clean) < 2 {
		return clean
	}
	body := clean[:len(clean)-1]
	dv := clean[len(clean)-1:]

	formatted := ""
	for len(body) > 3 {
		formatted = "." + body[len(body)-3:] + formatted
		body = body[:len(body)-3]
	}
	return body + formatted + "-" + dv
}

// ComputeDV calculates the RUT check digit: mod-11 weighted sum with
// weights cycling 2..7 from the rightmost digit.
func ComputeDV(body string) string {
	sum := 0
	multiplier := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * multiplier
		if multiplier == 7 {
			multiplier = 2
		} else {
			multiplier++
		}
	}

	remainder := 11 - (sum % 11)
	switch remainder {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.Itoa(remainder)
	}
}

func ValidateRut(rut string) error {
	if strings.TrimSpace(rut) == "" {
		return fmt.Errorf("el RUT es obligatorio")
	}

	clean := CleanRut(rut)
	if len(clean) < 8 || len(clean) > 9 {
		return fmt.Errorf("el RUT debe tener entre 8 y 9 caracteres")
	}

	body := clean[:len(clean)-1]
	dv := clean[len(clean)-1:]
	if !rutBodyPattern.MatchString(body) {
		return fmt.Errorf("el RUT contiene caracteres inválidos")
	}

	if dv != ComputeDV(body) {
		return fmt.Errorf("el RUT ingresado no es válido (dígito verificador incorrecto)")
	}
	return nil
}

// FormatPatente upper-cases and strips everything but letters and digits.
func FormatPatente(patente string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(patente) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePatente accepts the three Chilean plate formats:
// LLLL99 (nuevo), LL9999 (antiguo) and LLL999 (intermedio).
func ValidatePatente(patente string) error {
	if strings.TrimSpace(patente) == "" {
		return fmt.Errorf("la patente es obligatoria")
	}

	clean := FormatPatente(patente)
	if !patenteNueva.MatchString(clean) && !patenteAntigua.MatchString(clean) && !patenteIntermedia.MatchString(clean) {
		return fmt.Errorf("formato de patente inválido. Use: ABCD12 (nuevo), AB1234 (antiguo) o ABC123")
	}
	return nil
}

// ValidatePhone accepts Chilean mobile numbers: 9 digits starting with 9,
// or 11 digits with the 56 country prefix.
func ValidatePhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("el teléfono es obligatorio")
	}

	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	clean := digits.String()

	switch len(clean) {
	case 9:
		if !strings.HasPrefix(clean, "9") {
			return fmt.Errorf("los celulares deben comenzar con 9")
		}
		return nil
	case 11:
		if !strings.HasPrefix(clean, "569") {
			return fmt.Errorf("formato de teléfono inválido")
		}
		return nil
	default:
		return fmt.Errorf("el teléfono debe tener 9 dígitos (ej: 912345678)")
	}
}

// ValidateSKU accepts alphanumeric plus hyphen, length 3..20.
func ValidateSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return fmt.Errorf("el SKU es obligatorio")
	}
	if !skuPattern.MatchString(sku) {
		return fmt.Errorf("el SKU solo puede contener letras, números y guiones")
	}
	if len(sku) < 3 || len(sku) > 20 {
		return fmt.Errorf("el SKU debe tener entre 3 y 20 caracteres")
	}
	return nil
}

func ValidateVehicleYear(year int) error {
	currentYear := time.Now().Year()
	if year < 1900 {
		return fmt.Errorf("el año del vehículo no puede ser anterior a 1900")
	}
	if year > currentYear+1 {
		return fmt.Errorf("el año no puede ser mayor a %d", currentYear+1)
	}
	return nil
}

func ValidatePositiveDecimal(value float64, fieldName string) error {
	if value < 0 {
		return fmt.Errorf("%s no puede ser negativo", fieldName)
	}
	return nil
}

// ValidateStock checks availability for a requested quantity.
func ValidateStock(stockActual, cantidadRequerida int) error {
	if cantidadRequerida <= 0 {
		return fmt.Errorf("la cantidad debe ser mayor a 0")
	}
	if stockActual < cantidadRequerida {
		return fmt.Errorf("stock insuficiente. Disponible: %d, Requerido: %d", stockActual, cantidadRequerida)
	}
	return nil
}
