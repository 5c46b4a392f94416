package validation

import (
	"strings"
	"testing"
	"time"
)

func TestComputeDV(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{"12345678", "5"},
		{"11111111", "1"},
		{"22222222", "2"},
		{"7775777", "5"},
	}
	for _, tc := range cases {
		if got := ComputeDV(tc.body); got != tc.want {
			t.Errorf("ComputeDV(%s) = %s, want %s", tc.body, got, tc.want)
		}
	}
}

func TestValidateRut(t *testing.T) {
	valid := []string{"12345678-5", "12.345.678-5", "123456785", "11111111-1"}
	for _, rut := range valid {
		if err := ValidateRut(rut); err != nil {
			t.Errorf("ValidateRut(%s) = %v, want nil", rut, err)
		}
	}

	t.Run("wrong check digit", func(t *testing.T) {
		err := ValidateRut("12345678-9")
		if err == nil || !strings.Contains(err.Error(), "dígito verificador") {
			t.Fatalf("expected check digit error, got %v", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if err := ValidateRut("  "); err == nil {
			t.Fatal("expected error for empty rut")
		}
	})

	t.Run("too short", func(t *testing.T) {
		if err := ValidateRut("123-5"); err == nil {
			t.Fatal("expected error for short rut")
		}
	})

	t.Run("non numeric body", func(t *testing.T) {
		if err := ValidateRut("12a45678-5"); err == nil {
			t.Fatal("expected error for invalid characters")
		}
	})
}

func TestFormatRut(t *testing.T) {
	if got := FormatRut("123456785"); got != "12.345.678-5" {
		t.Fatalf("FormatRut = %s, want 12.345.678-5", got)
	}
	if got := FormatRut("77757775"); got != "7.775.777-5" {
		t.Fatalf("FormatRut = %s, want 7.775.777-5", got)
	}
}

func TestValidatePatente(t *testing.T) {
	valid := []string{"ABCD12", "AB1234", "ABC123", "ab-cd-12", "bc·db·23"}
	for _, p := range valid {
		if err := ValidatePatente(p); err != nil {
			t.Errorf("ValidatePatente(%s) = %v, want nil", p, err)
		}
	}

	invalid := []string{"", "ABCDE1", "1234AB", "ABC12", "ABCD123"}
	for _, p := range invalid {
		if err := ValidatePatente(p); err == nil {
			t.Errorf("ValidatePatente(%s) = nil, want error", p)
		}
	}
}

func TestFormatPatente(t *testing.T) {
	if got := FormatPatente("ab-cd·12"); got != "ABCD12" {
		t.Fatalf("FormatPatente = %s, want ABCD12", got)
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"912345678", "+56912345678", "56 9 1234 5678"}
	for _, p := range valid {
		if err := ValidatePhone(p); err != nil {
			t.Errorf("ValidatePhone(%s) = %v, want nil", p, err)
		}
	}

	invalid := []string{"", "812345678", "12345678", "55912345678", "9123456789"}
	for _, p := range invalid {
		if err := ValidatePhone(p); err == nil {
			t.Errorf("ValidatePhone(%s) = nil, want error", p)
		}
	}
}

func TestValidateSKU(t *testing.T) {
	valid := []string{"FLT-001", "abc", "A1-B2-C3"}
	for _, s := range valid {
		if err := ValidateSKU(s); err != nil {
			t.Errorf("ValidateSKU(%s) = %v, want nil", s, err)
		}
	}

	invalid := []string{"", "ab", "SKU con espacios", "THIS-SKU-IS-WAY-TOO-LONG-123", "SKU_1"}
	for _, s := range invalid {
		if err := ValidateSKU(s); err == nil {
			t.Errorf("ValidateSKU(%s) = nil, want error", s)
		}
	}
}

func TestValidateVehicleYear(t *testing.T) {
	currentYear := time.Now().Year()
	if err := ValidateVehicleYear(currentYear); err != nil {
		t.Fatalf("current year should be valid, got %v", err)
	}
	if err := ValidateVehicleYear(currentYear + 1); err != nil {
		t.Fatalf("next year should be valid, got %v", err)
	}
	if err := ValidateVehicleYear(currentYear + 2); err == nil {
		t.Fatal("expected error for year too far in the future")
	}
	if err := ValidateVehicleYear(1899); err == nil {
		t.Fatal("expected error for year before 1900")
	}
}

func TestValidateStock(t *testing.T) {
	if err := ValidateStock(10, 10); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := ValidateStock(10, 0); err == nil {
		t.Fatal("expected error for non-positive quantity")
	}
	err := ValidateStock(3, 5)
	if err == nil || !strings.Contains(err.Error(), "Disponible: 3, Requerido: 5") {
		t.Fatalf("expected availability in message, got %v", err)
	}
}
