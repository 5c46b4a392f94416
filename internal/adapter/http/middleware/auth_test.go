package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, role string, secret string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Email: "usuario@taller.cl",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "usr-1",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/v1")
	g.Use(JWTAuth())
	if len(roles) > 0 {
		g.Use(RequireRole(roles...))
	}
	g.GET("/recurso", func(c *gin.Context) {
		s, _ := SessionFromContext(c)
		c.JSON(http.StatusOK, gin.H{"role": s.Role})
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	t.Run("missing token", func(t *testing.T) {
		r := protectedRouter()
		req := httptest.NewRequest(http.MethodGet, "/v1/recurso", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "MISSING_TOKEN" {
			t.Fatalf("expected MISSING_TOKEN, got %v", body["code"])
		}
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		r := protectedRouter()
		req := httptest.NewRequest(http.MethodGet, "/v1/recurso", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("token signed with wrong secret", func(t *testing.T) {
		r := protectedRouter()
		req := httptest.NewRequest(http.MethodGet, "/v1/recurso", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, RoleEncargado, "otro-secreto", time.Now().Add(time.Hour)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_TOKEN" {
			t.Fatalf("expected INVALID_TOKEN, got %v", body["code"])
		}
	})

	t.Run("expired token", func(t *testing.T) {
		r := protectedRouter()
		req := httptest.NewRequest(http.MethodGet, "/v1/recurso", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, RoleEncargado, testSecret, time.Now().Add(-time.Hour)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token attaches session", func(t *testing.T) {
		r := protectedRouter()
		req := httptest.NewRequest(http.MethodGet, "/v1/recurso", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "Encargado", testSecret, time.Now().Add(time.Hour)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["role"] != "encargado" {
			t.Fatalf("expected lowercased role, got %v", body["role"])
		}
	})
}

func TestJWTAuth_SecretNotConfigured(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	r := protectedRouter()
	req := httptest.NewRequest(http.MethodGet, "/v1/recurso", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, RoleEncargado, testSecret, time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["code"] != "AUTH_NOT_CONFIGURED" {
		t.Fatalf("expected AUTH_NOT_CONFIGURED, got %v", body["code"])
	}
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	t.Run("wrong role gets 403", func(t *testing.T) {
		r := protectedRouter(RoleEncargado)
		req := httptest.NewRequest(http.MethodGet, "/v1/recurso", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, RoleRecepcionista, testSecret, time.Now().Add(time.Hour)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "FORBIDDEN" {
			t.Fatalf("expected FORBIDDEN, got %v", body["code"])
		}
	})

	t.Run("any of the listed roles passes", func(t *testing.T) {
		r := protectedRouter(RoleMecanico, RoleEncargado)
		req := httptest.NewRequest(http.MethodGet, "/v1/recurso", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, RoleMecanico, testSecret, time.Now().Add(time.Hour)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
