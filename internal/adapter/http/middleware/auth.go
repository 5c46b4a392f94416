package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"taller_mecanico/pkg"
)

// Dashboard roles. The role travels in the JWT "role" claim and is checked
// against the route group, not against individual records.
const (
	RoleEncargado     = "encargado"
	RoleMecanico      = "mecanico"
	RoleRecepcionista = "recepcionista"
)

const sessionContextKey = "session"

var ErrMissingJWTSecret = errors.New("missing JWT_SECRET")

// Session is the authenticated caller attached to the gin context by JWTAuth.
type Session struct {
	UserID string
	Email  string
	Role   string
}

func (s Session) HasRole(roles ...string) bool {
	for _, r := range roles {
		if strings.EqualFold(s.Role, r) {
			return true
		}
	}
	return false
}

// SessionFromContext returns the Session stored by JWTAuth, if any.
func SessionFromContext(c *gin.Context) (Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}

type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token (HS256, JWT_SECRET) and stores the
// resulting Session in the context. Token issuance is not handled here; any
// issuer sharing the secret works.
func JWTAuth() gin.HandlerFunc {
	secret := os.Getenv("JWT_SECRET")

	return func(c *gin.Context) {
		if secret == "" {
			abortUnauthorized(c, "AUTH_NOT_CONFIGURED", "autenticación no configurada")
			return
		}

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthorized(c, "MISSING_TOKEN", "token de autenticación requerido")
			return
		}

		claims := &sessionClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid {
			abortUnauthorized(c, "INVALID_TOKEN", "token inválido o expirado")
			return
		}

		c.Set(sessionContextKey, Session{
			UserID: claims.Subject,
			Email:  claims.Email,
			Role:   strings.ToLower(claims.Role),
		})
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Unauthenticated callers
// get 401 (JWTAuth should run first); authenticated callers with another role
// get 403.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFromContext(c)
		if !ok {
			abortUnauthorized(c, "MISSING_TOKEN", "token de autenticación requerido")
			return
		}
		if !session.HasRole(roles...) {
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "no tiene permisos para esta operación", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(c *gin.Context, code, message string) {
	appErr := pkg.NewDomainErrorSimple(code, message, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
