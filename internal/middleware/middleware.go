package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
)

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// Authenticator turns a bearer token back into a live principal.
type Authenticator interface {
	Authenticate(ctx context.Context, tokenString string) (model.Principal, error)
}

// PermissionChecker answers whether a subject holds a capability.
type PermissionChecker interface {
	Has(ctx context.Context, sub model.Subject, resource, action string) (bool, error)
}

const principalKey = "principal"

type AuthMiddleware struct {
	auth   Authenticator
	perms  PermissionChecker
	logger *slog.Logger
}

func NewAuthMiddleware(auth Authenticator, perms PermissionChecker, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, perms: perms, logger: logger}
}

// RequireAuth extracts the bearer token, authenticates it and stores the
// principal in the request context. Anything short of a live, active
// principal is a 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.Message(apperr.ErrUnauthenticated)})
			return
		}
		principal, err := m.auth.Authenticate(c.Request.Context(), authHeader[7:])
		if err != nil {
			c.AbortWithStatusJSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireAdmin passes platform admins and enterprise admins only.
// Runs after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.Message(apperr.ErrUnauthenticated)})
			return
		}
		switch principal.PrincipalKind() {
		case model.KindAdmin, model.KindEnterpriseAdmin:
			c.Next()
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperr.Message(apperr.ErrForbidden)})
		}
	}
}

// RequirePermission passes only principals whose effective permission
// set includes the named capability. Runs after RequireAuth.
func (m *AuthMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.Message(apperr.ErrUnauthenticated)})
			return
		}
		allowed, err := m.perms.Has(c.Request.Context(), principal, resource, action)
		if err != nil {
			m.logger.Error("permission check failed",
				slog.String("resource", resource),
				slog.String("action", action),
				slog.Any("error", err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": apperr.Message(err)})
			return
		}
		if !allowed {
			m.logger.Warn("permission denied",
				slog.String("email", principal.PrincipalEmail()),
				slog.String("resource", resource),
				slog.String("action", action))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperr.Message(apperr.ErrForbidden)})
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the authenticated principal stored by
// RequireAuth.
func PrincipalFrom(c *gin.Context) (model.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	principal, ok := v.(model.Principal)
	return principal, ok
}
