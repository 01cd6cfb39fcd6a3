package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// PermissionConfig holds configuration for permission middleware
type PermissionConfig struct {
	// Logger for middleware logging
	Logger *zap.Logger
}

// RequireAuthenticated rejects anonymous requests with 401
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetActor(c).IsAuthenticated() {
			abortUnauthenticated(c)
			return
		}
		c.Next()
	}
}

// RequireStaff creates middleware that only lets staff users through
func RequireStaff() gin.HandlerFunc {
	return RequireStaffWithConfig(PermissionConfig{})
}

// RequireStaffWithConfig creates staff-only middleware with custom config
func RequireStaffWithConfig(cfg PermissionConfig) gin.HandlerFunc {
	return requireActor(cfg, "staff", func(a shared.Actor) bool { return a.IsStaff })
}

// RequirePermission creates middleware that requires a specific permission
func RequirePermission(permission string) gin.HandlerFunc {
	return RequireAnyPermissionWithConfig(PermissionConfig{}, permission)
}

// RequireAnyPermission creates middleware that requires any of the specified permissions
func RequireAnyPermission(permissions ...string) gin.HandlerFunc {
	return RequireAnyPermissionWithConfig(PermissionConfig{}, permissions...)
}

// RequireAnyPermissionWithConfig creates middleware that requires any of the specified permissions with custom config
func RequireAnyPermissionWithConfig(cfg PermissionConfig, permissions ...string) gin.HandlerFunc {
	return requireActor(cfg, "permission", func(a shared.Actor) bool {
		for _, p := range permissions {
			if a.HasPermission(p) {
				return true
			}
		}
		return false
	})
}

// StaffOrReadOnly lets safe methods through for everyone and requires staff for writes
func StaffOrReadOnly() gin.HandlerFunc {
	staff := RequireStaff()
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
		default:
			staff(c)
		}
	}
}

func requireActor(cfg PermissionConfig, requirement string, allowed func(shared.Actor) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if !actor.IsAuthenticated() {
			abortUnauthenticated(c)
			return
		}

		if !allowed(actor) {
			if cfg.Logger != nil {
				cfg.Logger.Warn("Permission denied",
					zap.String("user_id", actor.UserID.String()),
					zap.String("requirement", requirement),
					zap.String("path", c.Request.URL.Path),
				)
			}
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeForbidden,
				"You do not have permission to perform this action.",
				getRequestIDFromContext(c),
			))
			return
		}

		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.Header("WWW-Authenticate", `Bearer realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeUnauthorized,
		"Authentication credentials were not provided.",
		getRequestIDFromContext(c),
	))
}
