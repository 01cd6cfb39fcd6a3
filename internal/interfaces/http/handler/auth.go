package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// AuthHandler handles token revocation
type AuthHandler struct {
	BaseHandler
	blacklist auth.TokenBlacklist
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(blacklist auth.TokenBlacklist) *AuthHandler {
	return &AuthHandler{blacklist: blacklist}
}

// RevokeResponse reports a revoked token
type RevokeResponse struct {
	Revoked bool `json:"revoked" example:"true"`
}

// Revoke godoc
// @ID           revokeToken
// @Summary      Revoke the presented access token
// @Description  The token is rejected for the rest of its lifetime
// @Tags         auth
// @Produce      json
// @Success      200 {object} APIResponse[RevokeResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /auth/revoke [post]
func (h *AuthHandler) Revoke(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil || claims.ID == "" {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeTokenInvalid, "Token cannot be revoked")
		return
	}

	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		h.Success(c, RevokeResponse{Revoked: true})
		return
	}

	if err := h.blacklist.AddToBlacklist(c.Request.Context(), claims.ID, ttl); err != nil {
		logger.GetGinLogger(c).Error("Failed to revoke token", zap.Error(err), zap.String("jti", claims.ID))
		h.InternalError(c, "Failed to revoke token")
		return
	}

	h.Success(c, RevokeResponse{Revoked: true})
}
