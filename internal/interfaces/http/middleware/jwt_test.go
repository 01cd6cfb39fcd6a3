package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret: "test-secret-key-at-least-32-chars",
		Issuer: "test-issuer",
	})
}

func newTestToken(t *testing.T, jwtService *auth.JWTService, input auth.GenerateTokenInput) string {
	t.Helper()
	if input.UserID == uuid.Nil {
		input.UserID = uuid.New()
	}
	token, err := jwtService.GenerateAccessToken(input)
	require.NoError(t, err)
	return token
}

type failingBlacklist struct{}

func (failingBlacklist) AddToBlacklist(context.Context, string, time.Duration) error {
	return errors.New("redis down")
}

func (failingBlacklist) IsBlacklisted(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorInfo {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	return *resp.Error
}

func actorRouter(mw gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), mw)
	router.GET("/test", func(c *gin.Context) {
		actor := GetActor(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id":  actor.UserID.String(),
			"is_staff": actor.IsStaff,
		})
	})
	return router
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := newTestJWTService()
	userID := uuid.New()
	token := newTestToken(t, jwtService, auth.GenerateTokenInput{UserID: userID, Username: "alice", IsStaff: true})

	router := gin.New()
	router.Use(JWTAuthMiddleware(jwtService, nil, zap.NewNop()))
	router.GET("/test", func(c *gin.Context) {
		claims := GetJWTClaims(c)
		require.NotNil(t, claims)
		assert.Equal(t, userID.String(), claims.UserID)

		actor := GetActor(c)
		assert.Equal(t, userID, actor.UserID)
		assert.Equal(t, "alice", actor.Username)
		assert.True(t, actor.IsStaff)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthMiddleware_Rejections(t *testing.T) {
	jwtService := newTestJWTService()
	otherService := auth.NewJWTService(config.JWTConfig{Secret: "another-secret-key-at-least-32-chars", Issuer: "test-issuer"})

	tests := []struct {
		name     string
		header   string
		wantCode string
	}{
		{name: "missing header", header: "", wantCode: dto.ErrCodeUnauthorized},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantCode: dto.ErrCodeTokenInvalid},
		{name: "empty bearer", header: "Bearer ", wantCode: dto.ErrCodeTokenInvalid},
		{name: "garbage token", header: "Bearer not-a-jwt", wantCode: dto.ErrCodeTokenInvalid},
		{name: "foreign signature", header: "Bearer " + newTestToken(t, otherService, auth.GenerateTokenInput{}), wantCode: dto.ErrCodeTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := actorRouter(JWTAuthMiddleware(jwtService, nil, nil))

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
			info := decodeError(t, w)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Equal(t, w.Header().Get("X-Request-ID"), info.RequestID)
		})
	}
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	jwtService := newTestJWTService()
	token := newTestToken(t, jwtService, auth.GenerateTokenInput{TTL: time.Millisecond})
	time.Sleep(1100 * time.Millisecond)

	router := actorRouter(JWTAuthMiddleware(jwtService, nil, nil))
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrCodeTokenExpired, decodeError(t, w).Code)
}

func TestJWTAuthMiddleware_Blacklist(t *testing.T) {
	jwtService := newTestJWTService()
	token := newTestToken(t, jwtService, auth.GenerateTokenInput{})
	claims, err := jwtService.ValidateAccessToken(token)
	require.NoError(t, err)

	t.Run("revoked token is rejected", func(t *testing.T) {
		blacklist := auth.NewInMemoryTokenBlacklist()
		require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Minute))

		router := actorRouter(JWTAuthMiddleware(jwtService, blacklist, nil))
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		info := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeTokenInvalid, info.Code)
		assert.Equal(t, "Token has been revoked", info.Message)
	})

	t.Run("blacklist failure fails open and is logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		router := actorRouter(JWTAuthMiddleware(jwtService, failingBlacklist{}, zap.New(core)))
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, logs.FilterMessage("Failed to check token blacklist").Len())
	})
}

func TestOptionalJWTAuthMiddleware(t *testing.T) {
	jwtService := newTestJWTService()

	t.Run("anonymous without header", func(t *testing.T) {
		router := actorRouter(OptionalJWTAuthMiddleware(jwtService, nil, nil))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), uuid.Nil.String())
	})

	t.Run("authenticated with a valid token", func(t *testing.T) {
		userID := uuid.New()
		token := newTestToken(t, jwtService, auth.GenerateTokenInput{UserID: userID})
		router := actorRouter(OptionalJWTAuthMiddleware(jwtService, nil, nil))
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
	})

	t.Run("bad token is still rejected", func(t *testing.T) {
		router := actorRouter(OptionalJWTAuthMiddleware(jwtService, nil, nil))
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer tampered")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetActor_Anonymous(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, shared.Actor{}, GetActor(c))
	assert.Nil(t, GetJWTClaims(c))
}
