package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEngine struct {
	handler http.Handler
	jwt     *auth.JWTService
}

// newTestEngine wires handlers without services: every request exercised
// here is answered by middleware or binding before a service is reached.
func newTestEngine(t *testing.T, mutate func(*EngineConfig)) *testEngine {
	t.Helper()

	jwtSvc := auth.NewJWTService(config.JWTConfig{Secret: "router-test-secret-0123456789abcdef", Issuer: "storefront"})
	ec := EngineConfig{
		Config:     &config.Config{},
		Logger:     zap.NewNop(),
		JWTService: jwtSvc,
		Blacklist:  auth.NewInMemoryTokenBlacklist(),
		System:     handler.NewSystemHandler("test"),
		Handlers: Handlers{
			Collections: handler.NewCollectionHandler(nil),
			Products:    handler.NewProductHandler(nil, nil),
			Carts:       handler.NewCartHandler(nil),
			Customers:   handler.NewCustomerHandler(nil, nil),
			Orders:      handler.NewOrderHandler(nil),
			Tagging:     handler.NewTaggingHandler(nil),
			Auth:        handler.NewAuthHandler(auth.NewInMemoryTokenBlacklist()),
		},
	}
	if mutate != nil {
		mutate(&ec)
	}
	return &testEngine{handler: NewEngine(ec), jwt: jwtSvc}
}

func (e *testEngine) token(t *testing.T, staff bool, permissions ...string) string {
	t.Helper()
	token, err := e.jwt.GenerateAccessToken(auth.GenerateTokenInput{
		UserID:      uuid.New(),
		Username:    "tester",
		IsStaff:     staff,
		Permissions: permissions,
		TTL:         time.Minute,
	})
	require.NoError(t, err)
	return token
}

func (e *testEngine) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	require.NotNil(t, resp.Error, w.Body.String())
	return resp.Error.Code
}

func TestNewEngine_Guards(t *testing.T) {
	e := newTestEngine(t, nil)
	user := e.token(t, false)
	staff := e.token(t, true)
	historian := e.token(t, false, shared.PermissionViewCustomerHistory)
	id := uuid.NewString()

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       string
		wantStatus int
	}{
		{"anonymous collection write", http.MethodPost, "/api/v1/collections", "", `{}`, http.StatusUnauthorized},
		{"customer collection write", http.MethodPost, "/api/v1/collections", user, `{}`, http.StatusForbidden},
		{"staff collection write reaches binding", http.MethodPost, "/api/v1/collections", staff, `{}`, http.StatusBadRequest},
		{"customer product delete", http.MethodDelete, "/api/v1/products/" + id, user, "", http.StatusForbidden},
		{"public product read with malformed id", http.MethodGet, "/api/v1/products/42", "", "", http.StatusNotFound},
		{"anonymous review with bad body", http.MethodPost, "/api/v1/products/" + id + "/reviews", "", `{}`, http.StatusBadRequest},
		{"anonymous cart item with bad body", http.MethodPost, "/api/v1/carts/" + id + "/items", "", `{"quantity":0}`, http.StatusBadRequest},
		{"anonymous profile", http.MethodGet, "/api/v1/customers/me", "", "", http.StatusUnauthorized},
		{"customer lists customers", http.MethodGet, "/api/v1/customers", user, "", http.StatusForbidden},
		{"customer reads history", http.MethodGet, "/api/v1/customers/" + id + "/history", user, "", http.StatusForbidden},
		{"permitted history with malformed id", http.MethodGet, "/api/v1/customers/nope/history", historian, "", http.StatusNotFound},
		{"anonymous orders", http.MethodGet, "/api/v1/orders", "", "", http.StatusUnauthorized},
		{"customer changes payment status", http.MethodPatch, "/api/v1/orders/" + id, user, `{"payment_status":"C"}`, http.StatusForbidden},
		{"customer order without cart", http.MethodPost, "/api/v1/orders", user, `{}`, http.StatusBadRequest},
		{"customer tag write", http.MethodPost, "/api/v1/tags", user, `{"label":"x"}`, http.StatusForbidden},
		{"customer tagged items read", http.MethodGet, "/api/v1/tags/items?kind=product&id=" + id, user, "", http.StatusForbidden},
		{"anonymous like", http.MethodPost, "/api/v1/likes", "", `{}`, http.StatusUnauthorized},
		{"like summary with bad query", http.MethodGet, "/api/v1/likes?kind=product", "", "", http.StatusBadRequest},
		{"bad token on public route", http.MethodGet, "/api/v1/products/42", "not-a-jwt", "", http.StatusUnauthorized},
		{"anonymous revoke", http.MethodPost, "/api/v1/auth/revoke", "", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := e.do(tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestNewEngine_RevokedTokenIsRejected(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	e := newTestEngine(t, func(ec *EngineConfig) {
		ec.Blacklist = blacklist
		ec.Handlers.Auth = handler.NewAuthHandler(blacklist)
	})
	token := e.token(t, false)

	w := e.do(http.MethodPost, "/api/v1/auth/revoke", token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = e.do(http.MethodGet, "/api/v1/orders", token, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrCodeTokenInvalid, errorCode(t, w))
}

func TestNewEngine_OperationalEndpoints(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		e := newTestEngine(t, nil)
		w := e.do(http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("swagger disabled", func(t *testing.T) {
		e := newTestEngine(t, nil)
		w := e.do(http.MethodGet, "/swagger/index.html", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("metrics only when enabled", func(t *testing.T) {
		e := newTestEngine(t, nil)
		assert.Equal(t, http.StatusNotFound, e.do(http.MethodGet, "/metrics", "", "").Code)

		mp, err := telemetry.NewMeterProvider(true, "router-test", zap.NewNop())
		require.NoError(t, err)
		t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })

		e = newTestEngine(t, func(ec *EngineConfig) { ec.MeterProvider = mp })
		e.do(http.MethodGet, "/api/v1/products/42", "", "")

		w := e.do(http.MethodGet, "/metrics", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "http_server_request_total")
	})

	t.Run("rate limit", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(1, time.Minute)
		t.Cleanup(limiter.Stop)
		e := newTestEngine(t, func(ec *EngineConfig) { ec.RateLimiter = limiter })

		assert.Equal(t, http.StatusOK, e.do(http.MethodGet, "/health", "", "").Code)
		w := e.do(http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, dto.ErrCodeRateLimited, errorCode(t, w))
	})

	t.Run("body limit", func(t *testing.T) {
		e := newTestEngine(t, func(ec *EngineConfig) { ec.Config.HTTP.MaxBodySize = 16 })
		w := e.do(http.MethodPost, "/api/v1/carts/"+uuid.NewString()+"/items", "", `{"product_id":"`+uuid.NewString()+`","quantity":1}`)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
