package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// testResponse mirrors dto.Response with raw data for typed decoding
type testResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *dto.ErrorInfo  `json:"error"`
	Meta    *dto.Meta       `json:"meta"`
}

// newTestRouter builds an engine that attaches the given actor the way the JWT middleware would
func newTestRouter(actor *shared.Actor) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(func(c *gin.Context) {
		if actor != nil {
			c.Set(middleware.JWTActorKey, *actor)
		}
		c.Next()
	})
	return router
}

func performRequest(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) testResponse {
	t.Helper()
	var resp testResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	resp := decodeResponse(t, w)
	require.True(t, resp.Success, w.Body.String())
	var data T
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data
}

func staffActor() *shared.Actor {
	return &shared.Actor{UserID: uuid.New(), Username: "admin", IsStaff: true}
}

func userActor() *shared.Actor {
	return &shared.Actor{UserID: uuid.New(), Username: "jane"}
}

func TestGetRequestID(t *testing.T) {
	t.Run("from context", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Set(logger.GinRequestIDKey, "ctx-id")
		c.Writer.Header().Set(middleware.RequestIDHeader, "header-id")

		assert.Equal(t, "ctx-id", getRequestID(c))
	})

	t.Run("falls back to response header", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Writer.Header().Set(middleware.RequestIDHeader, "header-id")

		assert.Equal(t, "header-id", getRequestID(c))
	})
}

func TestHandleDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound, dto.ErrCodeNotFound, "Resource not found"},
		{"validation", shared.NewValidationError("Cart is empty."), http.StatusBadRequest, dto.ErrCodeValidation, "Cart is empty."},
		{"integrity guard", shared.NewIntegrityGuardError("Collection has products."), http.StatusMethodNotAllowed, dto.ErrCodeIntegrityGuard, "Collection has products."},
		{"forbidden", shared.ErrForbidden, http.StatusForbidden, dto.ErrCodeForbidden, shared.ErrForbidden.Message},
		{"unauthorized", shared.ErrUnauthorized, http.StatusUnauthorized, dto.ErrCodeUnauthorized, shared.ErrUnauthorized.Message},
		{"wrapped domain error", fmt.Errorf("delete: %w", shared.NewIntegrityGuardError("in use")), http.StatusMethodNotAllowed, dto.ErrCodeIntegrityGuard, "in use"},
		{"unknown error", assert.AnError, http.StatusInternalServerError, dto.ErrCodeInternal, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			router := newTestRouter(nil)
			router.GET("/", func(c *gin.Context) { h.HandleDomainError(c, tt.err) })

			w := performRequest(router, http.MethodGet, "/", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
			assert.NotEmpty(t, resp.Error.RequestID)
		})
	}
}

func TestHandleDomainError_LogsUnknownErrors(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := &BaseHandler{}

	router := newTestRouter(nil)
	router.GET("/boom", func(c *gin.Context) {
		c.Set(logger.GinLoggerKey, zap.New(core))
		h.HandleDomainError(c, assert.AnError)
	})

	w := performRequest(router, http.MethodGet, "/boom", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, 1, logs.FilterMessage("Unhandled error").Len())
	assert.Equal(t, "/boom", logs.All()[0].ContextMap()["route"])
}

func TestBaseHandler_ResponseHelpers(t *testing.T) {
	h := &BaseHandler{}
	router := newTestRouter(nil)
	router.GET("/ok", func(c *gin.Context) { h.Success(c, gin.H{"a": 1}) })
	router.GET("/page", func(c *gin.Context) { h.SuccessWithMeta(c, []int{1, 2}, 45, 2, 20) })
	router.POST("/created", func(c *gin.Context) { h.Created(c, gin.H{"id": "x"}) })
	router.DELETE("/gone", func(c *gin.Context) { h.NoContent(c) })
	router.GET("/bad", func(c *gin.Context) { h.BadRequest(c, "nope") })

	w := performRequest(router, http.MethodGet, "/ok", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeResponse(t, w).Success)

	w = performRequest(router, http.MethodGet, "/page", nil)
	meta := decodeResponse(t, w).Meta
	require.NotNil(t, meta)
	assert.Equal(t, int64(45), meta.Total)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.TotalPages)

	w = performRequest(router, http.MethodPost, "/created", nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, http.MethodDelete, "/gone", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = performRequest(router, http.MethodGet, "/bad", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeBadRequest, decodeResponse(t, w).Error.Code)
}

func TestParseUUIDParam_MalformedIsNotFound(t *testing.T) {
	h := &BaseHandler{}
	router := newTestRouter(nil)
	router.GET("/things/:id", func(c *gin.Context) {
		if _, ok := h.parseUUIDParam(c, "id"); ok {
			c.Status(http.StatusOK)
		}
	})

	w := performRequest(router, http.MethodGet, "/things/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decodeResponse(t, w).Error.Code)

	w = performRequest(router, http.MethodGet, "/things/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPageOf(t *testing.T) {
	page, size := pageOf(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, dto.DefaultPageSize, size)

	page, size = pageOf(3, 500)
	assert.Equal(t, 3, page)
	assert.Equal(t, dto.MaxPageSize, size)
}
