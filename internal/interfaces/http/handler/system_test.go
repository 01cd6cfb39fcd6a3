package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemHandler_Health(t *testing.T) {
	t.Run("all checks pass", func(t *testing.T) {
		h := NewSystemHandler("1.2.3", HealthCheck{Name: "database", Check: func(context.Context) error { return nil }})
		router := newTestRouter(nil)
		router.GET("/health", h.Health)

		w := performRequest(router, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		health := decodeData[HealthResponse](t, w)
		assert.Equal(t, "ok", health.Status)
		assert.Equal(t, "1.2.3", health.Version)
		assert.NotEmpty(t, health.GoVersion)
		assert.Equal(t, "ok", health.Checks["database"])
	})

	t.Run("failing check degrades", func(t *testing.T) {
		h := NewSystemHandler("1.2.3",
			HealthCheck{Name: "database", Check: func(context.Context) error { return nil }},
			HealthCheck{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }},
		)
		router := newTestRouter(nil)
		router.GET("/health", h.Health)

		w := performRequest(router, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		health := decodeData[HealthResponse](t, w)
		assert.Equal(t, "degraded", health.Status)
		assert.Equal(t, "ok", health.Checks["database"])
		assert.Equal(t, "connection refused", health.Checks["redis"])
	})
}
