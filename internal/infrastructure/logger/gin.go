package logger

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Gin context keys shared with the HTTP middleware
const (
	GinLoggerKey    = "logger"
	GinRequestIDKey = "request_id"
	GinUserIDKey    = "user_id"
)

type accessLogConfig struct {
	skip map[string]bool
}

// AccessLogOption configures GinMiddleware
type AccessLogOption func(*accessLogConfig)

// WithSkipPaths disables the access line for probe endpoints such as /health.
// The request logger is still attached.
func WithSkipPaths(paths ...string) AccessLogOption {
	return func(cfg *accessLogConfig) {
		for _, p := range paths {
			cfg.skip[p] = true
		}
	}
}

// GinMiddleware attaches a request-scoped logger to the gin and request contexts
// and writes one access line per request once the handlers return.
func GinMiddleware(base *zap.Logger, opts ...AccessLogOption) gin.HandlerFunc {
	cfg := accessLogConfig{skip: map[string]bool{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		reqLogger := base.With(zap.String("method", req.Method), zap.String("path", req.URL.Path))
		ctx, reqLogger := WithRequestID(req.Context(), reqLogger, c.GetString(GinRequestIDKey))
		if traceID := GetTraceID(ctx); traceID != "" {
			reqLogger = reqLogger.With(zap.String("trace_id", traceID))
			ctx = WithContext(ctx, reqLogger)
		}
		c.Set(GinLoggerKey, reqLogger)
		c.Request = req.WithContext(ctx)

		c.Next()

		if cfg.skip[req.URL.Path] {
			return
		}
		logAccess(reqLogger, c, time.Since(start))
	}
}

func logAccess(log *zap.Logger, c *gin.Context, latency time.Duration) {
	status := c.Writer.Status()
	fields := []zap.Field{
		zap.Int("status", status),
		zap.Duration("latency", latency),
		zap.String("client_ip", c.ClientIP()),
		zap.Int("bytes", c.Writer.Size()),
	}
	if route := c.FullPath(); route != "" {
		fields = append(fields, zap.String("route", route))
	}
	if q := c.Request.URL.RawQuery; q != "" {
		fields = append(fields, zap.String("query", q))
	}
	if userID := c.GetString(GinUserIDKey); userID != "" {
		fields = append(fields, zap.String("user_id", userID))
	}
	if len(c.Errors) > 0 {
		fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
	}

	switch {
	case status >= http.StatusInternalServerError:
		log.Error("HTTP request", fields...)
	case status >= http.StatusBadRequest:
		log.Warn("HTTP request", fields...)
	default:
		log.Info("HTTP request", fields...)
	}
}

// Recovery turns a handler panic into a bare 500 and logs it with its stack
func Recovery(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			log := base.With(zap.String("request_id", c.GetString(GinRequestIDKey)))
			if l, ok := c.Get(GinLoggerKey); ok {
				if zl, ok := l.(*zap.Logger); ok {
					log = zl
				}
			}
			log.Error("Panic recovered", zap.Any("panic", rec), zap.Stack("stacktrace"))
			c.AbortWithStatus(http.StatusInternalServerError)
		}()
		c.Next()
	}
}

// GetGinLogger returns the request logger, or a no-op logger outside a request
func GetGinLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(GinLoggerKey); ok {
		if zl, ok := l.(*zap.Logger); ok {
			return zl
		}
	}
	return zap.NewNop()
}
