package router

import (
	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// EngineConfig carries everything the HTTP engine is assembled from
type EngineConfig struct {
	Config        *config.Config
	Logger        *zap.Logger
	JWTService    *auth.JWTService
	Blacklist     auth.TokenBlacklist
	MeterProvider *telemetry.MeterProvider
	RateLimiter   *middleware.RateLimiter
	System        *handler.SystemHandler
	Handlers      Handlers
}

// NewEngine builds the gin engine with the full middleware stack and every route
func NewEngine(ec EngineConfig) *gin.Engine {
	cfg, log := ec.Config, ec.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	tracingCfg := middleware.DefaultTracingConfig()
	tracingCfg.Enabled = cfg.Telemetry.Enabled
	if cfg.Telemetry.ServiceName != "" {
		tracingCfg.ServiceName = cfg.Telemetry.ServiceName
	}
	profilingCfg := middleware.DefaultProfilingConfig()
	profilingCfg.Enabled = cfg.Telemetry.ProfilingEnabled

	// Order matters:
	// RequestID before the logger so every log line carries it,
	// tracing before the logger so trace ids are available,
	// span decorators inside the otelgin span.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.TracingWithConfig(tracingCfg))
	engine.Use(logger.GinMiddleware(log, logger.WithSkipPaths("/health", "/metrics")))
	engine.Use(middleware.TracingAttributeInjector())
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(middleware.ProfilingWithConfig(profilingCfg))
	engine.Use(middleware.HTTPMetrics(ec.MeterProvider, log))
	engine.Use(middleware.Secure())

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if ec.RateLimiter != nil {
		engine.Use(middleware.RateLimit(ec.RateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	if ec.System != nil {
		engine.GET("/health", ec.System.Health)
	}
	if ec.MeterProvider != nil && ec.MeterProvider.IsEnabled() {
		engine.GET("/metrics", gin.WrapH(ec.MeterProvider.Handler()))
	}
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := NewRouter(engine, WithAPIVersion("v1"))
	// Anonymous requests pass; the per-route guards decide what they may reach
	r.Use(middleware.OptionalJWTAuthMiddleware(ec.JWTService, ec.Blacklist, log))
	routes := 0
	for _, group := range StorefrontRoutes(ec.Handlers) {
		r.Register(group)
		routes += len(group.Routes())
	}
	r.Setup()
	log.Debug("API routes registered", zap.String("base_path", r.BasePath()), zap.Int("routes", routes))

	return engine
}
