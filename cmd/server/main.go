package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	cartapp "github.com/storefront/backend/internal/application/cart"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	customerapp "github.com/storefront/backend/internal/application/customer"
	orderapp "github.com/storefront/backend/internal/application/order"
	taggingapp "github.com/storefront/backend/internal/application/tagging"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/tagging"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/event"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
	"go.uber.org/zap"

	_ "github.com/storefront/backend/docs"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Storefront API
//	@version		1.0
//	@description	Storefront backend: catalog, carts, orders, customers, tags and likes.

//	@contact.name	API Support

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Output:  cfg.Log.Output,
		Service: cfg.App.Name,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Telemetry
	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(cfg.Telemetry.MetricsEnabled, cfg.Telemetry.ServiceName, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:         cfg.Telemetry.ProfilingEnabled,
		ServerAddress:   cfg.Telemetry.PyroscopeEndpoint,
		ApplicationName: cfg.Telemetry.ServiceName,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if cfg.Telemetry.ProfilingEnabled {
		tracerProvider.EnableSpanProfiles()
	}
	meter := meterProvider.Meter("github.com/storefront/backend")

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected successfully")

	if err := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.App.Env == "development",
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBName:          cfg.Database.DBName,
	}, log).Register(db.DB); err != nil {
		log.Warn("Failed to register database tracing", zap.Error(err))
	}
	if _, err := telemetry.RegisterDBPoolMetrics(meter, db.SQL()); err != nil {
		log.Warn("Failed to register database pool metrics", zap.Error(err))
	}

	// Redis backs the token blacklist and the product read cache
	var (
		redisClient *redis.Client
		blacklist   auth.TokenBlacklist = auth.NewInMemoryTokenBlacklist()
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Warn("Redis unavailable, using in-memory token blacklist and no product cache", zap.Error(err))
		} else {
			blacklist = auth.NewRedisTokenBlacklist(redisClient)
			log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
		}
	}

	// Repositories
	collectionRepo := persistence.NewGormCollectionRepository(db.DB)
	var productRepo catalog.ProductRepository = persistence.NewGormProductRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	tagRepo := persistence.NewGormTagRepository(db.DB)
	taggedItemRepo := persistence.NewGormTaggedItemRepository(db.DB)
	likedItemRepo := persistence.NewGormLikedItemRepository(db.DB)

	// Only catalog reads go through the cache; carts and orders see the database
	catalogProducts := productRepo
	if redisClient != nil && cfg.Catalog.CacheTTL > 0 {
		catalogProducts = cache.NewCachedProductRepository(productRepo, cache.NewRedisStore(redisClient), cfg.Catalog.CacheTTL, log)
	}

	// Application services
	tagService := taggingapp.NewTagService(tagRepo, taggedItemRepo, likedItemRepo, tagging.Resolvers{
		tagging.KindProduct:    tagging.EntityResolverFunc(productRepo.ExistsByID),
		tagging.KindCollection: tagging.EntityResolverFunc(collectionRepo.ExistsByID),
		tagging.KindCustomer:   tagging.EntityResolverFunc(customerRepo.ExistsByID),
		tagging.KindOrder:      tagging.EntityResolverFunc(orderRepo.ExistsByID),
	}, log)
	collectionService := catalogapp.NewCollectionService(collectionRepo, productRepo, tagService)
	collectionService.SetLogger(log)
	productService := catalogapp.NewProductService(catalogProducts, collectionRepo, orderRepo, tagService, cfg.Catalog.TaxRateDecimal())
	productService.SetLogger(log)
	reviewService := catalogapp.NewReviewService(reviewRepo, productRepo)
	cartService := cartapp.NewCartService(cartRepo, productRepo, persistence.NewGormCartTransactionScope(db.DB))
	customerService := customerapp.NewCustomerService(customerRepo, addressRepo)
	orderService := orderapp.NewOrderService(orderRepo, cartRepo, customerRepo, persistence.NewGormOrderTransactionScope(db.DB), log)
	orderService.SetTaggableCleaner(tagService)

	// Order observers run after commit and never affect the request
	eventBus := event.NewInMemoryEventBus(log)
	if storeMetrics, err := telemetry.NewStoreMetrics(meter); err != nil {
		log.Warn("Failed to create store metrics", zap.Error(err))
	} else {
		eventBus.Subscribe(event.NewOrderMetricsHandler(storeMetrics))
	}
	eventBus.Subscribe(event.NewOrderAuditHandler(log))

	var forwarder *event.KafkaForwarder
	if cfg.Kafka.Enabled {
		writer := event.NewKafkaWriter(event.KafkaConfig{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.OrderTopic})
		forwarder = event.NewKafkaForwarder(writer, cfg.Kafka.OrderTopic, log)
		eventBus.Subscribe(forwarder)
		log.Info("Kafka order forwarding enabled",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.OrderTopic),
		)
	}
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	orderService.SetEventPublisher(eventBus)

	// HTTP
	var rateLimiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
	}

	checks := []handler.HealthCheck{{Name: "database", Check: db.Ping}}
	if redisClient != nil {
		checks = append(checks, handler.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
	}

	engine := router.NewEngine(router.EngineConfig{
		Config:        cfg,
		Logger:        log,
		JWTService:    auth.NewJWTService(cfg.JWT),
		Blacklist:     blacklist,
		MeterProvider: meterProvider,
		RateLimiter:   rateLimiter,
		System:        handler.NewSystemHandler(version, checks...),
		Handlers: router.Handlers{
			Collections: handler.NewCollectionHandler(collectionService),
			Products:    handler.NewProductHandler(productService, reviewService),
			Carts:       handler.NewCartHandler(cartService),
			Customers:   handler.NewCustomerHandler(customerService, orderService),
			Orders:      handler.NewOrderHandler(orderService),
			Tagging:     handler.NewTaggingHandler(tagService),
			Auth:        handler.NewAuthHandler(blacklist),
		},
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if rateLimiter != nil {
		rateLimiter.Stop()
	}
	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping event bus", zap.Error(err))
	}
	if forwarder != nil {
		if err := forwarder.Close(); err != nil {
			log.Error("Error closing Kafka writer", zap.Error(err))
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis client", zap.Error(err))
		}
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Error("Error stopping profiler", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down meter provider", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}

	log.Info("Server exited gracefully", zap.Duration("shutdown_budget", cfg.HTTP.ShutdownTimeout.Round(time.Second)))
}
