package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database tracing.
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool          // include query variables in spans (development only)
	SlowQueryThresh time.Duration // default 200ms
	DBName          string
}

// DBTracingPlugin registers otelgorm and flags slow queries on the current span.
type DBTracingPlugin struct {
	config DBTracingConfig
	logger *zap.Logger
}

// NewDBTracingPlugin creates a new database tracing plugin with the given configuration.
func NewDBTracingPlugin(cfg DBTracingConfig, logger *zap.Logger) *DBTracingPlugin {
	if cfg.SlowQueryThresh <= 0 {
		cfg.SlowQueryThresh = 200 * time.Millisecond
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DBTracingPlugin{config: cfg, logger: logger}
}

type queryStartKey struct{}

// Register attaches otelgorm and the slow query callbacks to db
func (p *DBTracingPlugin) Register(db *gorm.DB) error {
	if !p.config.Enabled {
		p.logger.Debug("Database tracing disabled, skipping otelgorm registration")
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(p.config.DBName)}
	if !p.config.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	cb := db.Callback()
	registrations := []error{
		cb.Create().Before("gorm:create").Register("storefront:before_create", p.before),
		cb.Query().Before("gorm:query").Register("storefront:before_query", p.before),
		cb.Update().Before("gorm:update").Register("storefront:before_update", p.before),
		cb.Delete().Before("gorm:delete").Register("storefront:before_delete", p.before),
		cb.Row().Before("gorm:row").Register("storefront:before_row", p.before),
		cb.Raw().Before("gorm:raw").Register("storefront:before_raw", p.before),
		cb.Create().After("gorm:create").Register("storefront:after_create", p.after),
		cb.Query().After("gorm:query").Register("storefront:after_query", p.after),
		cb.Update().After("gorm:update").Register("storefront:after_update", p.after),
		cb.Delete().After("gorm:delete").Register("storefront:after_delete", p.after),
		cb.Row().After("gorm:row").Register("storefront:after_row", p.after),
		cb.Raw().After("gorm:raw").Register("storefront:after_raw", p.after),
	}
	if err := errors.Join(registrations...); err != nil {
		return err
	}

	p.logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", p.config.LogFullSQL),
		zap.Duration("slow_query_threshold", p.config.SlowQueryThresh),
	)
	return nil
}

func (p *DBTracingPlugin) before(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartKey{}, time.Now())
	}
}

func (p *DBTracingPlugin) after(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	start, ok := ctx.Value(queryStartKey{}).(time.Time)
	if !ok {
		return
	}
	elapsed := time.Since(start)
	if elapsed <= p.config.SlowQueryThresh {
		return
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
	}
	p.logger.Warn("slow query",
		zap.String("table", db.Statement.Table),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", db.Statement.RowsAffected),
	)
}
