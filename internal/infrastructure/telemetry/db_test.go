package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID   uint
	Name string
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&widget{}))
	return db
}

func TestDBTracingPlugin_Disabled(t *testing.T) {
	db := openTestDB(t)
	plugin := NewDBTracingPlugin(DBTracingConfig{Enabled: false}, nil)

	require.NoError(t, plugin.Register(db))
	assert.Nil(t, db.Callback().Query().Get("storefront:after_query"))
}

func TestDBTracingPlugin_FlagsSlowQueries(t *testing.T) {
	db := openTestDB(t)
	core, logs := observer.New(zap.WarnLevel)
	plugin := NewDBTracingPlugin(DBTracingConfig{Enabled: true, SlowQueryThresh: time.Nanosecond, DBName: "storefront"}, zap.New(core))

	require.NoError(t, plugin.Register(db))

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	ctx, span := tp.Tracer("test").Start(context.Background(), "request")

	require.NoError(t, db.WithContext(ctx).Create(&widget{Name: "gear"}).Error)
	span.End()

	assert.GreaterOrEqual(t, logs.FilterMessage("slow query").Len(), 1)
	assert.NotEmpty(t, recorder.Ended())
}

func TestDBTracingPlugin_DoubleRegistration(t *testing.T) {
	db := openTestDB(t)
	plugin := NewDBTracingPlugin(DBTracingConfig{Enabled: true}, nil)

	require.NoError(t, plugin.Register(db))
	assert.Error(t, plugin.Register(db))
}

func TestRegisterDBPoolMetrics(t *testing.T) {
	db := openTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(4)

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	reg, err := RegisterDBPoolMetrics(provider.Meter("test"), sqlDB)
	require.NoError(t, err)
	defer reg.Unregister()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	found := map[string]bool{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		found[m.Name] = true
		if m.Name == "db_pool_max_open_connections" {
			gauge := m.Data.(metricdata.Gauge[int64])
			assert.Equal(t, int64(4), gauge.DataPoints[0].Value)
		}
	}
	assert.True(t, found["db_pool_connections"])
	assert.True(t, found["db_pool_wait_count"])
}
