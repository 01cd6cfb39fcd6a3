package telemetry

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when a metrics set is built without a meter
var ErrMeterNil = errors.New("meter cannot be nil")

// OrderValueBuckets are bucket boundaries for order totals in currency units
var OrderValueBuckets = []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 10000}

// StoreMetrics records storefront business measurements
type StoreMetrics struct {
	ordersPlaced   *Counter
	orderItems     *Counter
	orderValue     *Histogram
	paymentChanges *Counter
}

// NewStoreMetrics creates the storefront business instruments on meter
func NewStoreMetrics(meter metric.Meter) (*StoreMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	ordersPlaced, err := NewCounter(meter, "storefront_orders_placed_total", "Orders placed from carts", "{order}")
	if err != nil {
		return nil, err
	}
	orderItems, err := NewCounter(meter, "storefront_order_items_total", "Units sold across placed orders", "{unit}")
	if err != nil {
		return nil, err
	}
	orderValue, err := NewHistogram(meter, HistogramOpts{
		Name:        "storefront_order_value",
		Description: "Distribution of order totals",
		Unit:        "{currency}",
		Boundaries:  OrderValueBuckets,
	})
	if err != nil {
		return nil, err
	}
	paymentChanges, err := NewCounter(meter, "storefront_payment_status_changes_total", "Payment status transitions", "{change}")
	if err != nil {
		return nil, err
	}

	return &StoreMetrics{
		ordersPlaced:   ordersPlaced,
		orderItems:     orderItems,
		orderValue:     orderValue,
		paymentChanges: paymentChanges,
	}, nil
}

// RecordOrderPlaced counts one placed order with its total and unit count
func (m *StoreMetrics) RecordOrderPlaced(ctx context.Context, total decimal.Decimal, items int) {
	m.ordersPlaced.Inc(ctx)
	m.orderItems.Add(ctx, int64(items))
	m.orderValue.Record(ctx, total.InexactFloat64())
}

// RecordPaymentStatusChange counts a payment status transition
func (m *StoreMetrics) RecordPaymentStatusChange(ctx context.Context, from, to string) {
	m.paymentChanges.Inc(ctx, AttrPaymentFrom.String(from), AttrPaymentTo.String(to))
}
