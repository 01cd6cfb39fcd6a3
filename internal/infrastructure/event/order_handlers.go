package event

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// OrderRecorder records business measurements of placed orders
type OrderRecorder interface {
	RecordOrderPlaced(ctx context.Context, total decimal.Decimal, items int)
	RecordPaymentStatusChange(ctx context.Context, from, to string)
}

// OrderMetricsHandler feeds order events into business metrics
type OrderMetricsHandler struct {
	recorder OrderRecorder
}

// NewOrderMetricsHandler creates a new OrderMetricsHandler
func NewOrderMetricsHandler(recorder OrderRecorder) *OrderMetricsHandler {
	return &OrderMetricsHandler{recorder: recorder}
}

// EventTypes returns the handled event types
func (h *OrderMetricsHandler) EventTypes() []string {
	return []string{order.EventTypeOrderCreated, order.EventTypePaymentStatusChanged}
}

// Handle records the event
func (h *OrderMetricsHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *order.OrderCreatedEvent:
		quantity := 0
		for _, item := range e.Items {
			quantity += item.Quantity
		}
		h.recorder.RecordOrderPlaced(ctx, e.Total, quantity)
	case *order.PaymentStatusChangedEvent:
		h.recorder.RecordPaymentStatusChange(ctx, string(e.OldStatus), string(e.NewStatus))
	}
	return nil
}

// OrderAuditHandler writes one structured log line per order event
type OrderAuditHandler struct {
	logger *zap.Logger
}

// NewOrderAuditHandler creates a new OrderAuditHandler
func NewOrderAuditHandler(logger *zap.Logger) *OrderAuditHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderAuditHandler{logger: logger.Named("order_audit")}
}

// EventTypes returns the handled event types
func (h *OrderAuditHandler) EventTypes() []string {
	return []string{order.EventTypeOrderCreated, order.EventTypePaymentStatusChanged}
}

// Handle logs the event
func (h *OrderAuditHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *order.OrderCreatedEvent:
		h.logger.Info("order placed",
			zap.String("order_id", e.OrderID.String()),
			zap.String("customer_id", e.CustomerID.String()),
			zap.Int("lines", len(e.Items)),
			zap.String("total", e.Total.StringFixed(2)),
		)
	case *order.PaymentStatusChangedEvent:
		h.logger.Info("payment status changed",
			zap.String("order_id", e.OrderID.String()),
			zap.String("from", string(e.OldStatus)),
			zap.String("to", string(e.NewStatus)),
		)
	}
	return nil
}

var (
	_ shared.EventHandler = (*OrderMetricsHandler)(nil)
	_ shared.EventHandler = (*OrderAuditHandler)(nil)
)
