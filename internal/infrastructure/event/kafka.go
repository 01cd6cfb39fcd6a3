package event

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultWriteTimeout bounds a single forward to the broker
const DefaultWriteTimeout = 5 * time.Second

// MessageWriter is the subset of *kafka.Writer the forwarder needs
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaConfig configures the order topic writer
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// NewKafkaWriter creates a synchronous writer for the order topic.
// Messages with the same key (the order id) land on the same partition.
func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchSize:              1,
		WriteTimeout:           DefaultWriteTimeout,
		MaxAttempts:            3,
		AllowAutoTopicCreation: true,
	}
}

// KafkaForwarder forwards order events to Kafka.
// It is subscribed on the in-memory bus, so a broker outage only produces log lines.
type KafkaForwarder struct {
	writer  MessageWriter
	topic   string
	timeout time.Duration
	logger  *zap.Logger
	tracer  trace.Tracer
}

// NewKafkaForwarder creates a forwarder writing through the given writer
func NewKafkaForwarder(writer MessageWriter, topic string, logger *zap.Logger) *KafkaForwarder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaForwarder{
		writer:  writer,
		topic:   topic,
		timeout: DefaultWriteTimeout,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}
}

// EventTypes returns the forwarded event types
func (f *KafkaForwarder) EventTypes() []string {
	return []string{order.EventTypeOrderCreated, order.EventTypePaymentStatusChanged}
}

// Handle encodes the event and writes it to the topic
func (f *KafkaForwarder) Handle(ctx context.Context, event shared.DomainEvent) error {
	value, err := Encode(event)
	if err != nil {
		return err
	}

	ctx, span := f.tracer.Start(ctx, f.topic+" publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination.name", f.topic),
			attribute.String("messaging.message.id", event.EventID().String()),
		),
	)
	defer span.End()

	msg := kafka.Message{
		Key:   []byte(event.AggregateID().String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType())},
		},
		Time: event.OccurredAt(),
	}
	otel.GetTextMapPropagator().Inject(ctx, (*headerCarrier)(&msg.Headers))

	writeCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	if err := f.writer.WriteMessages(writeCtx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("write %s to %s: %w", event.EventType(), f.topic, err)
	}

	f.logger.Debug("event forwarded to kafka",
		zap.String("event_type", event.EventType()),
		zap.String("topic", f.topic),
	)
	return nil
}

// Close closes the underlying writer
func (f *KafkaForwarder) Close() error {
	return f.writer.Close()
}

// headerCarrier adapts kafka headers to the propagation.TextMapCarrier interface
type headerCarrier []kafka.Header

func (c *headerCarrier) Get(key string) string {
	for _, h := range *c {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *headerCarrier) Set(key, value string) {
	for i, h := range *c {
		if h.Key == key {
			(*c)[i].Value = []byte(value)
			return
		}
	}
	*c = append(*c, kafka.Header{Key: key, Value: []byte(value)})
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, len(*c))
	for i, h := range *c {
		keys[i] = h.Key
	}
	return keys
}

var _ shared.EventHandler = (*KafkaForwarder)(nil)
