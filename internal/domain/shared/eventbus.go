package shared

import "context"

// EventHandler observes committed domain events.
// A returned error is logged by the dispatcher and never reaches the
// operation that raised the event.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	// EventTypes lists the handled types; empty means every event
	EventTypes() []string
}

// EventPublisher hands committed events to their observers
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}
