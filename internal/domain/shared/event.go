package shared

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact raised by an aggregate mutation
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	OccurredAt() time.Time
	AggregateID() uuid.UUID
	AggregateType() string
}

// BaseDomainEvent implements the DomainEvent metadata.
// It is left out of JSON payloads; transports carry it in their own envelope.
type BaseDomainEvent struct {
	meta eventMeta
}

type eventMeta struct {
	id            uuid.UUID
	eventType     string
	occurredAt    time.Time
	aggregateID   uuid.UUID
	aggregateType string
}

// NewBaseDomainEvent stamps a new event id and the current time
func NewBaseDomainEvent(eventType, aggregateType string, aggregateID uuid.UUID) BaseDomainEvent {
	return BaseDomainEvent{meta: eventMeta{
		id:            uuid.New(),
		eventType:     eventType,
		occurredAt:    time.Now(),
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
	}}
}

func (e *BaseDomainEvent) EventID() uuid.UUID     { return e.meta.id }
func (e *BaseDomainEvent) EventType() string      { return e.meta.eventType }
func (e *BaseDomainEvent) OccurredAt() time.Time  { return e.meta.occurredAt }
func (e *BaseDomainEvent) AggregateID() uuid.UUID { return e.meta.aggregateID }
func (e *BaseDomainEvent) AggregateType() string  { return e.meta.aggregateType }
