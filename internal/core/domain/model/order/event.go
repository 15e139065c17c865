package order

import (
	"time"

	"pos/internal/pkg/errs"
)

// EventType identifies the kind of lifecycle transition an audit event records.
// Event types mirror the edges of the status state machine, plus the dedicated
// creation and generic update notifications.
type EventType string

const (
	EventOrderCreated   EventType = "order.created"
	EventOrderAccepted  EventType = "order.accepted"
	EventOrderRejected  EventType = "order.rejected"
	EventOrderDelayed   EventType = "order.delayed"
	EventOrderCompleted EventType = "order.completed"
	EventOrderCancelled EventType = "order.cancelled"

	// EventOrderUpdated is the fallback notification type for tracked-field
	// changes that resolve to no specific lifecycle event. It is never written
	// to the audit log; it exists only on the outbound notification path.
	EventOrderUpdated EventType = "order.updated"
)

// Source identifies who triggered a lifecycle transition.
type Source string

const (
	// SourceUpstreamPlatform marks transitions originating from the external
	// ordering platform (creation and customer cancellation webhooks).
	SourceUpstreamPlatform Source = "upstream_platform"

	// SourceRestaurant marks transitions triggered by restaurant staff.
	SourceRestaurant Source = "restaurant"
)

// Metadata is the free-form context attached to an audit event. Values are
// restricted to JSON-representable types (string, number, boolean, nil, and
// nested maps of the same), keeping the audit log schema-stable.
type Metadata map[string]any

// getLoggableEventTypes returns the event types that may be written to the
// audit log. EventOrderUpdated is excluded: it is a notification-only type.
func getLoggableEventTypes() map[EventType]struct{} {
	return map[EventType]struct{}{
		EventOrderCreated:   {},
		EventOrderAccepted:  {},
		EventOrderRejected:  {},
		EventOrderDelayed:   {},
		EventOrderCompleted: {},
		EventOrderCancelled: {},
	}
}

// Validate checks that the event type is one of the loggable lifecycle types.
func (t EventType) Validate() error {
	if _, ok := getLoggableEventTypes()[t]; !ok {
		return errs.NewValueIsInvalidError("event_type")
	}
	return nil
}

// Validate checks that the source is one of the known trigger origins.
func (s Source) Validate() error {
	if s != SourceUpstreamPlatform && s != SourceRestaurant {
		return errs.NewValueIsInvalidError("source")
	}
	return nil
}

// Event is one immutable audit-log record of a lifecycle transition. Exactly
// one event exists per transition (creation counts as the transition into
// CREATED). Events are appended in the same unit of work as the transition
// they record and are never updated or deleted afterwards.
type Event struct {
	// id is the persistence identifier; zero until the event is stored.
	id int64

	// eventType names the transition this event records.
	eventType EventType

	// source identifies who triggered the transition.
	source Source

	// metadata carries transition context (reasons, prep times, raw payloads).
	metadata Metadata

	// createdAt is when the transition happened, immutable.
	createdAt time.Time
}

// NewEvent creates a validated audit event stamped with the given moment.
func NewEvent(eventType EventType, source Source, metadata Metadata, at time.Time) (Event, error) {
	if err := eventType.Validate(); err != nil {
		return Event{}, err
	}
	if err := source.Validate(); err != nil {
		return Event{}, err
	}

	if metadata == nil {
		metadata = Metadata{}
	}

	return Event{
		eventType: eventType,
		source:    source,
		metadata:  metadata,
		createdAt: at,
	}, nil
}

// RestoreEvent reconstructs an audit event from persistence.
// Used only by repository implementations.
func RestoreEvent(id int64, eventType EventType, source Source, metadata Metadata, createdAt time.Time) Event {
	if metadata == nil {
		metadata = Metadata{}
	}
	return Event{
		id:        id,
		eventType: eventType,
		source:    source,
		metadata:  metadata,
		createdAt: createdAt,
	}
}

// ID returns the persistence identifier, zero for unstored events.
func (e Event) ID() int64 {
	return e.id
}

// Type returns the recorded transition type.
func (e Event) Type() EventType {
	return e.eventType
}

// Source returns who triggered the recorded transition.
func (e Event) Source() Source {
	return e.source
}

// Metadata returns the transition context. Callers must treat it as read-only.
func (e Event) Metadata() Metadata {
	return e.metadata
}

// CreatedAt returns when the transition happened.
func (e Event) CreatedAt() time.Time {
	return e.createdAt
}
