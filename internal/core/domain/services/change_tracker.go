package services

import (
	"time"

	"pos/internal/core/domain/model/order"
)

// TrackedField names one of the lifecycle timestamps whose changes are
// monitored to derive outbound notifications.
type TrackedField string

const (
	FieldAcceptedAt  TrackedField = "accepted_at"
	FieldReadyAt     TrackedField = "ready_at"
	FieldRejectedAt  TrackedField = "rejected_at"
	FieldCancelledAt TrackedField = "cancelled_at"
	FieldDelayedTo   TrackedField = "delayed_to"
	FieldCompletedAt TrackedField = "completed_at"
)

// TrackedFields returns the fixed set of monitored fields in a stable order.
func TrackedFields() []TrackedField {
	return []TrackedField{
		FieldAcceptedAt,
		FieldReadyAt,
		FieldRejectedAt,
		FieldCancelledAt,
		FieldDelayedTo,
		FieldCompletedAt,
	}
}

// Snapshot captures the values of every tracked field at one point in time,
// taken before a mutation so the tracker can diff against the post-mutation
// state.
type Snapshot struct {
	values map[TrackedField]*time.Time
}

// Change is the set of tracked fields whose values differ between a snapshot
// and the current aggregate state. Field order follows TrackedFields.
type Change struct {
	fields []TrackedField
}

// IsEmpty reports whether no tracked field changed. An empty change produces
// no notification.
func (c Change) IsEmpty() bool {
	return len(c.fields) == 0
}

// Fields returns the changed field names in stable order.
func (c Change) Fields() []TrackedField {
	return c.fields
}

// Contains reports whether the given field is part of the change set.
func (c Change) Contains(field TrackedField) bool {
	for _, f := range c.fields {
		if f == field {
			return true
		}
	}
	return false
}

// Notification is the resolved outbound signal for one order mutation: one
// canonical event type, the identifiers, the changed-field list, and a full
// snapshot of every tracked value so downstream consumers receive complete
// state rather than a partial patch.
type Notification struct {
	Event             order.EventType
	OrderID           int64
	ExternalReference string
	ChangedFields     []TrackedField
	Data              NotificationData
}

// NotificationData carries the current value of every tracked field plus the
// cancelled-by-customer flag. Absent values stay nil and transmit as null.
type NotificationData struct {
	AcceptedAt          *time.Time
	ReadyAt             *time.Time
	RejectedAt          *time.Time
	CancelledAt         *time.Time
	CancelledByCustomer bool
	DelayedTo           *time.Time
	CompletedAt         *time.Time
}

// ChangeTracker is a domain service that detects which tracked lifecycle
// fields changed on an order mutation and resolves the change set to exactly
// one outbound notification.
//
// The resolution priority exists because a single update batch may change more
// than one timestamp; the dispatcher must emit one unambiguous signal rather
// than one per field. Highest priority wins, evaluated top to bottom:
// completed, delayed, cancelled, rejected, accepted, then the generic update
// fallback.
//
// Example usage:
//
//	tracker := services.NewChangeTracker()
//	snapshot := tracker.Snapshot(o)
//	if err := o.Accept(prepTime); err != nil { ... }
//	// persist and commit ...
//	change := tracker.Diff(snapshot, o)
//	if !change.IsEmpty() {
//	    notification := tracker.BuildNotification(o, change)
//	    notifier.Notify(ctx, notification)
//	}
type ChangeTracker struct{}

// NewChangeTracker creates a new ChangeTracker instance.
func NewChangeTracker() ChangeTracker {
	return ChangeTracker{}
}

// Snapshot records the current value of every tracked field on the order.
// Call it before applying a mutation.
func (t ChangeTracker) Snapshot(o *order.Order) Snapshot {
	return Snapshot{values: trackedValues(o)}
}

// Diff compares a pre-mutation snapshot against the order's current state and
// returns the set of tracked fields whose values differ, including nil-to-value
// and value-to-different-value changes.
func (t ChangeTracker) Diff(snapshot Snapshot, o *order.Order) Change {
	current := trackedValues(o)

	var changed []TrackedField
	for _, field := range TrackedFields() {
		if !timesEqual(snapshot.values[field], current[field]) {
			changed = append(changed, field)
		}
	}

	return Change{fields: changed}
}

// Resolve maps a non-empty change set to exactly one canonical event type
// using the fixed priority order. A field only wins when it changed and its
// current value is non-nil; a change set touching none of the prioritized
// fields resolves to the generic update event.
func (t ChangeTracker) Resolve(o *order.Order, change Change) order.EventType {
	switch {
	case change.Contains(FieldCompletedAt) && o.CompletedAt() != nil:
		return order.EventOrderCompleted
	case change.Contains(FieldDelayedTo) && o.DelayedTo() != nil:
		return order.EventOrderDelayed
	case change.Contains(FieldCancelledAt) && o.CancelledAt() != nil:
		return order.EventOrderCancelled
	case change.Contains(FieldRejectedAt) && o.RejectedAt() != nil:
		return order.EventOrderRejected
	case change.Contains(FieldAcceptedAt) && o.AcceptedAt() != nil:
		return order.EventOrderAccepted
	default:
		return order.EventOrderUpdated
	}
}

// BuildNotification assembles the outbound payload for a resolved change:
// the canonical event type, the identifiers, every changed field name, and the
// full current tracked-field state.
func (t ChangeTracker) BuildNotification(o *order.Order, change Change) Notification {
	return Notification{
		Event:             t.Resolve(o, change),
		OrderID:           o.ID(),
		ExternalReference: o.ExternalReference(),
		ChangedFields:     change.Fields(),
		Data:              notificationData(o),
	}
}

// BuildCreationNotification assembles the dedicated creation signal. Creation
// bypasses the diff: there is no before state, so the changed-field list is
// empty and the event type is always the creation event.
func (t ChangeTracker) BuildCreationNotification(o *order.Order) Notification {
	return Notification{
		Event:             order.EventOrderCreated,
		OrderID:           o.ID(),
		ExternalReference: o.ExternalReference(),
		ChangedFields:     []TrackedField{},
		Data:              notificationData(o),
	}
}

func trackedValues(o *order.Order) map[TrackedField]*time.Time {
	return map[TrackedField]*time.Time{
		FieldAcceptedAt:  o.AcceptedAt(),
		FieldReadyAt:     o.ReadyAt(),
		FieldRejectedAt:  o.RejectedAt(),
		FieldCancelledAt: o.CancelledAt(),
		FieldDelayedTo:   o.DelayedTo(),
		FieldCompletedAt: o.CompletedAt(),
	}
}

func notificationData(o *order.Order) NotificationData {
	return NotificationData{
		AcceptedAt:          o.AcceptedAt(),
		ReadyAt:             o.ReadyAt(),
		RejectedAt:          o.RejectedAt(),
		CancelledAt:         o.CancelledAt(),
		CancelledByCustomer: o.CancelledByCustomer(),
		DelayedTo:           o.DelayedTo(),
		CompletedAt:         o.CompletedAt(),
	}
}

// timesEqual compares two nullable timestamps by value.
func timesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
