package order

import (
	"errors"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents one customer order as tracked by the restaurant side of the
// system. It is the aggregate root that owns the order's items and its audit
// events, and manages the lifecycle from creation through acceptance, delay,
// rejection, completion, or cancellation.
//
// Order follows these invariants:
//   - Status moves only along the edges defined by the Status state machine
//   - Every successful transition appends exactly one pending audit event;
//     the repository persists the transition and its event in one unit of work
//   - Lifecycle timestamps are set at most once, except delayedTo which resets
//     on repeated delays
//   - completedAt is set when staff mark the order done, or when the last
//     owned item completes
//   - cancelledByCustomer is set only when the cancellation source is the
//     upstream ordering platform
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the persistence identifier; zero until the order is stored.
	id int64

	// externalReference is the identifier assigned by the upstream ordering
	// platform. Unique across all orders; the idempotency key for creation.
	externalReference string

	// restaurantID scopes the order to its owning restaurant.
	restaurantID string

	// customerName and deliveryAddress are descriptive fields from the
	// upstream payload, possibly empty.
	customerName    string
	deliveryAddress string

	// status is the current state in the order lifecycle.
	status Status

	// estimatedPrepTime is the announced preparation estimate in minutes,
	// nil until the order is accepted. Updated on every delay.
	estimatedPrepTime *int

	// delayReason is the staff-provided reason for the latest delay.
	delayReason string

	// cancelledByCustomer is true when cancellation came from the platform.
	cancelledByCustomer bool

	// Lifecycle timestamps. Each is set at most once by a transition, except
	// delayedTo which may be reset by repeated delays.
	acceptedAt  *time.Time
	readyAt     *time.Time
	rejectedAt  *time.Time
	cancelledAt *time.Time
	delayedTo   *time.Time
	completedAt *time.Time

	createdAt time.Time
	updatedAt time.Time

	// items are the line entries owned by this order.
	items []*Item

	// events is the committed audit history, ascending by creation time.
	events []Event

	// pendingEvents are audit entries appended by transitions on this
	// instance and not yet persisted. The repository writes them in the same
	// transaction as the order mutation.
	pendingEvents []Event

	// isConstructed ensures the order was created via NewOrder or RestoreOrder.
	isConstructed bool
}

// NewOrder creates a new Order in CREATED status from an upstream payload.
// Creation counts as the transition into the initial state, so the new
// aggregate carries one pending "order.created" event sourced from the
// upstream platform.
//
// Parameters:
//   - externalReference: platform-assigned identifier, required, unique
//   - restaurantID: owning restaurant reference, may be empty
//   - customerName, deliveryAddress: descriptive fields, may be empty
//   - items: the order's line entries; an empty list is permitted when the
//     upstream payload was empty by design
//
// Returns the created order, or a validation error if the external reference
// is missing.
func NewOrder(externalReference, restaurantID, customerName, deliveryAddress string, items []*Item) (*Order, error) {
	if externalReference == "" {
		return nil, errs.NewValueIsRequiredError("external_reference")
	}

	now := time.Now().UTC()
	o := &Order{
		externalReference: externalReference,
		restaurantID:      restaurantID,
		customerName:      customerName,
		deliveryAddress:   deliveryAddress,
		status:            Created,
		createdAt:         now,
		updatedAt:         now,
		items:             items,
		isConstructed:     true,
	}

	if err := o.appendEvent(EventOrderCreated, SourceUpstreamPlatform, Metadata{
		"external_reference": externalReference,
		"item_count":         len(items),
	}, now); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. It validates the status
// value but does not re-run creation-time validation or append events.
// Used only by repository implementations.
func RestoreOrder(
	id int64,
	externalReference, restaurantID, customerName, deliveryAddress string,
	status Status,
	estimatedPrepTime *int,
	delayReason string,
	cancelledByCustomer bool,
	acceptedAt, readyAt, rejectedAt, cancelledAt, delayedTo, completedAt *time.Time,
	createdAt, updatedAt time.Time,
	items []*Item,
	events []Event,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:                  id,
		externalReference:   externalReference,
		restaurantID:        restaurantID,
		customerName:        customerName,
		deliveryAddress:     deliveryAddress,
		status:              status,
		estimatedPrepTime:   estimatedPrepTime,
		delayReason:         delayReason,
		cancelledByCustomer: cancelledByCustomer,
		acceptedAt:          acceptedAt,
		readyAt:             readyAt,
		rejectedAt:          rejectedAt,
		cancelledAt:         cancelledAt,
		delayedTo:           delayedTo,
		completedAt:         completedAt,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
		items:               items,
		events:              events,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value or hand-rolled instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the persistence identifier, zero for unstored orders.
func (o *Order) ID() int64 { return o.id }

// ExternalReference returns the platform-assigned identifier.
func (o *Order) ExternalReference() string { return o.externalReference }

// RestaurantID returns the owning restaurant reference.
func (o *Order) RestaurantID() string { return o.restaurantID }

// CustomerName returns the customer name from the upstream payload.
func (o *Order) CustomerName() string { return o.customerName }

// DeliveryAddress returns the delivery address from the upstream payload.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// EstimatedPrepTime returns the announced estimate in minutes, nil before acceptance.
func (o *Order) EstimatedPrepTime() *int { return o.estimatedPrepTime }

// DelayReason returns the reason given for the latest delay, empty when none.
func (o *Order) DelayReason() string { return o.delayReason }

// CancelledByCustomer reports whether cancellation came from the platform.
func (o *Order) CancelledByCustomer() bool { return o.cancelledByCustomer }

// AcceptedAt returns when the order was accepted, nil while unset.
func (o *Order) AcceptedAt() *time.Time { return o.acceptedAt }

// ReadyAt returns the promised ready time, nil while unset.
func (o *Order) ReadyAt() *time.Time { return o.readyAt }

// RejectedAt returns when the order was rejected, nil while unset.
func (o *Order) RejectedAt() *time.Time { return o.rejectedAt }

// CancelledAt returns when the order was cancelled, nil while unset.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// DelayedTo returns the latest revised ready time, nil while unset.
func (o *Order) DelayedTo() *time.Time { return o.delayedTo }

// CompletedAt returns when the preparation finished, nil while unset.
func (o *Order) CompletedAt() *time.Time { return o.completedAt }

// CreatedAt returns when the order was created. Immutable.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Items returns the owned line entries. Callers must treat the slice as read-only.
func (o *Order) Items() []*Item { return o.items }

// Events returns the committed audit history, ascending by creation time.
// Callers must treat the slice as read-only.
func (o *Order) Events() []Event { return o.events }

// PendingEvents returns audit entries appended by transitions on this instance
// and not yet persisted.
func (o *Order) PendingEvents() []Event { return o.pendingEvents }

// MarkEventsCommitted moves pending events into the committed history.
// Called by the repository after the unit of work persisted them.
func (o *Order) MarkEventsCommitted() {
	o.events = append(o.events, o.pendingEvents...)
	o.pendingEvents = nil
}

// TotalPrice returns the sum of quantity times unit price across priced items.
func (o *Order) TotalPrice() float64 {
	var total float64
	for _, item := range o.items {
		if item.UnitPrice() != nil {
			total += float64(item.Quantity()) * *item.UnitPrice()
		}
	}
	return total
}

// AllItemsCompleted reports whether every owned item has been finished.
// An order without items is never considered complete through this path.
func (o *Order) AllItemsCompleted() bool {
	if len(o.items) == 0 {
		return false
	}
	for _, item := range o.items {
		if !item.IsCompleted() {
			return false
		}
	}
	return true
}

// Accept transitions the order to ACCEPTED with the given preparation estimate.
//
// Business rules:
//   - Only CREATED orders can be accepted
//   - The estimate is required; acceptedAt and the promised readyAt are derived
//     from it exactly once
//
// The transition appends one "order.accepted" event sourced from the restaurant.
func (o *Order) Accept(prepTime kernel.PrepTime) error {
	if err := prepTime.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	minutes := prepTime.Minutes()
	readyAt := now.Add(prepTime.Duration())

	o.status = newStatus
	o.estimatedPrepTime = &minutes
	o.acceptedAt = &now
	o.readyAt = &readyAt
	o.touch(now)

	return o.appendEvent(EventOrderAccepted, SourceRestaurant, Metadata{
		"estimated_prep_time": minutes,
	}, now)
}

// Reject transitions the order to REJECTED with an optional free-text reason.
// Only CREATED orders can be rejected. The transition appends one
// "order.rejected" event sourced from the restaurant.
func (o *Order) Reject(reason string) error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.rejectedAt = &now
	o.touch(now)

	return o.appendEvent(EventOrderRejected, SourceRestaurant, Metadata{
		"reason": reason,
	}, now)
}

// Delay transitions the order to DELAYED with a revised preparation estimate
// and an optional reason. Accepted and already-delayed orders can be delayed;
// repeated delays reset delayedTo each time.
//
// The transition appends one "order.delayed" event carrying the previous and
// the new estimate.
func (o *Order) Delay(prepTime kernel.PrepTime, reason string) error {
	if err := prepTime.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Delay()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	minutes := prepTime.Minutes()
	delayedTo := now.Add(prepTime.Duration())

	metadata := Metadata{
		"new_prep_time": minutes,
		"reason":        reason,
	}
	if o.estimatedPrepTime != nil {
		metadata["old_prep_time"] = *o.estimatedPrepTime
	}

	o.status = newStatus
	o.estimatedPrepTime = &minutes
	o.delayReason = reason
	o.delayedTo = &delayedTo
	o.touch(now)

	return o.appendEvent(EventOrderDelayed, SourceRestaurant, metadata, now)
}

// MarkDone transitions the order to DONE, recording completion by staff action.
// Accepted and delayed orders can be marked done; completedAt is set at most
// once. The transition appends one "order.completed" event sourced from the
// restaurant.
func (o *Order) MarkDone() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	if o.completedAt == nil {
		o.completedAt = &now
	}
	o.touch(now)

	return o.appendEvent(EventOrderCompleted, SourceRestaurant, Metadata{}, now)
}

// Cancel transitions the order to CANCELLED. Any non-terminal order can be
// cancelled. The source distinguishes platform-originated cancellations, which
// additionally set the cancelled-by-customer flag, from staff cancellations.
// The supplied metadata is written to the audit event unchanged.
func (o *Order) Cancel(source Source, metadata Metadata) error {
	if err := source.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.cancelledAt = &now
	if source == SourceUpstreamPlatform {
		o.cancelledByCustomer = true
	}
	o.touch(now)

	return o.appendEvent(EventOrderCancelled, source, metadata, now)
}

// CompleteItem marks one owned item as finished. Completing an
// already-completed item is an idempotent no-op: the original timestamp is
// kept and no downstream completion logic runs again.
//
// When the last pending item completes and the order's own completedAt is
// still unset, the order transitions to DONE through the state machine and
// one "order.completed" event is appended, exactly as for a staff-triggered
// completion. An illegal transition (for example completing all items of an
// order that was never accepted) fails the whole operation so the caller's
// unit of work discards the item mark together with the rejected transition.
//
// Returns:
//   - orderCompleted: true when this call drove the order itself to DONE
//   - error: ObjectNotFoundError for an unknown item, or an
//     InvalidTransitionError from the derived completion
func (o *Order) CompleteItem(itemID int64) (bool, error) {
	var target *Item
	for _, item := range o.items {
		if item.ID() == itemID {
			target = item
			break
		}
	}
	if target == nil {
		return false, errs.NewObjectNotFoundError("item", itemID)
	}

	if target.IsCompleted() {
		return false, nil
	}

	now := time.Now().UTC()
	target.complete(now)
	o.touch(now)

	if !o.AllItemsCompleted() || o.completedAt != nil {
		return false, nil
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return false, err
	}

	o.status = newStatus
	o.completedAt = &now

	if err := o.appendEvent(EventOrderCompleted, SourceRestaurant, Metadata{
		"trigger": "item_completion",
		"item_id": itemID,
	}, now); err != nil {
		return false, err
	}

	return true, nil
}

// touch refreshes the aggregate's updatedAt.
func (o *Order) touch(now time.Time) {
	o.updatedAt = now
}

// appendEvent queues one audit entry for the repository to persist in the
// same unit of work as the transition that produced it.
func (o *Order) appendEvent(eventType EventType, source Source, metadata Metadata, at time.Time) error {
	event, err := NewEvent(eventType, source, metadata, at)
	if err != nil {
		return err
	}
	o.pendingEvents = append(o.pendingEvents, event)
	return nil
}
