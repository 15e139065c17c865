package services_test

import (
	"testing"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAcceptableOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem("Burger", 1, nil, "")
	require.NoError(t, err)
	o, err := order.NewOrder("ref-1", "rest-1", "Ada", "1 Main St", []*order.Item{item})
	require.NoError(t, err)
	return o
}

// restoreWith rebuilds an order with the given tracked timestamps set.
func restoreWith(t *testing.T, status order.Status, delayedTo, completedAt *time.Time) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		1, "ref-1", "rest-1", "Ada", "1 Main St",
		status, nil, "", false,
		nil, nil, nil, nil, delayedTo, completedAt,
		now, now, nil, nil,
	)
	require.NoError(t, err)
	return o
}

func TestChangeTracker_Diff(t *testing.T) {
	tracker := services.NewChangeTracker()

	t.Run("no_mutation_yields_empty_change", func(t *testing.T) {
		o := newAcceptableOrder(t)

		snapshot := tracker.Snapshot(o)
		change := tracker.Diff(snapshot, o)

		assert.True(t, change.IsEmpty())
	})

	t.Run("acceptance_changes_accepted_at_and_ready_at", func(t *testing.T) {
		o := newAcceptableOrder(t)
		prepTime, err := kernel.NewPrepTime(20)
		require.NoError(t, err)

		snapshot := tracker.Snapshot(o)
		require.NoError(t, o.Accept(prepTime))
		change := tracker.Diff(snapshot, o)

		assert.False(t, change.IsEmpty())
		assert.Equal(t,
			[]services.TrackedField{services.FieldAcceptedAt, services.FieldReadyAt},
			change.Fields())
	})

	t.Run("untracked_field_changes_are_invisible", func(t *testing.T) {
		o := newAcceptableOrder(t)

		snapshot := tracker.Snapshot(o)
		// A mutation that only touches items does not alter tracked fields.
		_, err := o.CompleteItem(999)
		require.Error(t, err) // unknown item, nothing changed
		change := tracker.Diff(snapshot, o)

		assert.True(t, change.IsEmpty())
	})
}

func TestChangeTracker_Resolve(t *testing.T) {
	tracker := services.NewChangeTracker()
	now := time.Now().UTC()

	t.Run("completed_outranks_delayed_in_one_batch", func(t *testing.T) {
		before := restoreWith(t, order.Accepted, nil, nil)
		delayedTo := now.Add(30 * time.Minute)
		completedAt := now
		after := restoreWith(t, order.Done, &delayedTo, &completedAt)

		snapshot := tracker.Snapshot(before)
		change := tracker.Diff(snapshot, after)
		require.Equal(t,
			[]services.TrackedField{services.FieldDelayedTo, services.FieldCompletedAt},
			change.Fields())

		assert.Equal(t, order.EventOrderCompleted, tracker.Resolve(after, change))
	})

	t.Run("delayed_outranks_cancelled_only_when_set", func(t *testing.T) {
		o := newAcceptableOrder(t)
		prepTime, err := kernel.NewPrepTime(20)
		require.NoError(t, err)
		require.NoError(t, o.Accept(prepTime))

		snapshot := tracker.Snapshot(o)
		require.NoError(t, o.Delay(prepTime, "busy"))
		change := tracker.Diff(snapshot, o)

		assert.Equal(t, order.EventOrderDelayed, tracker.Resolve(o, change))
	})

	t.Run("cancellation_resolves_to_cancelled", func(t *testing.T) {
		o := newAcceptableOrder(t)

		snapshot := tracker.Snapshot(o)
		require.NoError(t, o.Cancel(order.SourceUpstreamPlatform, nil))
		change := tracker.Diff(snapshot, o)

		assert.Equal(t, order.EventOrderCancelled, tracker.Resolve(o, change))
	})

	t.Run("rejection_resolves_to_rejected", func(t *testing.T) {
		o := newAcceptableOrder(t)

		snapshot := tracker.Snapshot(o)
		require.NoError(t, o.Reject("closed"))
		change := tracker.Diff(snapshot, o)

		assert.Equal(t, order.EventOrderRejected, tracker.Resolve(o, change))
	})

	t.Run("acceptance_resolves_to_accepted", func(t *testing.T) {
		o := newAcceptableOrder(t)
		prepTime, err := kernel.NewPrepTime(20)
		require.NoError(t, err)

		snapshot := tracker.Snapshot(o)
		require.NoError(t, o.Accept(prepTime))
		change := tracker.Diff(snapshot, o)

		assert.Equal(t, order.EventOrderAccepted, tracker.Resolve(o, change))
	})

	t.Run("ready_at_only_change_falls_back_to_updated", func(t *testing.T) {
		before := restoreWith(t, order.Accepted, nil, nil)
		after := restoreWith(t, order.Accepted, nil, nil)
		snapshot := tracker.Snapshot(before)

		// Only ready_at differs between the two states.
		readyAt := now.Add(10 * time.Minute)
		afterWithReady, err := order.RestoreOrder(
			1, "ref-1", "rest-1", "Ada", "1 Main St",
			order.Accepted, nil, "", false,
			nil, &readyAt, nil, nil, nil, nil,
			after.CreatedAt(), after.UpdatedAt(), nil, nil,
		)
		require.NoError(t, err)

		change := tracker.Diff(snapshot, afterWithReady)
		require.Equal(t, []services.TrackedField{services.FieldReadyAt}, change.Fields())

		assert.Equal(t, order.EventOrderUpdated, tracker.Resolve(afterWithReady, change))
	})
}

func TestChangeTracker_BuildNotification(t *testing.T) {
	tracker := services.NewChangeTracker()

	t.Run("carries_full_tracked_state_not_just_changed_fields", func(t *testing.T) {
		o := newAcceptableOrder(t)
		prepTime, err := kernel.NewPrepTime(20)
		require.NoError(t, err)
		require.NoError(t, o.Accept(prepTime))

		snapshot := tracker.Snapshot(o)
		require.NoError(t, o.Delay(prepTime, "busy"))
		change := tracker.Diff(snapshot, o)

		notification := tracker.BuildNotification(o, change)

		assert.Equal(t, order.EventOrderDelayed, notification.Event)
		assert.Equal(t, "ref-1", notification.ExternalReference)
		assert.Equal(t, []services.TrackedField{services.FieldDelayedTo}, notification.ChangedFields)
		// Full state: accepted_at from the earlier transition is present too.
		assert.NotNil(t, notification.Data.AcceptedAt)
		assert.NotNil(t, notification.Data.DelayedTo)
		assert.Nil(t, notification.Data.CompletedAt)
	})

	t.Run("acceptance_reports_both_timestamps_under_accepted_event", func(t *testing.T) {
		// Accepting sets accepted_at and derives ready_at in the same
		// mutation, so the outbound signal carries a two-field change set
		// while still resolving to the acceptance event.
		o := newAcceptableOrder(t)
		prepTime, err := kernel.NewPrepTime(20)
		require.NoError(t, err)

		snapshot := tracker.Snapshot(o)
		require.NoError(t, o.Accept(prepTime))
		change := tracker.Diff(snapshot, o)

		notification := tracker.BuildNotification(o, change)

		assert.Equal(t, order.EventOrderAccepted, notification.Event)
		assert.Equal(t,
			[]services.TrackedField{services.FieldAcceptedAt, services.FieldReadyAt},
			notification.ChangedFields)
		assert.NotNil(t, notification.Data.AcceptedAt)
		assert.NotNil(t, notification.Data.ReadyAt)
	})

	t.Run("creation_notification_bypasses_diff", func(t *testing.T) {
		o := newAcceptableOrder(t)

		notification := tracker.BuildCreationNotification(o)

		assert.Equal(t, order.EventOrderCreated, notification.Event)
		assert.Empty(t, notification.ChangedFields)
		assert.Nil(t, notification.Data.AcceptedAt)
		assert.False(t, notification.Data.CancelledByCustomer)
	})
}
