package commands

import (
	"context"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"
	"pos/internal/core/ports"
)

// notifyTrigger runs the post-commit half of every lifecycle command: diff the
// tracked fields against the pre-mutation snapshot and dispatch at most one
// outbound notification.
//
// It must only be invoked after the unit of work committed; notifying about a
// state that was not durably persisted is never acceptable. Delivery errors
// are deliberately ignored here: the notifier logs them, and a failed delivery
// must never surface to the caller or affect the committed transition.
type notifyTrigger struct {
	tracker  services.ChangeTracker
	notifier ports.Notifier
}

func newNotifyTrigger(notifier ports.Notifier) notifyTrigger {
	return notifyTrigger{
		tracker:  services.NewChangeTracker(),
		notifier: notifier,
	}
}

// snapshot captures the tracked-field state before a mutation.
func (n notifyTrigger) snapshot(o *order.Order) services.Snapshot {
	return n.tracker.Snapshot(o)
}

// afterCommit diffs and dispatches. An empty change set produces no notification.
func (n notifyTrigger) afterCommit(ctx context.Context, o *order.Order, snapshot services.Snapshot) {
	change := n.tracker.Diff(snapshot, o)
	if change.IsEmpty() {
		return
	}

	//nolint:errcheck // best effort: the notifier logs failures, nothing to roll back
	_ = n.notifier.Notify(ctx, n.tracker.BuildNotification(o, change))
}

// afterCreate dispatches the dedicated creation notification; creation has no
// before state to diff.
func (n notifyTrigger) afterCreate(ctx context.Context, o *order.Order) {
	//nolint:errcheck // best effort: the notifier logs failures, nothing to roll back
	_ = n.notifier.Notify(ctx, n.tracker.BuildCreationNotification(o))
}
