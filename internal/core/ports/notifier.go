package ports

import (
	"context"

	"pos/internal/core/domain/services"
)

// Notifier delivers resolved notifications to the external ordering platform.
//
// Delivery is best effort: one attempt, bounded by the context deadline.
// Implementations report failures through their return value for observability,
// but callers must never let a delivery failure roll back or retry the
// already-committed transition that produced the notification.
type Notifier interface {
	Notify(ctx context.Context, notification services.Notification) error
}
