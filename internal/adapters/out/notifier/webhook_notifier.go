// Package notifier delivers order state notifications to the external
// ordering platform over HTTP.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"pos/internal/core/domain/services"
	"pos/internal/core/ports"

	"github.com/google/uuid"
)

// WebhookNotifier POSTs notification payloads to the platform's webhook URL.
// Delivery is strictly best effort: one attempt per notification, bounded by
// the configured timeout. Failures are logged and reported to the caller but
// never retried; the committed order state is the source of truth and the
// platform can always re-read it.
type WebhookNotifier struct {
	url     string
	timeout time.Duration
	client  *http.Client
	logger  *slog.Logger
}

// webhookPayload is the wire shape of one notification. Data carries the full
// tracked state so the receiver never needs a follow-up read to interpret the
// change.
type webhookPayload struct {
	Event             string          `json:"event"`
	OrderID           int64           `json:"order_id"`
	ExternalReference string          `json:"external_reference"`
	ChangedFields     []string        `json:"changed_fields"`
	Data              webhookDataBody `json:"data"`
}

type webhookDataBody struct {
	AcceptedAt          *time.Time `json:"accepted_at"`
	ReadyAt             *time.Time `json:"ready_at"`
	RejectedAt          *time.Time `json:"rejected_at"`
	CancelledAt         *time.Time `json:"cancelled_at"`
	DelayedTo           *time.Time `json:"delayed_to"`
	CompletedAt         *time.Time `json:"completed_at"`
	CancelledByCustomer bool       `json:"cancelled_by_customer"`
}

// NewWebhookNotifier creates a notifier targeting the given webhook URL.
// Each delivery attempt is cut off after the given timeout.
func NewWebhookNotifier(url string, timeout time.Duration, logger *slog.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		url:     url,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

var _ ports.Notifier = (*WebhookNotifier)(nil)

// Notify delivers one notification with a single POST attempt.
// Every delivery carries a fresh X-Delivery-Id header so the receiver can
// deduplicate. Non-2xx responses and transport errors are logged and returned;
// callers treat them as fire-and-forget.
func (n *WebhookNotifier) Notify(ctx context.Context, notification services.Notification) error {
	changedFields := make([]string, 0, len(notification.ChangedFields))
	for _, field := range notification.ChangedFields {
		changedFields = append(changedFields, string(field))
	}

	body, err := json.Marshal(webhookPayload{
		Event:             string(notification.Event),
		OrderID:           notification.OrderID,
		ExternalReference: notification.ExternalReference,
		ChangedFields:     changedFields,
		Data: webhookDataBody{
			AcceptedAt:          notification.Data.AcceptedAt,
			ReadyAt:             notification.Data.ReadyAt,
			RejectedAt:          notification.Data.RejectedAt,
			CancelledAt:         notification.Data.CancelledAt,
			DelayedTo:           notification.Data.DelayedTo,
			CompletedAt:         notification.Data.CompletedAt,
			CancelledByCustomer: notification.Data.CancelledByCustomer,
		},
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Delivery-Id", uuid.NewString())

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("notification delivery failed",
			"event", notification.Event,
			"order_id", notification.OrderID,
			"error", err)
		return fmt.Errorf("deliver notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		n.logger.Warn("notification rejected by receiver",
			"event", notification.Event,
			"order_id", notification.OrderID,
			"status", resp.StatusCode)
		return fmt.Errorf("deliver notification: unexpected status %d", resp.StatusCode)
	}

	n.logger.Debug("notification delivered",
		"event", notification.Event,
		"order_id", notification.OrderID)
	return nil
}
