// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"pos/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The external reference carries a unique index: it is the final arbiter
// against duplicate platform submissions. Timestamp columns are owned by the
// aggregate, so GORM's automatic time tracking is disabled.
type OrderDTO struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	ExternalReference   string `gorm:"type:varchar(128);uniqueIndex;not null"`
	RestaurantID        string `gorm:"type:varchar(64);index"`
	CustomerName        string
	DeliveryAddress     string
	Status              string `gorm:"type:varchar(16);index"`
	EstimatedPrepTime   *int
	DelayReason         string
	CancelledByCustomer bool
	AcceptedAt          *time.Time
	ReadyAt             *time.Time
	RejectedAt          *time.Time
	CancelledAt         *time.Time
	DelayedTo           *time.Time `gorm:"index"`
	CompletedAt         *time.Time
	CreatedAt           time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime:false"`
	Items               []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Events              []EventDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one line item of an order.
type ItemDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index;not null"`
	Name        string
	Quantity    int
	UnitPrice   *float64
	Notes       string
	CompletedAt *time.Time
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// EventDTO represents one append-only audit log entry. Metadata is stored as
// jsonb so each event type can carry its own context shape.
type EventDTO struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	OrderID   int64          `gorm:"index;not null"`
	EventType string         `gorm:"type:varchar(32)"`
	Source    string         `gorm:"type:varchar(32)"`
	Metadata  order.Metadata `gorm:"serializer:json;type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for order events.
func (EventDTO) TableName() string {
	return "order_events"
}

// fromDomain converts an order domain aggregate to its database representation.
// Pending audit events are mapped separately by the repository so Add and
// Update can control when they are written.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID(),
			OrderID:     aggregate.ID(),
			Name:        item.Name(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Notes:       item.Notes(),
			CompletedAt: item.CompletedAt(),
		})
	}

	return OrderDTO{
		ID:                  aggregate.ID(),
		ExternalReference:   aggregate.ExternalReference(),
		RestaurantID:        aggregate.RestaurantID(),
		CustomerName:        aggregate.CustomerName(),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		Status:              aggregate.Status().String(),
		EstimatedPrepTime:   aggregate.EstimatedPrepTime(),
		DelayReason:         aggregate.DelayReason(),
		CancelledByCustomer: aggregate.CancelledByCustomer(),
		AcceptedAt:          aggregate.AcceptedAt(),
		ReadyAt:             aggregate.ReadyAt(),
		RejectedAt:          aggregate.RejectedAt(),
		CancelledAt:         aggregate.CancelledAt(),
		DelayedTo:           aggregate.DelayedTo(),
		CompletedAt:         aggregate.CompletedAt(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
		Items:               items,
	}
}

// eventFromDomain converts one audit event to its database representation.
func eventFromDomain(orderID int64, event order.Event) EventDTO {
	return EventDTO{
		ID:        event.ID(),
		OrderID:   orderID,
		EventType: string(event.Type()),
		Source:    string(event.Source()),
		Metadata:  event.Metadata(),
		CreatedAt: event.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and event history using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.RestoreItem(
			item.ID,
			item.Name,
			item.Quantity,
			item.UnitPrice,
			item.Notes,
			item.CompletedAt,
		))
	}

	events := make([]order.Event, 0, len(dto.Events))
	for _, event := range dto.Events {
		events = append(events, order.RestoreEvent(
			event.ID,
			order.EventType(event.EventType),
			order.Source(event.Source),
			event.Metadata,
			event.CreatedAt,
		))
	}

	return order.RestoreOrder(
		dto.ID,
		dto.ExternalReference,
		dto.RestaurantID,
		dto.CustomerName,
		dto.DeliveryAddress,
		status,
		dto.EstimatedPrepTime,
		dto.DelayReason,
		dto.CancelledByCustomer,
		dto.AcceptedAt,
		dto.ReadyAt,
		dto.RejectedAt,
		dto.CancelledAt,
		dto.DelayedTo,
		dto.CompletedAt,
		dto.CreatedAt,
		dto.UpdatedAt,
		items,
		events,
	)
}
