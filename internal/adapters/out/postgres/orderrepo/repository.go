package orderrepo

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database together with its items and pending
// audit events, then returns the aggregate rebuilt from the stored rows so
// the caller sees the database-assigned identifiers.
//
// A unique-constraint violation on the external reference maps to
// errs.ErrDuplicateExternalReference. Requires TranslateError on the GORM
// connection.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	for _, event := range aggregate.PendingEvents() {
		dto.Events = append(dto.Events, eventFromDomain(0, event))
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.ErrDuplicateExternalReference
		}
		return nil, err
	}

	aggregate.MarkEventsCommitted()

	persisted, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(persisted.ID(), persisted)
	return persisted, nil
}

// Update saves an existing order to the database: the mutated lifecycle
// columns, item completion marks, and any pending audit events.
//
// The column list is explicit so cleared values (nil timestamps, false flags)
// still reach the database; Updates with a struct would skip them.
//
// A completion gets arbitrated at the order row: when the aggregate carries a
// pending completion event, the write requires the stored completed_at to
// still be empty, so racing completion calls produce exactly one completed
// row, one event, and one notification. The loser gets
// errs.ErrOrderAlreadyCompleted before any event is inserted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	completing := false
	for _, event := range aggregate.PendingEvents() {
		if event.Type() == order.EventOrderCompleted {
			completing = true
			break
		}
	}

	dto := fromDomain(aggregate)
	query := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID)
	if completing {
		query = query.Where("completed_at IS NULL")
	}

	result := query.Select(
		"status",
		"estimated_prep_time",
		"delay_reason",
		"cancelled_by_customer",
		"accepted_at",
		"ready_at",
		"rejected_at",
		"cancelled_at",
		"delayed_to",
		"completed_at",
		"updated_at",
	).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if !completing {
			return gorm.ErrRecordNotFound
		}

		// Missing row and lost completion race both land here; only the
		// latter finds the row when re-read.
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		return errs.ErrOrderAlreadyCompleted
	}

	for _, item := range aggregate.Items() {
		if item.CompletedAt() == nil {
			continue
		}

		// completed_at IS NULL keeps the original completion time on repeats
		err := r.db.WithContext(ctx).Model(&ItemDTO{}).
			Where("id = ? AND completed_at IS NULL", item.ID()).
			Update("completed_at", item.CompletedAt()).Error
		if err != nil {
			return err
		}
	}

	if pending := aggregate.PendingEvents(); len(pending) > 0 {
		eventDTOs := make([]EventDTO, 0, len(pending))
		for _, event := range pending {
			eventDTOs = append(eventDTOs, eventFromDomain(aggregate.ID(), event))
		}

		if err := r.db.WithContext(ctx).Create(&eventDTOs).Error; err != nil {
			return err
		}
	}

	aggregate.MarkEventsCommitted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its items and full event history.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.preloaded(ctx).First(&dto, "orders.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByExternalReference retrieves an order by its platform-assigned reference.
func (r *GormOrderRepository) GetByExternalReference(ctx context.Context, externalReference string) (*order.Order, error) {
	var dto OrderDTO
	err := r.preloaded(ctx).First(&dto, "external_reference = ?", externalReference).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("external_reference", externalReference)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByItemID retrieves the order owning the given item.
func (r *GormOrderRepository) GetByItemID(ctx context.Context, itemID int64) (*order.Order, error) {
	var item ItemDTO
	err := r.db.WithContext(ctx).First(&item, "id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", itemID)
		}
		return nil, err
	}

	return r.Get(ctx, item.OrderID)
}

// preloaded returns a query with items and events attached in stable order:
// items by ID, events oldest first.
func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id")
		}).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_events.created_at, order_events.id")
		})
}
