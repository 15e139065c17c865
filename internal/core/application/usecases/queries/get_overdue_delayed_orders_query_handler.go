package queries

import (
	"context"
	"time"

	"pos/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOverdueDelayedOrdersQueryHandler retrieves delayed orders whose promised
// readiness time has passed without the order reaching a terminal state.
type GetOverdueDelayedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueDelayedOrdersQueryHandler creates a handler for overdue order
// queries. Requires a GORM database connection for query execution.
func NewGetOverdueDelayedOrdersQueryHandler(db *gorm.DB) GetOverdueDelayedOrdersQueryHandler {
	return GetOverdueDelayedOrdersQueryHandler{db: db}
}

// Handle executes the query against the current clock.
// Returns delayed orders ordered by how long they have been overdue, most
// overdue first.
func (h GetOverdueDelayedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueDelayedOrdersQuery,
) ([]GetOverdueDelayedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOverdueDelayedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			external_reference,
			delayed_to
		FROM orders
		WHERE status = ?
		  AND delayed_to < ?
		ORDER BY delayed_to
	`, order.Delayed.String(), time.Now().UTC()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOverdueDelayedOrdersQueryResponse

		err = rows.Scan(
			&orderResp.ID,
			&orderResp.ExternalReference,
			&orderResp.DelayedTo,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
