package queries

import (
	"context"

	"pos/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves the active order list from the
// database. Cancelled and rejected orders are filtered out at the SQL level.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db)
//	query := NewGetActiveOrdersQuery()
//
//	activeOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active orders: %v", err)
//	    return err
//	}
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders.
// Results are sorted by creation time descending so the newest submissions
// appear first on the kitchen display.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			external_reference,
			restaurant_id,
			customer_name,
			status,
			delayed_to,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at DESC, id DESC
	`, order.Cancelled.String(), order.Rejected.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetActiveOrdersQueryResponse
		var status string

		err = rows.Scan(
			&orderResp.ID,
			&orderResp.ExternalReference,
			&orderResp.RestaurantID,
			&orderResp.CustomerName,
			&status,
			&orderResp.DelayedTo,
			&orderResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		orderResp.Status = orderStatus

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
