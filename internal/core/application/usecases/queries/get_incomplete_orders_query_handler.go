package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetIncompleteOrdersQueryHandler retrieves all in-flight orders from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetIncompleteOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetIncompleteOrdersQueryHandler creates a handler for incomplete order queries.
// Requires a GORM database connection for query execution.
func NewGetIncompleteOrdersQueryHandler(db *gorm.DB) GetIncompleteOrdersQueryHandler {
	return GetIncompleteOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all incomplete orders.
// Returns orders whose status is neither Fulfilled nor Cancelled, oldest first.
func (h GetIncompleteOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetIncompleteOrdersQuery,
) ([]GetIncompleteOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetIncompleteOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.email,
			o.status,
			COUNT(l.id)
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.status NOT IN (?, ?)
		GROUP BY o.id, o.email, o.status
		ORDER BY o.id
	`, int(order.Fulfilled), int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetIncompleteOrdersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&response.Email,
			&status,
			&response.LineCount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = orderID
		response.Status = order.Status(status)

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
