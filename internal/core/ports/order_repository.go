package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are loaded and saved whole: lines and fulfillments travel with the
// aggregate root so the quantity ledgers are always read from a consistent
// snapshot.
type OrderRepository interface {
	// Add persists a new order aggregate, including its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing its
	// fulfillments and line ledgers with the aggregate's current state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines and fulfillments.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
