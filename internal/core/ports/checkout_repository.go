package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
)

// CheckoutRepository defines the persistence contract for checkout aggregates.
type CheckoutRepository interface {
	// Add persists a new checkout aggregate to storage.
	Add(ctx context.Context, aggregate *checkout.Checkout) error

	// Update persists changes to an existing checkout aggregate.
	Update(ctx context.Context, aggregate *checkout.Checkout) error

	// Delete removes a checkout aggregate and its lines.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a checkout aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*checkout.Checkout, error)

	// GetByCustomer retrieves the checkout belonging to a customer, if any.
	// A customer has at most one checkout at a time.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*checkout.Checkout, error)

	// GetAllCreatedBefore retrieves checkouts created before the cutoff.
	// Used by the expiration job to discard abandoned checkouts.
	GetAllCreatedBefore(ctx context.Context, cutoff time.Time) ([]*checkout.Checkout, error)
}
