package ports

import (
	"context"

	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/kernel"
)

// UserRepository provides read access to the user accounts registered with the
// store. Account management lives outside this service.
type UserRepository interface {
	// Exists reports whether a user account with the given id is registered.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}

// CustomerAddressRepository provides read access to customer address books.
type CustomerAddressRepository interface {
	// Get retrieves a saved address by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Address, error)
}
