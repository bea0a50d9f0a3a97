package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"
)

// ShippingRepository provides read access to shipping zones and their methods.
type ShippingRepository interface {
	// GetZoneContainingMethod retrieves the zone that offers the given shipping
	// method, with all of the zone's methods loaded.
	GetZoneContainingMethod(ctx context.Context, methodID kernel.UUID) (*shipping.Zone, error)
}
