package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/store"
)

// VariantRepository provides read access to catalog product variants.
// Catalog CRUD is managed outside this service.
type VariantRepository interface {
	// GetAll retrieves the variants for all given ids. When any id cannot be
	// resolved it returns an ObjectsNotFoundError listing every missing id.
	GetAll(ctx context.Context, ids []kernel.UUID) ([]*product.Variant, error)
}

// ConfigurationRepository provides access to the active store configuration.
type ConfigurationRepository interface {
	// GetActive retrieves the active configuration. Its absence is an error:
	// checkouts cannot be priced without a currency.
	GetActive(ctx context.Context) (*store.Configuration, error)
}
