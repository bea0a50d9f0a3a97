// Package catalogrepo provides read-only access to the catalog tables shared
// with the storefront: product variants and the store configuration. The
// checkout engine never writes these tables.
package catalogrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VariantDTO represents the product variant rows consumed by the checkout
// engine. Published mirrors the owning product's published flag.
type VariantDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	MassGrams int             `gorm:"type:int;not null"`
	Physical  bool
	Published bool
}

// TableName specifies the database table name for variant rows.
func (VariantDTO) TableName() string {
	return "product_variants"
}

// ConfigurationDTO represents the store configuration rows. Exactly one row
// is active at a time.
type ConfigurationDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Currency string    `gorm:"type:varchar(3);not null"`
	MassUnit string    `gorm:"type:varchar(16)"`
	Active   bool      `gorm:"index"`
}

// TableName specifies the database table name for configuration rows.
func (ConfigurationDTO) TableName() string {
	return "store_configurations"
}

// variantToDomain converts a variant row to its domain read model.
func variantToDomain(dto VariantDTO) (*product.Variant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreVariant(
		id, productID, dto.Name, dto.Price, dto.MassGrams, dto.Physical, dto.Published)
}
