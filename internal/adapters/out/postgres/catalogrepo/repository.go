package catalogrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/store"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogRepository implements VariantRepository and
// ConfigurationRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetAll retrieves the variants for all given ids. When any id cannot be
// resolved the error lists every missing id, so the caller can report the
// whole batch at once.
func (r *GormCatalogRepository) GetAll(ctx context.Context, ids []kernel.UUID) ([]*product.Variant, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("ids")
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []VariantDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]bool, len(dtos))
	variants := make([]*product.Variant, 0, len(dtos))
	for _, dto := range dtos {
		variant, err := variantToDomain(dto)
		if err != nil {
			return nil, err
		}
		found[dto.ID] = true
		variants = append(variants, variant)
	}

	missing := make([]string, 0)
	for i, id := range raw {
		if !found[id] {
			missing = append(missing, ids[i].String())
		}
	}
	if len(missing) > 0 {
		return nil, errs.NewObjectsNotFoundError("variantId", missing)
	}

	return variants, nil
}

// GetActive retrieves the active store configuration.
func (r *GormCatalogRepository) GetActive(ctx context.Context) (*store.Configuration, error) {
	var dto ConfigurationDTO
	if err := r.db.WithContext(ctx).First(&dto, "active = ?", true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("configuration", "active")
		}
		return nil, err
	}

	return store.RestoreConfiguration(dto.Currency, dto.MassUnit)
}
