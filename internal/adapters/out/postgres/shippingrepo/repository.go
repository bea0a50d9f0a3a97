// Package shippingrepo provides read-only access to the shipping zone tables
// shared with the back office. Zone and method CRUD is managed elsewhere; the
// checkout engine only reads zones for method selection.
package shippingrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ZoneDTO represents the shipping zone rows.
type ZoneDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`

	Countries []ZoneCountryDTO `gorm:"foreignKey:ZoneID;constraint:OnDelete:CASCADE"`
	Methods   []MethodDTO      `gorm:"foreignKey:ZoneID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for zone rows.
func (ZoneDTO) TableName() string {
	return "shipping_zones"
}

// ZoneCountryDTO represents the countries served by a zone.
type ZoneCountryDTO struct {
	ZoneID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	CountryCode string    `gorm:"type:varchar(2);primaryKey"`
}

// TableName specifies the database table name for zone country rows.
func (ZoneCountryDTO) TableName() string {
	return "shipping_zone_countries"
}

// MethodDTO represents the shipping method rows. Kind selects whether the
// [MinValue, MaxValue] range is matched against shipment mass or price.
type MethodDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ZoneID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name     string          `gorm:"type:varchar(255);not null"`
	Kind     int             `gorm:"type:int;not null"`
	MinValue decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	MaxValue decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Rate     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Position int             `gorm:"type:int;not null;default:0"`
}

// TableName specifies the database table name for method rows.
func (MethodDTO) TableName() string {
	return "shipping_methods"
}

// GormShippingRepository implements ShippingRepository using GORM.
type GormShippingRepository struct {
	db *gorm.DB
}

// NewGormShippingRepository creates a new GORM shipping repository.
func NewGormShippingRepository(db *gorm.DB) *GormShippingRepository {
	return &GormShippingRepository{db: db}
}

// GetZoneContainingMethod retrieves the zone offering the given method, with
// countries and methods loaded. Methods are ordered by their configured
// position, which is the order the selector scans them in.
func (r *GormShippingRepository) GetZoneContainingMethod(
	ctx context.Context,
	methodID kernel.UUID,
) (*shipping.Zone, error) {
	if err := methodID.Validate(); err != nil {
		return nil, err
	}

	var method MethodDTO
	if err := r.db.WithContext(ctx).First(&method, "id = ?", methodID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shippingMethodId", methodID.String())
		}
		return nil, err
	}

	var dto ZoneDTO
	err := r.db.WithContext(ctx).
		Preload("Countries").
		Preload("Methods", func(db *gorm.DB) *gorm.DB {
			return db.Order("shipping_methods.position")
		}).
		First(&dto, "id = ?", method.ZoneID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shippingZoneId", method.ZoneID.String())
		}
		return nil, err
	}

	return zoneToDomain(dto)
}

// zoneToDomain converts a zone row with its associations to the domain entity.
func zoneToDomain(dto ZoneDTO) (*shipping.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	countries := make([]string, 0, len(dto.Countries))
	for _, country := range dto.Countries {
		countries = append(countries, country.CountryCode)
	}

	methods := make([]*shipping.Method, 0, len(dto.Methods))
	for _, methodDto := range dto.Methods {
		method, methodErr := methodToDomain(methodDto)
		if methodErr != nil {
			return nil, methodErr
		}
		methods = append(methods, method)
	}

	return shipping.RestoreZone(id, dto.Name, countries, methods)
}

// methodToDomain converts a method row to the domain entity.
func methodToDomain(dto MethodDTO) (*shipping.Method, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return shipping.RestoreMethod(
		id, dto.Name, shipping.MethodKind(dto.Kind), dto.MinValue, dto.MaxValue, dto.Rate)
}
