// Package customerrepo provides read-only access to the customer tables
// shared with the storefront: user accounts and saved address book entries.
package customerrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO represents the user account rows. Only existence matters to the
// checkout engine; account data itself is owned by the auth service.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for user rows.
func (UserDTO) TableName() string {
	return "users"
}

// AddressDTO represents the saved address book rows.
type AddressDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName    string    `gorm:"type:varchar(255)"`
	Line1       string    `gorm:"type:varchar(255);not null"`
	Line2       string    `gorm:"type:varchar(255)"`
	City        string    `gorm:"type:varchar(255);not null"`
	PostalCode  string    `gorm:"type:varchar(32);not null"`
	CountryCode string    `gorm:"type:varchar(2);not null"`
}

// TableName specifies the database table name for saved address rows.
func (AddressDTO) TableName() string {
	return "customer_addresses"
}

// GormCustomerRepository implements UserRepository and
// CustomerAddressRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Exists reports whether a user account with the given id is registered.
func (r *GormCustomerRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Get retrieves a saved address book entry by its id.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerAddressId", id.String())
		}
		return nil, err
	}

	return addressToDomain(dto)
}

// addressToDomain converts a saved address row to its domain read model.
func addressToDomain(dto AddressDTO) (*customer.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	value, err := kernel.NewAddress(
		dto.FullName, dto.Line1, dto.Line2, dto.City, dto.PostalCode, dto.CountryCode)
	if err != nil {
		return nil, err
	}

	return customer.RestoreAddress(id, customerID, value)
}
