package checkoutrepo

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCheckoutRepository implements CheckoutRepository using GORM.
type GormCheckoutRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCheckoutRepository creates a new GORM checkout repository.
func NewGormCheckoutRepository(db *gorm.DB, tracker aggregateTracker) *GormCheckoutRepository {
	return &GormCheckoutRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new checkout to the database.
func (r *GormCheckoutRepository) Add(ctx context.Context, aggregate *checkout.Checkout) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing checkout to the database. Lines are immutable
// after creation, so only the checkout row itself needs rewriting.
func (r *GormCheckoutRepository) Update(ctx context.Context, aggregate *checkout.Checkout) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&CheckoutDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("Lines", "id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a checkout and its lines.
func (r *GormCheckoutRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("checkout_id = ?", id.Bytes()).
		Delete(&LineDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CheckoutDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("checkoutId", id.String())
	}

	return nil
}

// Get retrieves a checkout by ID.
func (r *GormCheckoutRepository) Get(ctx context.Context, id kernel.UUID) (*checkout.Checkout, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CheckoutDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("checkoutId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCustomer retrieves the checkout belonging to a customer, if any.
func (r *GormCheckoutRepository) GetByCustomer(
	ctx context.Context,
	customerID kernel.UUID,
) (*checkout.Checkout, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto CheckoutDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&dto, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerId", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllCreatedBefore retrieves all checkouts created before the cutoff.
func (r *GormCheckoutRepository) GetAllCreatedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*checkout.Checkout, error) {
	var dtos []CheckoutDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Find(&dtos, "created_at < ?", cutoff).Error
	if err != nil {
		return nil, err
	}

	checkouts := make([]*checkout.Checkout, 0, len(dtos))
	for _, dto := range dtos {
		c, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		checkouts = append(checkouts, c)
	}

	return checkouts, nil
}
