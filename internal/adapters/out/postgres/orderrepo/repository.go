package orderrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database, including its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database. Fulfillments and
// fulfillment lines can be deleted by domain operations, so after writing
// the aggregate's current state the rows it no longer contains are pruned.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.pruneRemoved(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its lines and fulfillments.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Fulfillments").
		Preload("Fulfillments.Lines").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// pruneRemoved deletes fulfillment and fulfillment line rows that the
// aggregate no longer contains. Save only upserts, it never removes rows, so
// deletions made by DeleteFulfillment and DeleteFulfillmentLines are applied
// here.
func (r *GormOrderRepository) pruneRemoved(ctx context.Context, dto OrderDTO) error {
	keptFulfillments := make([]uuid.UUID, 0, len(dto.Fulfillments))
	keptLines := make([]uuid.UUID, 0)
	for _, fulfillment := range dto.Fulfillments {
		keptFulfillments = append(keptFulfillments, fulfillment.ID)
		for _, line := range fulfillment.Lines {
			keptLines = append(keptLines, line.ID)
		}
	}

	lineQuery := r.db.WithContext(ctx).
		Where("fulfillment_id IN (SELECT id FROM order_fulfillments WHERE order_id = ?)", dto.ID)
	if len(keptLines) > 0 {
		lineQuery = lineQuery.Where("id NOT IN ?", keptLines)
	}
	if err := lineQuery.Delete(&FulfillmentLineDTO{}).Error; err != nil {
		return err
	}

	fulfillmentQuery := r.db.WithContext(ctx).Where("order_id = ?", dto.ID)
	if len(keptFulfillments) > 0 {
		fulfillmentQuery = fulfillmentQuery.Where("id NOT IN ?", keptFulfillments)
	}
	if err := fulfillmentQuery.Delete(&FulfillmentDTO{}).Error; err != nil {
		return err
	}

	return nil
}
