// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/shipping"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lines and fulfillments travel with the order row so the aggregate is always
// loaded and saved whole.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Email          string    `gorm:"type:varchar(255);not null"`
	Status         int       `gorm:"type:int;not null;index"`
	PreviousStatus int       `gorm:"type:int;not null"`

	// billing_line1 is always set; an empty shipping_line1 marks a
	// digital-only order without a shipping address.
	BillingAddress  AddressDTO `gorm:"embedded;embeddedPrefix:billing_"`
	ShippingAddress AddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`

	ShippingMethodID   *uuid.UUID          `gorm:"type:uuid"`
	ShippingMethodName *string             `gorm:"type:varchar(255)"`
	ShippingMethodRate decimal.NullDecimal `gorm:"type:numeric(12,2)"`

	PaymentID string `gorm:"type:varchar(255);not null"`

	Lines        []LineDTO        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Fulfillments []FulfillmentDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded postal address columns.
type AddressDTO struct {
	FullName    string `gorm:"type:varchar(255)"`
	Line1       string `gorm:"type:varchar(255)"`
	Line2       string `gorm:"type:varchar(255)"`
	City        string `gorm:"type:varchar(255)"`
	PostalCode  string `gorm:"type:varchar(32)"`
	CountryCode string `gorm:"type:varchar(2)"`
}

// LineDTO represents the database structure for persisting order lines with
// their quantity ledgers.
type LineDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	VariantID         uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity          int             `gorm:"type:int;not null"`
	FulfilledQuantity int             `gorm:"type:int;not null"`
	UnitPrice         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ShippingRequired  bool
}

// TableName specifies the database table name for order line entities.
func (LineDTO) TableName() string {
	return "order_lines"
}

// FulfillmentDTO represents the database structure for persisting fulfillments.
type FulfillmentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Completed      bool
	TrackingNumber string `gorm:"type:varchar(255)"`

	Lines []FulfillmentLineDTO `gorm:"foreignKey:FulfillmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for fulfillment entities.
func (FulfillmentDTO) TableName() string {
	return "order_fulfillments"
}

// FulfillmentLineDTO represents the database structure for persisting
// fulfillment lines, the assignments between fulfillments and order lines.
type FulfillmentLineDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FulfillmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderLineID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity      int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for fulfillment line entities.
func (FulfillmentLineDTO) TableName() string {
	return "order_fulfillment_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			ID:                line.ID().Bytes(),
			OrderID:           orderID,
			VariantID:         line.VariantID().Bytes(),
			Quantity:          line.Quantity(),
			FulfilledQuantity: line.FulfilledQuantity(),
			UnitPrice:         line.UnitPrice(),
			ShippingRequired:  line.ShippingRequired(),
		})
	}

	fulfillments := make([]FulfillmentDTO, 0, len(aggregate.Fulfillments()))
	for _, fulfillment := range aggregate.Fulfillments() {
		fulfillmentID := fulfillment.ID().Bytes()

		fulfillmentLines := make([]FulfillmentLineDTO, 0, len(fulfillment.Lines()))
		for _, line := range fulfillment.Lines() {
			fulfillmentLines = append(fulfillmentLines, FulfillmentLineDTO{
				ID:            line.ID().Bytes(),
				FulfillmentID: fulfillmentID,
				OrderLineID:   line.OrderLineID().Bytes(),
				Quantity:      line.Quantity(),
			})
		}

		fulfillments = append(fulfillments, FulfillmentDTO{
			ID:             fulfillmentID,
			OrderID:        orderID,
			Completed:      fulfillment.IsCompleted(),
			TrackingNumber: fulfillment.TrackingNumber(),
			Lines:          fulfillmentLines,
		})
	}

	billing := aggregate.BillingAddress()
	dto := OrderDTO{
		ID:             orderID,
		CustomerID:     aggregate.CustomerID().Bytes(),
		Email:          aggregate.Email(),
		Status:         int(aggregate.Status()),
		PreviousStatus: int(aggregate.PreviousStatus()),
		BillingAddress: AddressDTO{
			FullName:    billing.FullName(),
			Line1:       billing.Line1(),
			Line2:       billing.Line2(),
			City:        billing.City(),
			PostalCode:  billing.PostalCode(),
			CountryCode: billing.CountryCode(),
		},
		PaymentID:    aggregate.PaymentID(),
		Lines:        lines,
		Fulfillments: fulfillments,
	}

	if shippingAddress := aggregate.ShippingAddress(); shippingAddress != nil {
		dto.ShippingAddress = AddressDTO{
			FullName:    shippingAddress.FullName(),
			Line1:       shippingAddress.Line1(),
			Line2:       shippingAddress.Line2(),
			City:        shippingAddress.City(),
			PostalCode:  shippingAddress.PostalCode(),
			CountryCode: shippingAddress.CountryCode(),
		}
	}

	if method := aggregate.ShippingMethod(); method != nil {
		methodID := method.MethodID().Bytes()
		name := method.Name()
		dto.ShippingMethodID = &methodID
		dto.ShippingMethodName = &name
		dto.ShippingMethodRate = decimal.NewNullDecimal(method.Rate())
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines, fulfillments and the
// status history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	billingAddress, err := kernel.NewAddress(
		dto.BillingAddress.FullName,
		dto.BillingAddress.Line1,
		dto.BillingAddress.Line2,
		dto.BillingAddress.City,
		dto.BillingAddress.PostalCode,
		dto.BillingAddress.CountryCode,
	)
	if err != nil {
		return nil, err
	}

	var shippingAddress *kernel.Address
	if dto.ShippingAddress.Line1 != "" {
		address, addrErr := kernel.NewAddress(
			dto.ShippingAddress.FullName,
			dto.ShippingAddress.Line1,
			dto.ShippingAddress.Line2,
			dto.ShippingAddress.City,
			dto.ShippingAddress.PostalCode,
			dto.ShippingAddress.CountryCode,
		)
		if addrErr != nil {
			return nil, addrErr
		}
		shippingAddress = &address
	}

	var shippingMethod *shipping.MethodSnapshot
	if dto.ShippingMethodID != nil {
		methodID, methodErr := kernel.UUIDFromBytes((*dto.ShippingMethodID)[:])
		if methodErr != nil {
			return nil, methodErr
		}

		name := ""
		if dto.ShippingMethodName != nil {
			name = *dto.ShippingMethodName
		}

		snapshot, methodErr := shipping.NewMethodSnapshot(methodID, name, dto.ShippingMethodRate.Decimal)
		if methodErr != nil {
			return nil, methodErr
		}
		shippingMethod = &snapshot
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	fulfillments := make([]*order.Fulfillment, 0, len(dto.Fulfillments))
	for _, fulfillmentDto := range dto.Fulfillments {
		fulfillment, fulfillmentErr := fulfillmentToDomain(fulfillmentDto)
		if fulfillmentErr != nil {
			return nil, fulfillmentErr
		}
		fulfillments = append(fulfillments, fulfillment)
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.Email,
		order.Status(dto.Status),
		order.Status(dto.PreviousStatus),
		billingAddress,
		shippingAddress,
		shippingMethod,
		dto.PaymentID,
		lines,
		fulfillments,
	)
}

// lineToDomain converts an order line DTO to its domain entity.
func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	variantID, err := kernel.UUIDFromBytes(dto.VariantID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(
		id, orderID, variantID, dto.Quantity, dto.FulfilledQuantity, dto.UnitPrice, dto.ShippingRequired)
}

// fulfillmentToDomain converts a fulfillment DTO with its lines to the
// domain entity.
func fulfillmentToDomain(dto FulfillmentDTO) (*order.Fulfillment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*order.FulfillmentLine, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		lineID, lineErr := kernel.UUIDFromBytes(lineDto.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		fulfillmentID, lineErr := kernel.UUIDFromBytes(lineDto.FulfillmentID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		orderLineID, lineErr := kernel.UUIDFromBytes(lineDto.OrderLineID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreFulfillmentLine(lineID, fulfillmentID, orderLineID, lineDto.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreFulfillment(id, orderID, dto.Completed, dto.TrackingNumber, lines)
}
