// Package checkoutrepo provides data transfer objects and mapping functions for checkout persistence.
// This package implements the repository pattern for the checkout domain aggregate, handling
// the conversion between domain entities and database representations.
package checkoutrepo

import (
	"time"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutDTO represents the database structure for persisting checkout aggregates.
// The customer id carries a unique index enforcing the one-checkout-per-customer
// rule at the storage level as well.
type CheckoutDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Email      string    `gorm:"type:varchar(255);not null"`
	IPAddress  string    `gorm:"type:varchar(45)"`

	// Address columns are flattened into the checkout row. Every constructed
	// address has a non-empty line1, so an empty billing_line1 or
	// shipping_line1 marks the address as absent.
	BillingAddress  AddressDTO `gorm:"embedded;embeddedPrefix:billing_"`
	ShippingAddress AddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`

	ShippingMethodID   *uuid.UUID          `gorm:"type:uuid"`
	ShippingMethodName *string             `gorm:"type:varchar(255)"`
	ShippingMethodRate decimal.NullDecimal `gorm:"type:numeric(12,2)"`

	PaymentID                string `gorm:"type:varchar(255);not null;default:''"`
	UseSingleAddress         bool
	SaveCustomerAddresses    bool
	SavePaymentMethodDefault bool
	ShippingRequired         bool
	CreatedAt                time.Time `gorm:"index"`

	Lines []LineDTO `gorm:"foreignKey:CheckoutID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for checkout entities.
func (CheckoutDTO) TableName() string {
	return "checkouts"
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

// LineDTO represents the database structure for persisting checkout lines.
type LineDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CheckoutID uuid.UUID       `gorm:"type:uuid;not null;index"`
	VariantID  uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity   int             `gorm:"type:int;not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	MassGrams  int             `gorm:"type:int;not null"`
	Physical   bool
}

// TableName specifies the database table name for checkout line entities.
func (LineDTO) TableName() string {
	return "checkout_lines"
}

// addressFromDomain flattens an optional address into its column set.
func addressFromDomain(address *kernel.Address) AddressDTO {
	if address == nil {
		return AddressDTO{}
	}
	return AddressDTO{
		FullName:    address.FullName(),
		Line1:       address.Line1(),
		Line2:       address.Line2(),
		City:        address.City(),
		PostalCode:  address.PostalCode(),
		CountryCode: address.CountryCode(),
	}
}

// addressToDomain reconstructs an optional address from its column set.
func addressToDomain(dto AddressDTO) (*kernel.Address, error) {
	if dto.Line1 == "" {
		return nil, nil
	}
	address, err := kernel.NewAddress(
		dto.FullName, dto.Line1, dto.Line2, dto.City, dto.PostalCode, dto.CountryCode)
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// fromDomain converts a checkout domain aggregate to its database representation.
func fromDomain(aggregate *checkout.Checkout) CheckoutDTO {
	checkoutID := aggregate.ID().Bytes()

	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			ID:         line.ID().Bytes(),
			CheckoutID: checkoutID,
			VariantID:  line.VariantID().Bytes(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice(),
			MassGrams:  line.MassGrams(),
			Physical:   line.IsPhysical(),
		})
	}

	dto := CheckoutDTO{
		ID:                       checkoutID,
		CustomerID:               aggregate.CustomerID().Bytes(),
		Email:                    aggregate.Email(),
		IPAddress:                aggregate.IPAddress(),
		BillingAddress:           addressFromDomain(aggregate.BillingAddress()),
		ShippingAddress:          addressFromDomain(aggregate.ShippingAddress()),
		PaymentID:                aggregate.PaymentID(),
		UseSingleAddress:         aggregate.UsesSingleAddress(),
		SaveCustomerAddresses:    aggregate.SaveCustomerAddresses(),
		SavePaymentMethodDefault: aggregate.SavePaymentMethodAsDefault(),
		ShippingRequired:         aggregate.ShippingRequired(),
		CreatedAt:                aggregate.CreatedAt(),
		Lines:                    lines,
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

// toDomain converts a database DTO to a checkout domain aggregate.
func toDomain(dto CheckoutDTO) (*checkout.Checkout, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*checkout.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	billingAddress, err := addressToDomain(dto.BillingAddress)
	if err != nil {
		return nil, err
	}
	shippingAddress, err := addressToDomain(dto.ShippingAddress)
	if err != nil {
		return nil, err
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

	return checkout.RestoreCheckout(
		id,
		customerID,
		dto.Email,
		dto.IPAddress,
		lines,
		billingAddress,
		shippingAddress,
		shippingMethod,
		dto.PaymentID,
		dto.UseSingleAddress,
		dto.SaveCustomerAddresses,
		dto.SavePaymentMethodDefault,
		dto.CreatedAt,
	)
}

// lineToDomain converts a checkout line DTO to its domain entity.
func lineToDomain(dto LineDTO) (*checkout.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	variantID, err := kernel.UUIDFromBytes(dto.VariantID[:])
	if err != nil {
		return nil, err
	}

	return checkout.RestoreLine(id, variantID, dto.Quantity, dto.UnitPrice, dto.MassGrams, dto.Physical)
}
