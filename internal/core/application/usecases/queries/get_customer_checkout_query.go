// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetCustomerCheckoutQueryIsNotConstructed = errors.New(
		"GetCustomerCheckoutQuery must be created via NewGetCustomerCheckoutQuery constructor",
	)
)

// GetCustomerCheckoutQuery retrieves a customer's open checkout, if any.
// Returns a summary read model used by the storefront to render the checkout
// page without loading the full aggregate.
type GetCustomerCheckoutQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerCheckoutQuery creates a query for the given customer's checkout.
func NewGetCustomerCheckoutQuery(customerID kernel.UUID) (GetCustomerCheckoutQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerCheckoutQuery{}, err
	}

	return GetCustomerCheckoutQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerCheckoutQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerCheckoutQueryIsNotConstructed)
}

// CustomerID returns the customer whose checkout is requested.
func (q GetCustomerCheckoutQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerCheckoutQueryResponse is the checkout summary read model.
type GetCustomerCheckoutQueryResponse struct {
	ID                 kernel.UUID
	Email              string
	ShippingRequired   bool
	HasPayment         bool
	ShippingMethodName string
	ItemsTotal         decimal.Decimal
	Total              decimal.Decimal
}
