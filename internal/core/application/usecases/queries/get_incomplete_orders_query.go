package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetIncompleteOrdersQueryIsNotConstructed = errors.New(
		"GetIncompleteOrdersQuery must be created via NewGetIncompleteOrdersQuery constructor",
	)
)

// GetIncompleteOrdersQuery retrieves all orders still in flight: everything
// not yet Fulfilled and not Cancelled. Used by back office dashboards to list
// the work queue.
type GetIncompleteOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetIncompleteOrdersQuery creates a query to retrieve all incomplete orders.
// This is a parameterless query.
func NewGetIncompleteOrdersQuery() GetIncompleteOrdersQuery {
	return GetIncompleteOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetIncompleteOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetIncompleteOrdersQueryIsNotConstructed)
}

// GetIncompleteOrdersQueryResponse is the in-flight order read model.
type GetIncompleteOrdersQueryResponse struct {
	ID        kernel.UUID
	Email     string
	Status    order.Status
	LineCount int
}
