package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCustomerCheckoutQueryHandler retrieves a customer's checkout summary.
// Uses direct SQL for optimal read performance in the CQRS pattern; the
// totals are computed in the database instead of loading the aggregate.
type GetCustomerCheckoutQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerCheckoutQueryHandler creates a handler for checkout summary queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerCheckoutQueryHandler(db *gorm.DB) GetCustomerCheckoutQueryHandler {
	return GetCustomerCheckoutQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the customer
// has no open checkout.
func (h GetCustomerCheckoutQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerCheckoutQuery,
) (GetCustomerCheckoutQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerCheckoutQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.email,
			c.shipping_required,
			c.payment_id <> '',
			COALESCE(c.shipping_method_name, ''),
			COALESCE(c.shipping_method_rate, 0),
			COALESCE(SUM(l.unit_price * l.quantity), 0)
		FROM checkouts c
		LEFT JOIN checkout_lines l ON l.checkout_id = c.id
		WHERE c.customer_id = ?
		GROUP BY c.id, c.email, c.shipping_required, c.payment_id,
			c.shipping_method_name, c.shipping_method_rate
	`, query.CustomerID().Bytes()).Row()

	var response GetCustomerCheckoutQueryResponse
	var id uuid.UUID
	var rate decimal.Decimal

	err := row.Scan(
		&id,
		&response.Email,
		&response.ShippingRequired,
		&response.HasPayment,
		&response.ShippingMethodName,
		&rate,
		&response.ItemsTotal,
	)
	if err != nil {
		return GetCustomerCheckoutQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"customerId", query.CustomerID().String(), err)
	}

	checkoutID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetCustomerCheckoutQueryResponse{}, err
	}
	response.ID = checkoutID
	response.Total = response.ItemsTotal.Add(rate)

	return response, nil
}
