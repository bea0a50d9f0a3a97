package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// MailSender delivers transactional mail to customers.
type MailSender interface {
	// SendOrderCreated notifies the customer that their order was placed.
	SendOrderCreated(ctx context.Context, aggregate *order.Order) error
}
