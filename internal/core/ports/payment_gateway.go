package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentGateway abstracts the external payment provider. Checkout totals are
// authorized as payment intents which are captured on completion or cancelled
// when the checkout is discarded.
type PaymentGateway interface {
	// RequestIntent creates a payment intent for the given amount and returns
	// the provider's intent identifier. The idempotency key guards against
	// duplicate intents for the same checkout.
	RequestIntent(ctx context.Context, amount decimal.Decimal, currency string, idempotencyKey string) (string, error)

	// UpdateIntent changes the amount of an existing payment intent. Called
	// when the checkout total changes after the intent was requested.
	UpdateIntent(ctx context.Context, paymentID string, amount decimal.Decimal) error

	// Capture settles a previously requested payment intent.
	Capture(ctx context.Context, paymentID string) error

	// Cancel voids a previously requested payment intent.
	Cancel(ctx context.Context, paymentID string) error
}
