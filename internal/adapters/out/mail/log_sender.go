// Package mail provides the outbound order notification sender.
package mail

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
)

// LogMailSender implements MailSender by writing notifications to the
// structured log. Stands in for a real mail provider in environments without
// one; delivery failures never block checkout completion either way.
type LogMailSender struct {
	logger *slog.Logger
}

// NewLogMailSender creates a mail sender backed by the given logger.
func NewLogMailSender(logger *slog.Logger) *LogMailSender {
	return &LogMailSender{logger: logger.With("component", "mail_sender")}
}

// SendOrderCreated notifies the customer that their order was placed.
func (s *LogMailSender) SendOrderCreated(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Order confirmation mail queued",
		"orderId", aggregate.ID().String(),
		"email", aggregate.Email(),
		"lines", len(aggregate.Lines()),
	)
	return nil
}
