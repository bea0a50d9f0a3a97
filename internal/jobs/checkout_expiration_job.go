package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CheckoutExpirationJob manages the scheduled cleanup of abandoned checkouts.
// Runs every ten minutes to discard checkouts older than the configured age.
type CheckoutExpirationJob struct {
	handler commands.ExpireCheckoutsCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCheckoutExpirationJob creates a new job for expiring abandoned checkouts.
// Checkouts untouched for longer than maxAge are deleted and their payment
// intents voided.
func NewCheckoutExpirationJob(
	handler commands.ExpireCheckoutsCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *CheckoutExpirationJob {
	return &CheckoutExpirationJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "checkout_expiration_job"),
	}
}

// Start begins the checkout expiration job to run every ten minutes.
func (j *CheckoutExpirationJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireCheckoutsCommand(j.maxAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Checkout expiration job misconfigured", "error", cmdErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Checkout expiration job failed", "error", handleErr)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired abandoned checkouts", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Checkout expiration job started (running every ten minutes)")
	return nil
}

// Stop stops the checkout expiration job.
func (j *CheckoutExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Checkout expiration job stopped")
}
