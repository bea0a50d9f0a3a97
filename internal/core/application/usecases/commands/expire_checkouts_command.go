package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrExpireCheckoutsCommandIsNotConstructed = errors.New(
	"ExpireCheckoutsCommand must be created via NewExpireCheckoutsCommand constructor",
)

// ExpireCheckoutsCommand represents a request to discard all checkouts older
// than the given age. Issued periodically by the expiration job.
type ExpireCheckoutsCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewExpireCheckoutsCommand creates a command expiring checkouts older than maxAge.
func NewExpireCheckoutsCommand(maxAge time.Duration) (ExpireCheckoutsCommand, error) {
	expireCommand := ExpireCheckoutsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := expireCommand.setMaxAge(maxAge); err != nil {
		return ExpireCheckoutsCommand{}, err
	}

	return expireCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireCheckoutsCommand) Validate() error {
	return c.guard.Validate(ErrExpireCheckoutsCommandIsNotConstructed)
}

// MaxAge returns the age beyond which checkouts are discarded.
func (c ExpireCheckoutsCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *ExpireCheckoutsCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return errs.NewValueIsInvalidError("maxAge")
	}

	c.maxAge = maxAge
	return nil
}
