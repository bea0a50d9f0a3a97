package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	Created ──> Confirmed ──> Processing ──> PartiallyFulfilled ──> Fulfilled
//	                │              │                  │                  │
//	                └──────────────┴────────┬─────────┴──────────────────┘
//	                                        v
//	                                    Cancelled
//
// Cancelled is reachable from every non-terminal state. The two explicit
// reversals, undoFulfill and reinstate, restore the previously recorded
// status; every other transition is one-directional.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of an order produced by checkout
	// completion. The order awaits staff confirmation.
	Created

	// Confirmed indicates the order has been confirmed and fulfillment
	// operations are now permitted.
	Confirmed

	// Processing indicates at least one fulfillment has been opened for
	// the order.
	Processing

	// PartiallyFulfilled indicates at least one fulfillment has been
	// completed (shipped) while the order as a whole is not yet fulfilled.
	PartiallyFulfilled

	// Fulfilled indicates every shipping-required line has been fully
	// fulfilled and the order was explicitly marked fulfilled.
	Fulfilled

	// Cancelled indicates the order was cancelled. The pre-cancellation
	// status is kept so the order can be reinstated.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		Created:            "Created",
		Confirmed:          "Confirmed",
		Processing:         "Processing",
		PartiallyFulfilled: "PartiallyFulfilled",
		Fulfilled:          "Fulfilled",
		Cancelled:          "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:            "Created",
		Confirmed:          "Confirmed",
		Processing:         "Processing",
		PartiallyFulfilled: "PartiallyFulfilled",
		Fulfilled:          "Fulfilled",
		Cancelled:          "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsProcessable reports whether fulfillment operations are permitted on an
// order in this status. Processable statuses are Confirmed, Processing and
// PartiallyFulfilled.
func (s Status) IsProcessable() bool {
	return s == Confirmed || s == Processing || s == PartiallyFulfilled
}
