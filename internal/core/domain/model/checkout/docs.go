// Package checkout implements the checkout aggregate: the mutable pre-order
// cart a customer fills with lines, addresses, a shipping selection and a
// payment intent. Completion converts it atomically into an order and deletes
// it; cancellation discards it.
package checkout
