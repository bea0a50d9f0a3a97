// Package order implements the order aggregate: the immutable-shape record a
// completed checkout produces, its status state machine, and the fulfillment
// bookkeeping that tracks partial shipment over time.
//
// The aggregate is the consistency boundary for all quantity accounting.
// Every batch operation on fulfillment lines is validated against a single
// consistent snapshot of the affected order lines before any mutation is
// applied, so a failed batch leaves the aggregate untouched.
package order
