// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the store back office. It
// implements business logic that doesn't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - MethodSelector: A domain service matching shipments to applicable shipping methods
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
