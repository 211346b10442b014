// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the ride hailing system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PricingService: A domain service for estimating fares and calculating
//     final fares with surge pricing
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
