// Package services provides domain services that orchestrate business
// operations across multiple domain entities of the storefront. It implements
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - PricingCalculator: a domain service computing the priced quote for a
//     cart, including promo codes, delivery fee and tip
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
