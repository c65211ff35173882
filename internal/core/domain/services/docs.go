// Package services provides the pure domain services of order placement.
//
// The package includes:
//   - DistanceProvider: estimates the travel distance between two addresses
//   - RandomDistanceProvider: the simulated provider used until a routing service exists
//   - PricingCalculator: derives order charges from a distance and the declared item value
//
// Nothing in this package performs I/O; randomness and time are injected.
package services
