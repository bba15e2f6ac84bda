// Package order provides the shipment Order and the client's optional wishes.
//
// The package includes:
//   - Order: immutable request to carry a weight from an origin to a destination city
//   - ClientWishes: optional minimum speed and optional maximum cost
//
// Key business rules:
//   - Orders must have a valid identifier, two valid cities and a positive weight
//   - Each wish is optional; a missing wish never excludes a transport
//   - Present wishes must be positive
package order
