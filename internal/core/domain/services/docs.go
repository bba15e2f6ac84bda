// Package services provides domain services that decide across several domain
// objects without belonging to any single one of them.
//
// The package includes:
//   - TransportSelector: picks the transport for an order from a fleet
//     (eligibility, then client preference, then lowest cost)
package services
