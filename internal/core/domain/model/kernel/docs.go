// Package kernel holds the shared value objects of the dispatcher domain.
//
// The package includes:
//   - UUID: identity of shipment orders, wrapping github.com/google/uuid
//
// Values are immutable. Zero values are invalid and fail Validate.
package kernel
