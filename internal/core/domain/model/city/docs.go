// Package city models the endpoints of a shipment route.
//
// The package includes:
//   - Size: ordered classification Small < Medium < Large
//   - Weather: Good or Bad
//   - City: immutable value object bundling a name, a size and the weather
//     observed when the value was taken
//
// Weather changes over time. A City value is a snapshot, and the current weather
// lives in the city store (see ports.CityRepository). Callers update the store and
// read a fresh City before building each order.
package city
