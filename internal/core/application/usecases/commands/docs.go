// Package commands contains the state-changing use cases of the dispatcher:
// registering cities, updating their weather and processing orders.
package commands
