// Package ports defines the contracts between the application layer and the
// infrastructure adapters.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/city"
)

// CityRepository is the store of known cities and their current weather.
//
// A city.City is an immutable snapshot. The repository holds the latest one;
// callers update the weather here before building an order so eligibility sees
// the weather at order time.
type CityRepository interface {
	// Add stores a new city. Adding a name twice fails with errs.ErrValueIsInvalid.
	Add(ctx context.Context, c city.City) error

	// Get returns the current snapshot of the named city.
	// Returns errs.ErrObjectNotFound for unknown names.
	Get(ctx context.Context, name string) (city.City, error)

	// UpdateWeather replaces the weather of the named city and returns the new snapshot.
	// Returns errs.ErrObjectNotFound for unknown names.
	UpdateWeather(ctx context.Context, name string, weather city.Weather) (city.City, error)

	// GetAll returns every city sorted by name.
	GetAll(ctx context.Context) ([]city.City, error)
}
