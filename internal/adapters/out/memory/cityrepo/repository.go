// Package cityrepo keeps the known cities and their current weather in memory.
package cityrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"logistics/internal/core/domain/model/city"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var _ ports.CityRepository = (*MemoryCityRepository)(nil)

// MemoryCityRepository implements ports.CityRepository on a map keyed by city name.
type MemoryCityRepository struct {
	mu     sync.RWMutex
	cities map[string]city.City
}

// NewMemoryCityRepository creates an empty store.
func NewMemoryCityRepository() *MemoryCityRepository {
	return &MemoryCityRepository{cities: map[string]city.City{}}
}

// Add stores a new city.
func (r *MemoryCityRepository) Add(ctx context.Context, c city.City) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cities[c.Name()]; ok {
		return errs.NewValueIsInvalidErrorWithCause("city", fmt.Errorf("%q already exists", c.Name()))
	}
	r.cities[c.Name()] = c
	return nil
}

// Get returns the current snapshot of the named city.
func (r *MemoryCityRepository) Get(ctx context.Context, name string) (city.City, error) {
	if err := ctx.Err(); err != nil {
		return city.City{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.cities[name]
	if !ok {
		return city.City{}, errs.NewObjectNotFoundError("city", name)
	}
	return c, nil
}

// UpdateWeather swaps the stored snapshot for one with the new weather.
func (r *MemoryCityRepository) UpdateWeather(ctx context.Context, name string, weather city.Weather) (city.City, error) {
	if err := ctx.Err(); err != nil {
		return city.City{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.cities[name]
	if !ok {
		return city.City{}, errs.NewObjectNotFoundError("city", name)
	}

	updated, err := c.WithWeather(weather)
	if err != nil {
		return city.City{}, err
	}
	r.cities[name] = updated
	return updated, nil
}

// GetAll returns every city sorted by name.
func (r *MemoryCityRepository) GetAll(ctx context.Context) ([]city.City, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]city.City, 0, len(r.cities))
	for _, c := range r.cities {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}
