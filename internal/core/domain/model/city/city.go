package city

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned for an empty or blank city name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCityIsNotConstructed is returned when using a zero-value City.
	ErrCityIsNotConstructed = errors.New("City must be created via NewCity constructor")
)

// City is a route endpoint. Identity is by value; two cities with the same name,
// size and weather are interchangeable.
type City struct { //nolint:recvcheck //using for validation
	name    string
	size    Size
	weather Weather
	guard   guard.ConstructorGuard
}

// NewCity validates and builds a City.
//
// Example:
//
//	moscow, err := city.NewCity("Moscow", city.Large, city.Bad)
func NewCity(name string, size Size, weather Weather) (City, error) {
	c := City{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setSize(size),
		c.setWeather(weather),
	); err != nil {
		return City{}, err
	}

	return c, nil
}

// Validate returns ErrCityIsNotConstructed for the zero value.
func (c City) Validate() error {
	return c.guard.Validate(ErrCityIsNotConstructed)
}

// Name returns the city name.
func (c City) Name() string {
	return c.name
}

// Size returns the size classification.
func (c City) Size() Size {
	return c.size
}

// Weather returns the weather captured in this snapshot.
func (c City) Weather() Weather {
	return c.weather
}

// HasBadWeather reports whether the snapshot shows Bad weather.
func (c City) HasBadWeather() bool {
	return c.weather == Bad
}

// WithWeather returns a copy of c with the given weather.
func (c City) WithWeather(weather Weather) (City, error) {
	if err := c.Validate(); err != nil {
		return City{}, err
	}
	if err := c.setWeather(weather); err != nil {
		return City{}, err
	}
	return c, nil
}

func (c City) String() string {
	return c.name
}

func (c *City) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *City) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	c.size = size
	return nil
}

func (c *City) setWeather(weather Weather) error {
	if err := weather.Validate(); err != nil {
		return err
	}
	c.weather = weather
	return nil
}
