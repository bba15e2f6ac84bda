package commands

import (
	"errors"

	"logistics/internal/core/domain/model/city"
	"logistics/internal/pkg/guard"
)

var (
	ErrAddCityCommandIsNotConstructed = errors.New(
		"AddCityCommand must be created via NewAddCityCommand constructor",
	)
	ErrCityNameIsRequired = errors.New("city name is required")
)

// AddCityCommand registers a city with its size and current weather.
//
// Example:
//
//	cmd, err := NewAddCityCommand("Kazan", city.Medium, city.Good)
//	if err != nil {
//	    return fmt.Errorf("invalid city data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add city: %w", err)
//	}
type AddCityCommand struct { //nolint:recvcheck //using for validation
	name    string
	size    city.Size
	weather city.Weather

	guard guard.ConstructorGuard
}

// NewAddCityCommand validates the input and builds the command.
func NewAddCityCommand(name string, size city.Size, weather city.Weather) (AddCityCommand, error) {
	command := AddCityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setSize(size),
		command.setWeather(weather),
	); err != nil {
		return AddCityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCityCommand) Validate() error {
	return c.guard.Validate(ErrAddCityCommandIsNotConstructed)
}

// Name returns the city name.
func (c AddCityCommand) Name() string {
	return c.name
}

// Size returns the city size.
func (c AddCityCommand) Size() city.Size {
	return c.size
}

// Weather returns the initial weather.
func (c AddCityCommand) Weather() city.Weather {
	return c.weather
}

func (c *AddCityCommand) setName(name string) error {
	if name == "" {
		return ErrCityNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddCityCommand) setSize(size city.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}

func (c *AddCityCommand) setWeather(weather city.Weather) error {
	if err := weather.Validate(); err != nil {
		return err
	}

	c.weather = weather
	return nil
}
