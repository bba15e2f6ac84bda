package commands

import (
	"errors"

	"logistics/internal/core/domain/model/city"
	"logistics/internal/pkg/guard"
)

var ErrUpdateWeatherCommandIsNotConstructed = errors.New(
	"UpdateWeatherCommand must be created via NewUpdateWeatherCommand constructor",
)

// UpdateWeatherCommand changes the current weather of a known city. Orders
// processed afterwards see the new weather.
type UpdateWeatherCommand struct { //nolint:recvcheck //using for validation
	cityName string
	weather  city.Weather

	guard guard.ConstructorGuard
}

// NewUpdateWeatherCommand validates the input and builds the command.
func NewUpdateWeatherCommand(cityName string, weather city.Weather) (UpdateWeatherCommand, error) {
	command := UpdateWeatherCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCityName(cityName),
		command.setWeather(weather),
	); err != nil {
		return UpdateWeatherCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateWeatherCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWeatherCommandIsNotConstructed)
}

// CityName returns the name of the city to update.
func (c UpdateWeatherCommand) CityName() string {
	return c.cityName
}

// Weather returns the new weather.
func (c UpdateWeatherCommand) Weather() city.Weather {
	return c.weather
}

func (c *UpdateWeatherCommand) setCityName(name string) error {
	if name == "" {
		return ErrCityNameIsRequired
	}

	c.cityName = name
	return nil
}

func (c *UpdateWeatherCommand) setWeather(weather city.Weather) error {
	if err := weather.Validate(); err != nil {
		return err
	}

	c.weather = weather
	return nil
}
