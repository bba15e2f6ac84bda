package commands

import (
	"context"

	"logistics/internal/core/domain/model/city"
	"logistics/internal/core/ports"
)

// AddCityCommandHandler stores new cities in the city repository.
type AddCityCommandHandler struct {
	cityRepo ports.CityRepository
}

// NewAddCityCommandHandler creates a handler backed by cityRepo.
func NewAddCityCommandHandler(cityRepo ports.CityRepository) AddCityCommandHandler {
	return AddCityCommandHandler{
		cityRepo: cityRepo,
	}
}

// Handle builds the city and adds it to the repository.
func (h AddCityCommandHandler) Handle(ctx context.Context, cmd AddCityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := city.NewCity(cmd.Name(), cmd.Size(), cmd.Weather())
	if err != nil {
		return err
	}

	return h.cityRepo.Add(ctx, c)
}
