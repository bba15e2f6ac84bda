package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/ports"
)

// UpdateWeatherCommandHandler writes weather changes to the city repository.
type UpdateWeatherCommandHandler struct {
	cityRepo ports.CityRepository
	logger   *slog.Logger
}

// NewUpdateWeatherCommandHandler creates a handler backed by cityRepo.
func NewUpdateWeatherCommandHandler(cityRepo ports.CityRepository, logger *slog.Logger) UpdateWeatherCommandHandler {
	return UpdateWeatherCommandHandler{
		cityRepo: cityRepo,
		logger:   logger.With("component", "update_weather_handler"),
	}
}

// Handle updates the weather. Unknown cities yield errs.ErrObjectNotFound.
func (h UpdateWeatherCommandHandler) Handle(ctx context.Context, cmd UpdateWeatherCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	updated, err := h.cityRepo.UpdateWeather(ctx, cmd.CityName(), cmd.Weather())
	if err != nil {
		return err
	}

	h.logger.DebugContext(ctx, "Weather updated", "city", updated.Name(), "weather", updated.Weather().String())
	return nil
}
