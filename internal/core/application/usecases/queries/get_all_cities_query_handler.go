package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetAllCitiesQueryHandler reads the city store.
type GetAllCitiesQueryHandler struct {
	cityRepo ports.CityRepository
}

// NewGetAllCitiesQueryHandler creates a handler over cityRepo.
func NewGetAllCitiesQueryHandler(cityRepo ports.CityRepository) GetAllCitiesQueryHandler {
	return GetAllCitiesQueryHandler{cityRepo: cityRepo}
}

// Handle returns the cities sorted by name.
func (h GetAllCitiesQueryHandler) Handle(
	ctx context.Context,
	query GetAllCitiesQuery,
) ([]GetAllCitiesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cities, err := h.cityRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]GetAllCitiesQueryResponse, 0, len(cities))
	for _, c := range cities {
		response = append(response, GetAllCitiesQueryResponse{
			Name:    c.Name(),
			Size:    c.Size().String(),
			Weather: c.Weather().String(),
		})
	}

	return response, nil
}
