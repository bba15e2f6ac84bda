package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var (
	ErrGetAllCitiesQueryIsNotConstructed = errors.New(
		"GetAllCitiesQuery must be created via NewGetAllCitiesQuery constructor",
	)
)

// GetAllCitiesQuery lists every known city with its current weather.
type GetAllCitiesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCitiesQuery creates a parameterless city listing query.
func NewGetAllCitiesQuery() GetAllCitiesQuery {
	return GetAllCitiesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCitiesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCitiesQueryIsNotConstructed)
}

// GetAllCitiesQueryResponse is the read model of a single city.
type GetAllCitiesQueryResponse struct {
	Name    string `yaml:"name"`
	Size    string `yaml:"size"`
	Weather string `yaml:"weather"`
}
