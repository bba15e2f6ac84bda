// Package queries contains read operations for retrieving system state.
// Queries never change the ledger or the city store.
package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var (
	ErrGetAgencyTotalsQueryIsNotConstructed = errors.New(
		"GetAgencyTotalsQuery must be created via NewGetAgencyTotalsQuery constructor",
	)
)

// GetAgencyTotalsQuery reads the agency's running totals.
//
// Example:
//
//	query := NewGetAgencyTotalsQuery()
//	handler := NewGetAgencyTotalsQueryHandler(agency)
//
//	totals, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read totals: %w", err)
//	}
//	fmt.Printf("income %.2f, expenses %.2f\n", totals.Income, totals.Expenses)
type GetAgencyTotalsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAgencyTotalsQuery creates a parameterless totals query.
func NewGetAgencyTotalsQuery() GetAgencyTotalsQuery {
	return GetAgencyTotalsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAgencyTotalsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgencyTotalsQueryIsNotConstructed)
}

// GetAgencyTotalsQueryResponse is the read model of the agency ledger.
type GetAgencyTotalsQueryResponse struct {
	Income    float64 `yaml:"income"`
	Expenses  float64 `yaml:"expenses"`
	FleetSize int     `yaml:"fleet_size"`
}
