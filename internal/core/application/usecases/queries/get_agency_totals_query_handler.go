package queries

import (
	"context"

	"logistics/internal/core/domain/model/agency"
)

// GetAgencyTotalsQueryHandler reads totals straight from the agency aggregate.
type GetAgencyTotalsQueryHandler struct {
	agency *agency.Agency
}

// NewGetAgencyTotalsQueryHandler creates a handler bound to a.
func NewGetAgencyTotalsQueryHandler(a *agency.Agency) GetAgencyTotalsQueryHandler {
	return GetAgencyTotalsQueryHandler{agency: a}
}

// Handle returns a snapshot of the ledger.
func (h GetAgencyTotalsQueryHandler) Handle(
	_ context.Context,
	query GetAgencyTotalsQuery,
) (GetAgencyTotalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAgencyTotalsQueryResponse{}, err
	}
	if err := h.agency.Validate(); err != nil {
		return GetAgencyTotalsQueryResponse{}, err
	}

	return GetAgencyTotalsQueryResponse{
		Income:    h.agency.Income(),
		Expenses:  h.agency.Expenses(),
		FleetSize: len(h.agency.Fleet()),
	}, nil
}
