package services

import (
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/transport"
)

// Selection is the outcome of TransportSelector.Select.
type Selection struct {
	// Eligible are the fleet members able to serve the route, in fleet order.
	Eligible []transport.Transport
	// Preferred are the eligible members that also satisfy the client's wishes.
	Preferred []transport.Transport
	// Chosen is the selected transport; valid only when Found is true.
	Chosen transport.Transport
	// Found is false when no fleet member can serve the route.
	Found bool
	// FellBack is true when the wishes excluded every eligible transport and the
	// cheapest eligible one was chosen instead.
	FellBack bool
}

// TransportSelector is a stateless domain service choosing a transport for an order.
//
// Selection algorithm:
//   - Keep fleet members whose kind can operate the route (eligible)
//   - Keep eligible members meeting the speed and cost wishes (preferred)
//   - Choose the cheapest preferred member, or the cheapest eligible one when
//     nothing is preferred
//   - On equal cost the member appearing first in the fleet wins
//
// The zero value is ready to use.
type TransportSelector struct{}

// NewTransportSelector creates a new TransportSelector instance.
func NewTransportSelector() TransportSelector {
	return TransportSelector{}
}

// Select runs the selection for o over fleet. It never fails: an empty Eligible
// list is reported through Found == false. The caller guarantees o is valid.
func (s TransportSelector) Select(o *order.Order, fleet []transport.Transport) Selection {
	eligible := s.filterEligible(o, fleet)
	if len(eligible) == 0 {
		return Selection{}
	}

	preferred := s.filterPreferred(o, eligible)

	candidates := preferred
	fellBack := false
	if len(candidates) == 0 {
		candidates = eligible
		fellBack = true
	}

	return Selection{
		Eligible:  eligible,
		Preferred: preferred,
		Chosen:    s.findCheapest(o.Weight(), candidates),
		Found:     true,
		FellBack:  fellBack,
	}
}

func (s TransportSelector) filterEligible(o *order.Order, fleet []transport.Transport) []transport.Transport {
	eligible := make([]transport.Transport, 0, len(fleet))
	for _, t := range fleet {
		if t.CanOperate(o.Origin(), o.Destination()) {
			eligible = append(eligible, t)
		}
	}
	return eligible
}

func (s TransportSelector) filterPreferred(o *order.Order, eligible []transport.Transport) []transport.Transport {
	wishes := o.Wishes()

	preferred := make([]transport.Transport, 0, len(eligible))
	for _, t := range eligible {
		if wishes.AcceptsSpeed(t.Speed()) && wishes.AcceptsCost(t.Cost(o.Weight())) {
			preferred = append(preferred, t)
		}
	}
	return preferred
}

// findCheapest returns the first transport with the minimal cost for weight.
// candidates must not be empty.
func (s TransportSelector) findCheapest(weight float64, candidates []transport.Transport) transport.Transport {
	best := candidates[0]
	bestCost := best.Cost(weight)

	for _, t := range candidates[1:] {
		if cost := t.Cost(weight); cost < bestCost {
			best = t
			bestCost = cost
		}
	}

	return best
}
