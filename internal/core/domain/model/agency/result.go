package agency

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transport"
)

// SurchargeKind names the reason for an extra expense.
type SurchargeKind int

const (
	// WeatherSurcharge applies to ground transport when either endpoint has bad weather.
	WeatherSurcharge SurchargeKind = iota + 1
	// AccidentSurcharge applies when the random accident draw hits.
	AccidentSurcharge
)

func (k SurchargeKind) String() string {
	switch k {
	case WeatherSurcharge:
		return "weather"
	case AccidentSurcharge:
		return "accident"
	default:
		return "unknown"
	}
}

// Surcharge is an expense added on top of the baseline expense.
type Surcharge struct {
	Kind   SurchargeKind
	Amount float64
}

// Result describes what ProcessOrder decided and booked.
//
// When no transport can serve the route Found is false, the amounts are zero and
// Diagnostics explains why. This is a regular outcome, not an error.
type Result struct {
	OrderID kernel.UUID
	Route   string

	Transport transport.Transport
	Found     bool
	// FellBack is true when the client's wishes could not be met and the cheapest
	// eligible transport was used instead.
	FellBack bool

	// Cost is the price charged to the client (costPerWeight * weight).
	Cost float64
	// BaseExpense is the agency's own cost before surcharges.
	BaseExpense float64
	Surcharges  []Surcharge

	Diagnostics []string
}

// Selected returns the chosen transport, if any.
func (r Result) Selected() (transport.Transport, bool) {
	return r.Transport, r.Found
}

// IncomeDelta is the amount ProcessOrder added to the agency income.
func (r Result) IncomeDelta() float64 {
	return r.Cost
}

// ExpenseDelta is the amount ProcessOrder added to the agency expenses.
func (r Result) ExpenseDelta() float64 {
	total := r.BaseExpense
	for _, s := range r.Surcharges {
		total += s.Amount
	}
	return total
}

// HasSurcharge reports whether a surcharge of kind k was applied.
func (r Result) HasSurcharge(k SurchargeKind) bool {
	for _, s := range r.Surcharges {
		if s.Kind == k {
			return true
		}
	}
	return false
}
