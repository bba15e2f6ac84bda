package agency

import (
	"errors"
	"fmt"
	"sync"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/transport"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	// BaseExpenseRatio is the share of the revenue the agency spends on a shipment.
	BaseExpenseRatio = 0.5
	// WeatherSurchargeRatio is the extra expense, relative to the cost, for ground
	// transport in bad weather.
	WeatherSurchargeRatio = 1.2
	// AccidentSurchargeRatio is the extra expense, relative to the cost, of an accident.
	AccidentSurchargeRatio = 2.0
	// AccidentProbability is the chance of an accident per shipment.
	AccidentProbability = 0.01
)

var (
	// ErrAgencyIsNotConstructed is returned when using an Agency not built by NewAgency.
	ErrAgencyIsNotConstructed = errors.New("Agency must be created via NewAgency constructor")
	// ErrRandomizerIsRequired is returned when ProcessOrder gets a nil Randomizer.
	ErrRandomizerIsRequired = errs.NewValueIsRequiredError("randomizer")
)

// Randomizer is the source of the accident draw. *rand.Rand from math/rand/v2
// satisfies it.
type Randomizer interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
}

// Agency owns a fleet and books the income and expenses of every processed order.
//
// Invariants:
//   - The fleet is fixed at construction and keeps its order
//   - Income and expenses start at zero and never decrease
//
// The ledger is guarded by a mutex, so an Agency may be shared by goroutines
// without losing updates.
type Agency struct {
	fleet    []transport.Transport
	selector services.TransportSelector

	mu       sync.Mutex
	income   float64
	expenses float64

	guard guard.ConstructorGuard
}

// NewAgency creates an Agency for fleet. Every transport must be valid. An empty
// fleet is accepted; it simply never finds a transport.
//
// Example:
//
//	road, _ := transport.NewRoad(100, 60)
//	rail, _ := transport.NewRail(50, 80)
//	a, err := agency.NewAgency([]transport.Transport{road, rail})
func NewAgency(fleet []transport.Transport) (*Agency, error) {
	a := &Agency{
		selector: services.NewTransportSelector(),
		guard:    guard.NewConstructorGuard(),
	}

	if err := a.setFleet(fleet); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate returns ErrAgencyIsNotConstructed for nil or zero-value agencies.
func (a *Agency) Validate() error {
	if a == nil {
		return ErrAgencyIsNotConstructed
	}
	return a.guard.Validate(ErrAgencyIsNotConstructed)
}

// Fleet returns a copy of the fleet in its original order.
func (a *Agency) Fleet() []transport.Transport {
	out := make([]transport.Transport, len(a.fleet))
	copy(out, a.fleet)
	return out
}

// Income returns the accumulated revenue.
func (a *Agency) Income() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.income
}

// Expenses returns the accumulated expenses including surcharges.
func (a *Agency) Expenses() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.expenses
}

// ProcessOrder chooses a transport for o and books the shipment.
//
// Steps:
//   - Eligibility and preference filtering, then the cheapest candidate
//     (see services.TransportSelector; ties go to the earlier fleet member)
//   - income += cost, expenses += cost * BaseExpenseRatio
//   - Weather surcharge for non-Air transport when either endpoint has bad weather
//   - Accident surcharge when rnd.Float64() < AccidentProbability
//
// When nothing is eligible the ledger is untouched, no random number is drawn
// and the Result has Found == false. The returned error only reports invalid
// arguments (unconstructed agency or order, nil rnd).
func (a *Agency) ProcessOrder(o *order.Order, rnd Randomizer) (Result, error) {
	if err := errors.Join(a.Validate(), o.Validate()); err != nil {
		return Result{}, err
	}
	if rnd == nil {
		return Result{}, ErrRandomizerIsRequired
	}

	result := Result{
		OrderID: o.ID(),
		Route:   o.Route(),
	}

	selection := a.selector.Select(o, a.fleet)
	if !selection.Found {
		result.Diagnostics = append(result.Diagnostics,
			fmt.Sprintf("no suitable transport for route %s", o.Route()))
		return result, nil
	}

	chosen := selection.Chosen
	cost := chosen.Cost(o.Weight())

	result.Transport = chosen
	result.Found = true
	result.FellBack = selection.FellBack
	result.Cost = cost
	result.BaseExpense = cost * BaseExpenseRatio

	if selection.FellBack {
		result.Diagnostics = append(result.Diagnostics,
			"client wishes cannot be met, using the cheapest eligible transport")
	}

	if chosen.Kind() != transport.Air && o.HasBadWeather() {
		result.Surcharges = append(result.Surcharges, Surcharge{
			Kind:   WeatherSurcharge,
			Amount: cost * WeatherSurchargeRatio,
		})
		result.Diagnostics = append(result.Diagnostics, "bad weather increases expenses")
	}

	if rnd.Float64() < AccidentProbability {
		result.Surcharges = append(result.Surcharges, Surcharge{
			Kind:   AccidentSurcharge,
			Amount: cost * AccidentSurchargeRatio,
		})
		result.Diagnostics = append(result.Diagnostics, "accident increases expenses")
	}

	result.Diagnostics = append(result.Diagnostics,
		fmt.Sprintf("transporting from %s to %s by %s",
			o.Origin().Name(), o.Destination().Name(), chosen.Kind()))

	a.book(result)

	return result, nil
}

// book adds the result to the ledger. Amounts are non-negative, which keeps the
// totals monotonic.
func (a *Agency) book(r Result) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.income += r.Cost
	a.expenses += r.BaseExpense
	for _, s := range r.Surcharges {
		a.expenses += s.Amount
	}
}

func (a *Agency) setFleet(fleet []transport.Transport) error {
	errList := make([]error, 0, len(fleet))
	for i, t := range fleet {
		if err := t.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("fleet[%d]: %w", i, err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	a.fleet = make([]transport.Transport, len(fleet))
	copy(a.fleet, fleet)
	return nil
}
