package order

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/city"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a request to carry a weight from origin to destination.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Origin and destination must be valid cities (they may be the same city)
//   - Weight must be positive
//   - Immutable once created
//
// The cities are snapshots taken when the order was built, so eligibility sees
// the weather at that moment.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// origin is where the freight is picked up
	origin city.City

	// destination is where the freight is delivered
	destination city.City

	// weight of the freight (must be positive)
	weight float64

	// wishes are the client's optional speed/cost constraints
	wishes ClientWishes

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order with validation.
//
// Example:
//
//	moscow, _ := city.NewCity("Moscow", city.Large, city.Bad)
//	spb, _ := city.NewCity("Saint Petersburg", city.Large, city.Bad)
//	wishes, _ := order.NewClientWishes(order.WithPreferredSpeed(500))
//	o, err := order.NewOrder(kernel.NewUUID(), moscow, spb, 1000, wishes)
func NewOrder(
	id kernel.UUID,
	origin city.City,
	destination city.City,
	weight float64,
	wishes ClientWishes,
) (*Order, error) {
	order := &Order{
		wishes:        wishes,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrigin(origin),
		order.setDestination(destination),
		order.setWeight(weight),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Origin returns the pickup city.
func (o *Order) Origin() city.City {
	return o.origin
}

// Destination returns the delivery city.
func (o *Order) Destination() city.City {
	return o.destination
}

// Weight returns the freight weight.
func (o *Order) Weight() float64 {
	return o.weight
}

// Wishes returns the client's constraints.
func (o *Order) Wishes() ClientWishes {
	return o.wishes
}

// HasBadWeather reports whether either endpoint has Bad weather.
func (o *Order) HasBadWeather() bool {
	return o.origin.HasBadWeather() || o.destination.HasBadWeather()
}

// Route returns "Origin -> Destination" for diagnostics.
func (o *Order) Route() string {
	return fmt.Sprintf("%s -> %s", o.origin.Name(), o.destination.Name())
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrigin(origin city.City) error {
	if err := origin.Validate(); err != nil {
		return fmt.Errorf("origin: %w", err)
	}
	o.origin = origin
	return nil
}

func (o *Order) setDestination(destination city.City) error {
	if err := destination.Validate(); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	o.destination = destination
	return nil
}

func (o *Order) setWeight(weight float64) error {
	if !(weight > 0) {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%g is not greater than 0", weight))
	}
	o.weight = weight
	return nil
}
