package transport

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/city"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrTransportIsNotConstructed is returned when using a zero-value Transport.
var ErrTransportIsNotConstructed = errors.New("Transport must be created via NewTransport constructor")

// Transport is one vehicle class of the fleet.
type Transport struct { //nolint:recvcheck //using for validation
	kind          Kind
	costPerWeight float64
	speed         float64
	guard         guard.ConstructorGuard
}

// NewTransport validates and builds a Transport. costPerWeight is the tariff per
// weight unit and speed the cruising speed; both must be positive.
func NewTransport(kind Kind, costPerWeight, speed float64) (Transport, error) {
	t := Transport{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setKind(kind),
		t.setCostPerWeight(costPerWeight),
		t.setSpeed(speed),
	); err != nil {
		return Transport{}, err
	}

	return t, nil
}

// NewRoad builds a Road transport.
func NewRoad(costPerWeight, speed float64) (Transport, error) {
	return NewTransport(Road, costPerWeight, speed)
}

// NewRail builds a Rail transport.
func NewRail(costPerWeight, speed float64) (Transport, error) {
	return NewTransport(Rail, costPerWeight, speed)
}

// NewAir builds an Air transport.
func NewAir(costPerWeight, speed float64) (Transport, error) {
	return NewTransport(Air, costPerWeight, speed)
}

// Validate returns ErrTransportIsNotConstructed for the zero value.
func (t Transport) Validate() error {
	return t.guard.Validate(ErrTransportIsNotConstructed)
}

// Kind returns the variant tag.
func (t Transport) Kind() Kind {
	return t.kind
}

// CostPerWeight returns the tariff per weight unit.
func (t Transport) CostPerWeight() float64 {
	return t.costPerWeight
}

// Speed returns the cruising speed.
func (t Transport) Speed() float64 {
	return t.speed
}

// Cost returns the price of carrying weight units.
func (t Transport) Cost(weight float64) float64 {
	return t.costPerWeight * weight
}

// CanOperate applies the kind's eligibility rule to the route.
func (t Transport) CanOperate(origin, destination city.City) bool {
	return CanOperate(t.kind, origin, destination)
}

func (t Transport) String() string {
	return fmt.Sprintf("%s(cost=%g, speed=%g)", t.kind, t.costPerWeight, t.speed)
}

func (t *Transport) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	t.kind = kind
	return nil
}

func (t *Transport) setCostPerWeight(costPerWeight float64) error {
	if !(costPerWeight > 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			"cost per weight is invalid",
			fmt.Errorf("%g is not greater than 0", costPerWeight),
		)
	}
	t.costPerWeight = costPerWeight
	return nil
}

func (t *Transport) setSpeed(speed float64) error {
	if !(speed > 0) {
		return errs.NewValueIsInvalidErrorWithCause("speed is invalid", fmt.Errorf("%g is not greater than 0", speed))
	}
	t.speed = speed
	return nil
}
