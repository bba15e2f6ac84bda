package order

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
)

// ClientWishes holds the optional constraints a client puts on the transport.
// The zero value means "no constraint" in both dimensions.
type ClientWishes struct {
	preferredSpeed *float64
	preferredCost  *float64
}

// WishOption sets one constraint on ClientWishes.
type WishOption func(w *ClientWishes) error

// WithPreferredSpeed requires transports at least as fast as speed.
func WithPreferredSpeed(speed float64) WishOption {
	return func(w *ClientWishes) error {
		if !(speed > 0) {
			return errs.NewValueIsInvalidErrorWithCause(
				"preferred speed is invalid",
				fmt.Errorf("%g is not greater than 0", speed),
			)
		}
		w.preferredSpeed = &speed
		return nil
	}
}

// WithPreferredCost requires the total shipment cost to stay at or below cost.
func WithPreferredCost(cost float64) WishOption {
	return func(w *ClientWishes) error {
		if !(cost > 0) {
			return errs.NewValueIsInvalidErrorWithCause(
				"preferred cost is invalid",
				fmt.Errorf("%g is not greater than 0", cost),
			)
		}
		w.preferredCost = &cost
		return nil
	}
}

// NewClientWishes applies opts in order and joins their validation errors.
//
// Example:
//
//	wishes, err := order.NewClientWishes(order.WithPreferredSpeed(500))
func NewClientWishes(opts ...WishOption) (ClientWishes, error) {
	var w ClientWishes

	var errList []error
	for _, opt := range opts {
		errList = append(errList, opt(&w))
	}
	if err := errors.Join(errList...); err != nil {
		return ClientWishes{}, err
	}

	return w, nil
}

// NoWishes returns wishes that accept every transport.
func NoWishes() ClientWishes {
	return ClientWishes{}
}

// PreferredSpeed returns the minimum speed and whether it was set.
func (w ClientWishes) PreferredSpeed() (float64, bool) {
	if w.preferredSpeed == nil {
		return 0, false
	}
	return *w.preferredSpeed, true
}

// PreferredCost returns the maximum total cost and whether it was set.
func (w ClientWishes) PreferredCost() (float64, bool) {
	if w.preferredCost == nil {
		return 0, false
	}
	return *w.preferredCost, true
}

// AcceptsSpeed reports whether speed satisfies the speed wish.
func (w ClientWishes) AcceptsSpeed(speed float64) bool {
	preferred, ok := w.PreferredSpeed()
	return !ok || speed >= preferred
}

// AcceptsCost reports whether a total cost satisfies the cost wish.
func (w ClientWishes) AcceptsCost(cost float64) bool {
	preferred, ok := w.PreferredCost()
	return !ok || cost <= preferred
}

// IsEmpty reports whether no wish is set.
func (w ClientWishes) IsEmpty() bool {
	return w.preferredSpeed == nil && w.preferredCost == nil
}
