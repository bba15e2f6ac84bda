package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var (
	ErrProcessOrderCommandIsNotConstructed = errors.New(
		"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
	)
	ErrOriginIsRequired      = errors.New("origin is required")
	ErrDestinationIsRequired = errors.New("destination is required")
	ErrWeightIsInvalid       = errors.New("weight must be greater than 0")
)

// ProcessOrderCommand asks the agency to ship weight units between two known cities.
// Cities are referenced by name; their current weather is read when the command
// is handled.
//
// Example:
//
//	wishes, _ := order.NewClientWishes(order.WithPreferredSpeed(500))
//	cmd, err := NewProcessOrderCommand("Moscow", "Saint Petersburg", 1000, wishes)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to process order: %w", err)
//	}
//	if _, ok := result.Selected(); !ok {
//	    fmt.Println("transportation impossible")
//	}
type ProcessOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	origin      string
	destination string
	weight      float64
	wishes      order.ClientWishes

	guard guard.ConstructorGuard
}

// NewProcessOrderCommand creates the command and assigns a fresh order ID.
func NewProcessOrderCommand(
	origin string,
	destination string,
	weight float64,
	wishes order.ClientWishes,
) (ProcessOrderCommand, error) {
	command := ProcessOrderCommand{
		wishes: wishes,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setOrigin(origin),
		command.setDestination(destination),
		command.setWeight(weight),
	); err != nil {
		return ProcessOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the order will carry.
func (c ProcessOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Origin returns the origin city name.
func (c ProcessOrderCommand) Origin() string {
	return c.origin
}

// Destination returns the destination city name.
func (c ProcessOrderCommand) Destination() string {
	return c.destination
}

// Weight returns the freight weight.
func (c ProcessOrderCommand) Weight() float64 {
	return c.weight
}

// Wishes returns the client's constraints.
func (c ProcessOrderCommand) Wishes() order.ClientWishes {
	return c.wishes
}

func (c *ProcessOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *ProcessOrderCommand) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}

	c.origin = origin
	return nil
}

func (c *ProcessOrderCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *ProcessOrderCommand) setWeight(weight float64) error {
	if !(weight > 0) {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}
