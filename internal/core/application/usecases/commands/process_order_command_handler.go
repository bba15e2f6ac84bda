package commands

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// ResultObserver receives every processing result, e.g. to export metrics.
type ResultObserver interface {
	Observe(result agency.Result)
}

// ProcessOrderCommandHandler turns a ProcessOrderCommand into an order and runs
// it through the agency.
//
// Example:
//
//	handler := NewProcessOrderCommandHandler(cityRepo, agency, rand.New(rand.NewPCG(1, 2)), observer, logger)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Unknown city")
//	case err != nil:
//	    log.Printf("Processing failed: %v", err)
//	case !result.Found:
//	    log.Println("No transport for this route")
//	}
type ProcessOrderCommandHandler struct {
	cityRepo ports.CityRepository
	agency   *agency.Agency
	rnd      agency.Randomizer
	observer ResultObserver
	logger   *slog.Logger
}

// NewProcessOrderCommandHandler wires the handler. observer may be nil.
func NewProcessOrderCommandHandler(
	cityRepo ports.CityRepository,
	a *agency.Agency,
	rnd agency.Randomizer,
	observer ResultObserver,
	logger *slog.Logger,
) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		cityRepo: cityRepo,
		agency:   a,
		rnd:      rnd,
		observer: observer,
		logger:   logger.With("component", "process_order_handler"),
	}
}

// Handle resolves both cities with their current weather, builds the order and
// processes it. A route without eligible transport is not an error: the
// returned Result has Found == false.
func (h ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) (agency.Result, error) {
	if err := cmd.Validate(); err != nil {
		return agency.Result{}, err
	}

	origin, originErr := h.cityRepo.Get(ctx, cmd.Origin())
	destination, destinationErr := h.cityRepo.Get(ctx, cmd.Destination())
	if err := errors.Join(originErr, destinationErr); err != nil {
		return agency.Result{}, err
	}

	o, err := order.NewOrder(cmd.OrderID(), origin, destination, cmd.Weight(), cmd.Wishes())
	if err != nil {
		return agency.Result{}, err
	}

	result, err := h.agency.ProcessOrder(o, h.rnd)
	if err != nil {
		return agency.Result{}, err
	}

	for _, d := range result.Diagnostics {
		h.logger.DebugContext(ctx, d, "order_id", result.OrderID.String())
	}

	if result.Found {
		h.logger.InfoContext(ctx, "Order processed",
			"order_id", result.OrderID.String(),
			"route", result.Route,
			"transport", result.Transport.Kind().String(),
			"cost", result.Cost,
			"expenses", result.ExpenseDelta(),
		)
	} else {
		h.logger.WarnContext(ctx, "No suitable transport",
			"order_id", result.OrderID.String(),
			"route", result.Route,
		)
	}

	if h.observer != nil {
		h.observer.Observe(result)
	}

	return result, nil
}
