package cmd

import (
	"context"
	"fmt"
	"io"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/city"
	"logistics/internal/core/domain/model/order"
)

type cityRecord struct {
	name    string
	size    city.Size
	weather city.Weather
}

var scenarioCities = []cityRecord{
	{name: "Moscow", size: city.Large, weather: city.Bad},
	{name: "Saint Petersburg", size: city.Large, weather: city.Bad},
	{name: "Kazan", size: city.Medium, weather: city.Good},
}

// RunScenario registers the known cities, ships 1000 units from Moscow to
// Saint Petersburg with a preferred speed of 500 and prints the report to w.
func RunScenario(ctx context.Context, root *CompositionRoot, w io.Writer) error {
	addCity := root.CreateAddCityCommandHandler()
	for _, rec := range scenarioCities {
		cmd, err := commands.NewAddCityCommand(rec.name, rec.size, rec.weather)
		if err != nil {
			return fmt.Errorf("city %s: %w", rec.name, err)
		}
		if err := addCity.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("city %s: %w", rec.name, err)
		}
	}

	wishes, err := order.NewClientWishes(order.WithPreferredSpeed(500))
	if err != nil {
		return err
	}
	cmd, err := commands.NewProcessOrderCommand("Moscow", "Saint Petersburg", 1000, wishes)
	if err != nil {
		return err
	}

	result, err := root.CreateProcessOrderCommandHandler().Handle(ctx, cmd)
	if err != nil {
		return fmt.Errorf("failed to process order: %w", err)
	}

	totals, err := root.CreateGetAgencyTotalsQueryHandler().Handle(ctx, queries.NewGetAgencyTotalsQuery())
	if err != nil {
		return fmt.Errorf("failed to read totals: %w", err)
	}

	printer, err := root.CreatePrinter(w)
	if err != nil {
		return err
	}
	return printer.Print(result, totals)
}
