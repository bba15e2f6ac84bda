package cmd

import (
	"errors"
	"io"
	"log/slog"

	"logistics/internal/adapters/in/console"
	"logistics/internal/adapters/out/memory/cityrepo"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/transport"
	"logistics/internal/metrics"
)

type CompositionRoot struct {
	cfg      Config
	logger   *slog.Logger
	cityRepo *cityrepo.MemoryCityRepository
	agency   *agency.Agency
	rnd      agency.Randomizer
	metrics  *metrics.DispatchMetrics
}

func NewCompositionRoot(cfg Config, logger *slog.Logger, rnd agency.Randomizer) (CompositionRoot, error) {
	fleet, err := DefaultFleet()
	if err != nil {
		return CompositionRoot{}, err
	}

	a, err := agency.NewAgency(fleet)
	if err != nil {
		return CompositionRoot{}, err
	}

	metrics.RegisterDefault()

	return CompositionRoot{
		cfg:      cfg,
		logger:   logger,
		cityRepo: cityrepo.NewMemoryCityRepository(),
		agency:   a,
		rnd:      rnd,
		metrics:  metrics.Default,
	}, nil
}

// DefaultFleet is the agency's fixed fleet, in selection order.
func DefaultFleet() ([]transport.Transport, error) {
	road, roadErr := transport.NewRoad(100, 60)
	rail, railErr := transport.NewRail(50, 80)
	air, airErr := transport.NewAir(150, 500)
	if err := errors.Join(roadErr, railErr, airErr); err != nil {
		return nil, err
	}
	return []transport.Transport{road, rail, air}, nil
}

func (c *CompositionRoot) CreateAddCityCommandHandler() commands.AddCityCommandHandler {
	return commands.NewAddCityCommandHandler(c.cityRepo)
}

func (c *CompositionRoot) CreateUpdateWeatherCommandHandler() commands.UpdateWeatherCommandHandler {
	return commands.NewUpdateWeatherCommandHandler(c.cityRepo, c.logger)
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	return commands.NewProcessOrderCommandHandler(c.cityRepo, c.agency, c.rnd, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateGetAgencyTotalsQueryHandler() queries.GetAgencyTotalsQueryHandler {
	return queries.NewGetAgencyTotalsQueryHandler(c.agency)
}

func (c *CompositionRoot) CreateGetAllCitiesQueryHandler() queries.GetAllCitiesQueryHandler {
	return queries.NewGetAllCitiesQueryHandler(c.cityRepo)
}

func (c *CompositionRoot) CreatePrinter(w io.Writer) (*console.Printer, error) {
	format, err := console.ParseFormat(c.cfg.ReportFormat)
	if err != nil {
		return nil, err
	}
	return console.NewPrinter(w, format), nil
}

// DumpMetrics writes the registry in the Prometheus text format when enabled.
func (c *CompositionRoot) DumpMetrics(w io.Writer) error {
	if !c.cfg.MetricsDump {
		return nil
	}
	return metrics.WriteText(w, metrics.Registry)
}
