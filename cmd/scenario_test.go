package cmd_test

import (
	"bytes"
	"log/slog"
	"testing"

	"logistics/cmd"
	"logistics/internal/core/domain/model/transport"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRandomizer float64

func (f fixedRandomizer) Float64() float64 { return float64(f) }

func newRoot(t *testing.T, cfg cmd.Config, draw float64) *cmd.CompositionRoot {
	t.Helper()
	root, err := cmd.NewCompositionRoot(cfg, slog.New(slog.DiscardHandler), fixedRandomizer(draw))
	require.NoError(t, err)
	return &root
}

func TestDefaultFleet(t *testing.T) {
	fleet, err := cmd.DefaultFleet()

	require.NoError(t, err)
	require.Len(t, fleet, 3)
	assert.Equal(t, transport.Road, fleet[0].Kind())
	assert.Equal(t, transport.Rail, fleet[1].Kind())
	assert.Equal(t, transport.Air, fleet[2].Kind())
}

func TestRunScenario(t *testing.T) {
	t.Run("ships by rail without accident", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, cmd.RunScenario(t.Context(), newRoot(t, cmd.Config{}, 0.5), &out))

		assert.Equal(t,
			"client wishes cannot be met, using the cheapest eligible transport\n"+
				"bad weather increases expenses\n"+
				"transporting from Moscow to Saint Petersburg by Rail\n"+
				"Selected transport: Rail\n"+
				"Transport cost: 50000.00\n"+
				"Agency income: 50000.00\n"+
				"Agency expenses: 85000.00\n",
			out.String())
	})

	t.Run("accident adds twice the cost", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, cmd.RunScenario(t.Context(), newRoot(t, cmd.Config{}, 0), &out))

		assert.Contains(t, out.String(), "accident increases expenses\n")
		assert.Contains(t, out.String(), "Agency expenses: 185000.00\n")
	})

	t.Run("yaml report", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, cmd.RunScenario(t.Context(), newRoot(t, cmd.Config{ReportFormat: "yaml"}, 0.5), &out))

		assert.Contains(t, out.String(), "status: shipped\n")
		assert.Contains(t, out.String(), "kind: Rail\n")
	})

	t.Run("cities are registered once", func(t *testing.T) {
		root := newRoot(t, cmd.Config{}, 0.5)
		require.NoError(t, cmd.RunScenario(t.Context(), root, &bytes.Buffer{}))

		err := cmd.RunScenario(t.Context(), root, &bytes.Buffer{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid report format", func(t *testing.T) {
		err := cmd.RunScenario(t.Context(), newRoot(t, cmd.Config{ReportFormat: "xml"}, 0.5), &bytes.Buffer{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCompositionRoot_DumpMetrics(t *testing.T) {
	t.Run("disabled writes nothing", func(t *testing.T) {
		var out bytes.Buffer
		root := newRoot(t, cmd.Config{}, 0.5)

		require.NoError(t, root.DumpMetrics(&out))
		assert.Empty(t, out.String())
	})

	t.Run("enabled writes dispatch counters", func(t *testing.T) {
		var out bytes.Buffer
		root := newRoot(t, cmd.Config{MetricsDump: true}, 0.5)
		require.NoError(t, cmd.RunScenario(t.Context(), root, &bytes.Buffer{}))

		require.NoError(t, root.DumpMetrics(&out))
		assert.Contains(t, out.String(), "dispatch_orders_total")
		assert.Contains(t, out.String(), `transport="Rail"`)
	})
}
