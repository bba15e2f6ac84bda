// Package metrics exports Prometheus counters for dispatched orders.
package metrics

import (
	"io"
	"sync"

	"logistics/internal/core/domain/model/agency"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

const (
	OutcomeShipped    = "shipped"
	OutcomeImpossible = "impossible"
	OutcomeFallback   = "fallback"

	noTransport = "none"
)

var (
	// Registry is the dedicated Prometheus registry of the dispatcher.
	Registry = prometheus.NewRegistry()
	// Default is the dispatch metrics set registered on Registry.
	Default = NewDispatchMetrics()

	regOnce sync.Once
)

// RegisterDefault registers Default and the Go runtime collectors on Registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Default.MustRegister(Registry)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// DispatchMetrics counts processing outcomes and money flows.
// It satisfies commands.ResultObserver.
type DispatchMetrics struct {
	// OrdersProcessed counts orders by outcome and transport kind.
	OrdersProcessed *prometheus.CounterVec
	// Surcharges counts applied surcharges by kind.
	Surcharges *prometheus.CounterVec
	// SurchargeAmount sums surcharge amounts by kind.
	SurchargeAmount *prometheus.CounterVec
	Revenue         prometheus.Counter
	Expenses        prometheus.Counter
}

// NewDispatchMetrics creates an unregistered metrics set.
func NewDispatchMetrics() *DispatchMetrics {
	return &DispatchMetrics{
		OrdersProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "dispatch_orders_total", Help: "Processed orders by outcome and transport."},
			[]string{"outcome", "transport"},
		),
		Surcharges: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "dispatch_surcharges_total", Help: "Applied surcharges by kind."},
			[]string{"kind"},
		),
		SurchargeAmount: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "dispatch_surcharge_amount_total", Help: "Sum of surcharge amounts by kind."},
			[]string{"kind"},
		),
		Revenue: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "dispatch_revenue_total", Help: "Income booked by the agency."},
		),
		Expenses: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "dispatch_expenses_total", Help: "Expenses booked by the agency, surcharges included."},
		),
	}
}

// MustRegister registers every collector of m on reg.
func (m *DispatchMetrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.OrdersProcessed, m.Surcharges, m.SurchargeAmount, m.Revenue, m.Expenses)
}

// Observe records one processing result.
func (m *DispatchMetrics) Observe(r agency.Result) {
	if !r.Found {
		m.OrdersProcessed.WithLabelValues(OutcomeImpossible, noTransport).Inc()
		return
	}

	outcome := OutcomeShipped
	if r.FellBack {
		outcome = OutcomeFallback
	}
	m.OrdersProcessed.WithLabelValues(outcome, r.Transport.Kind().String()).Inc()
	m.Revenue.Add(r.IncomeDelta())
	m.Expenses.Add(r.ExpenseDelta())

	for _, s := range r.Surcharges {
		m.Surcharges.WithLabelValues(s.Kind.String()).Inc()
		m.SurchargeAmount.WithLabelValues(s.Kind.String()).Add(s.Amount)
	}
}

// WriteText dumps every family gathered from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
