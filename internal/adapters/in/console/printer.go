// Package console renders processing results for a terminal.
package console

import (
	"fmt"
	"io"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/agency"

	"gopkg.in/yaml.v3"
)

const impossibleMessage = "transportation impossible"

// Printer writes one report per processed order.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a printer writing to w. An unknown format falls back to text.
func NewPrinter(w io.Writer, format Format) *Printer {
	if format != YAMLFormat {
		format = TextFormat
	}
	return &Printer{w: w, format: format}
}

// Print renders the result together with the agency totals after it was booked.
func (p *Printer) Print(result agency.Result, totals queries.GetAgencyTotalsQueryResponse) error {
	if p.format == YAMLFormat {
		return p.printYAML(result, totals)
	}
	return p.printText(result, totals)
}

func (p *Printer) printText(result agency.Result, totals queries.GetAgencyTotalsQueryResponse) error {
	for _, d := range result.Diagnostics {
		if _, err := fmt.Fprintln(p.w, d); err != nil {
			return err
		}
	}

	t, ok := result.Selected()
	if !ok {
		_, err := fmt.Fprintln(p.w, impossibleMessage)
		return err
	}

	_, err := fmt.Fprintf(p.w,
		"Selected transport: %s\nTransport cost: %.2f\nAgency income: %.2f\nAgency expenses: %.2f\n",
		t.Kind(), result.Cost, totals.Income, totals.Expenses)
	return err
}

type transportReport struct {
	Kind          string  `yaml:"kind"`
	CostPerWeight float64 `yaml:"cost_per_weight"`
	Speed         float64 `yaml:"speed"`
}

type surchargeReport struct {
	Kind   string  `yaml:"kind"`
	Amount float64 `yaml:"amount"`
}

type report struct {
	OrderID     string                               `yaml:"order_id"`
	Route       string                               `yaml:"route"`
	Status      string                               `yaml:"status"`
	Transport   *transportReport                     `yaml:"transport,omitempty"`
	FellBack    bool                                 `yaml:"fell_back,omitempty"`
	Cost        float64                              `yaml:"cost"`
	BaseExpense float64                              `yaml:"base_expense"`
	Surcharges  []surchargeReport                    `yaml:"surcharges,omitempty"`
	Diagnostics []string                             `yaml:"diagnostics,omitempty"`
	Agency      queries.GetAgencyTotalsQueryResponse `yaml:"agency"`
}

func (p *Printer) printYAML(result agency.Result, totals queries.GetAgencyTotalsQueryResponse) error {
	r := report{
		OrderID:     result.OrderID.String(),
		Route:       result.Route,
		Status:      impossibleMessage,
		FellBack:    result.FellBack,
		Cost:        result.Cost,
		BaseExpense: result.BaseExpense,
		Diagnostics: result.Diagnostics,
		Agency:      totals,
	}

	if t, ok := result.Selected(); ok {
		r.Status = "shipped"
		r.Transport = &transportReport{
			Kind:          t.Kind().String(),
			CostPerWeight: t.CostPerWeight(),
			Speed:         t.Speed(),
		}
	}
	for _, s := range result.Surcharges {
		r.Surcharges = append(r.Surcharges, surchargeReport{Kind: s.Kind.String(), Amount: s.Amount})
	}

	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
