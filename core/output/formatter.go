// Package output renders plans and selection results for humans and
// machines. The core returns structured values only; every bit of
// presentation lives here.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"cloudforge/core/engine"
	"cloudforge/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatTable is a human-readable CLI table
	FormatTable Format = "table"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the evaluated plan
	Render(w io.Writer, plan *engine.Plan) error
}

// New returns the formatter for a format name
func New(format Format) (Formatter, error) {
	switch format {
	case FormatTable, "":
		return &TableFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

// JSONFormatter renders the plan as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the plan as JSON
func (f *JSONFormatter) Render(w io.Writer, plan *engine.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

// TableFormatter renders a per-resource summary plus, for selection
// requests, the full ranked comparison and every exclusion reason.
type TableFormatter struct{}

// Format returns the format type
func (f *TableFormatter) Format() Format { return FormatTable }

// Render writes the plan as CLI tables
func (f *TableFormatter) Render(w io.Writer, plan *engine.Plan) error {
	summary := tablewriter.NewWriter(w)
	summary.Append([]string{"Resource", "Provider", "Instance Type", "Region", "Image", "Hourly"})
	for _, res := range plan.Resources {
		summary.Append([]string{
			res.Request.Name,
			string(res.Descriptor.Provider),
			res.Descriptor.InstanceType,
			res.Descriptor.RegionID.String(),
			res.Descriptor.ImageID,
			res.Quote.FinalHourly.StringFixed(4) + " " + res.Quote.Currency.String(),
		})
	}
	summary.Render()

	for _, res := range plan.Resources {
		if res.Selection == nil {
			continue
		}
		fmt.Fprintf(w, "\n%s: ranked by final hourly price\n", res.Request.Name)
		renderSelection(w, res.Selection)
	}
	return nil
}

func renderSelection(w io.Writer, sel *types.SelectionResult) {
	ranked := tablewriter.NewWriter(w)
	ranked.Append([]string{"Rank", "Provider", "Priced Item", "Base", "Region Factor", "Discount", "Final Hourly"})
	for i, q := range sel.Ranked {
		discount := "-"
		if q.DiscountSource != types.DiscountNone {
			discount = fmt.Sprintf("%s%% (%s)", q.DiscountPercent.String(), q.DiscountSource)
		}
		ranked.Append([]string{
			fmt.Sprintf("%d", i+1),
			string(q.Provider),
			q.InstanceType,
			q.BaseHourly.StringFixed(4),
			q.RegionFactor.String(),
			discount,
			q.FinalHourly.StringFixed(4) + " " + q.Currency.String(),
		})
	}
	ranked.Render()

	if len(sel.Excluded) > 0 {
		fmt.Fprintln(w, "excluded providers:")
		for _, ex := range sel.Excluded {
			fmt.Fprintf(w, "  %-10s %-10s %s\n", ex.Provider, ex.Stage, ex.Reason)
		}
	}
}
