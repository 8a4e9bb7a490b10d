package pipeline

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"marketscan/internal"
	"marketscan/internal/config"
)

// Aggregator accumulates quotes in arrival order and renders the report
// artifact. Updated by the single control thread only.
type Aggregator struct {
	label   string
	symbol  string
	printer *message.Printer

	rows    []internal.ReportRow
	success int
	fail    int
	total   float64
}

func NewAggregator(cfg config.Config) *Aggregator {
	return &Aggregator{
		label:   cfg.CurrencyLabel,
		symbol:  cfg.CurrencySymbol,
		printer: message.NewPrinter(language.English),
	}
}

// Append records one quote. A found quote with an unparsable display string
// counts as success but contributes nothing to the total.
func (a *Aggregator) Append(quote internal.PriceQuote) {
	a.rows = append(a.rows, internal.ReportRow{
		Name:    quote.Item.Name,
		Display: quote.DisplayText,
		Status:  quote.Status,
	})
	if quote.Status == internal.StatusFound {
		a.success++
		if quote.Parsed {
			a.total += quote.ParsedValue
		}
	} else {
		a.fail++
	}
}

// Finalize snapshots the accumulated rows into a report.
func (a *Aggregator) Finalize(now time.Time) internal.ResolutionReport {
	rows := make([]internal.ReportRow, len(a.rows))
	copy(rows, a.rows)
	return internal.ResolutionReport{
		Rows:          rows,
		GeneratedAt:   now,
		TotalDetected: len(rows),
		SuccessCount:  a.success,
		FailCount:     a.fail,
		TotalValue:    a.total,
	}
}

// Render produces the tab-separated report text. Other tooling parses this
// format, so the layout is fixed: header, one row per item, a blank line,
// then the summary block.
func (a *Aggregator) Render(report internal.ResolutionReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Item Name\tPrice (%s)\n", a.label)
	for _, row := range report.Rows {
		fmt.Fprintf(&b, "%s\t%s\n", row.Name, row.Display)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Total Items OCR-detected: %d\n", report.TotalDetected)
	fmt.Fprintf(&b, "Success: %d\n", report.SuccessCount)
	fmt.Fprintf(&b, "Failed: %d\n", report.FailCount)
	fmt.Fprintf(&b, "Total Value (parsed sum): %s%s\n", a.symbol, a.printer.Sprintf("%.2f", report.TotalValue))
	return b.String()
}
