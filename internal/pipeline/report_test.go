package pipeline

import (
	"strings"
	"testing"
	"time"

	"marketscan/internal"
	"marketscan/internal/config"
)

func reportConfig() config.Config {
	return config.Config{CurrencyLabel: "PHP", CurrencySymbol: "₱"}
}

func foundQuote(name, display string, value float64) internal.PriceQuote {
	return internal.PriceQuote{
		Item:        internal.ItemCandidate{Name: name},
		DisplayText: display,
		ParsedValue: value,
		Parsed:      true,
		Status:      internal.StatusFound,
	}
}

func failedQuote(name string, status internal.QuoteStatus) internal.PriceQuote {
	return internal.PriceQuote{
		Item:        internal.ItemCandidate{Name: name},
		DisplayText: internal.NotFoundMarker,
		Status:      status,
	}
}

func TestAggregatorInvariants(t *testing.T) {
	agg := NewAggregator(reportConfig())
	agg.Append(foundQuote("Dota Plus", "₱100.00", 100))
	agg.Append(internal.PriceQuote{
		Item:        internal.ItemCandidate{Name: "Odd Item"},
		DisplayText: "priceless",
		Status:      internal.StatusFound,
	})
	agg.Append(failedQuote("Ghost Item", internal.StatusFetchError))

	report := agg.Finalize(time.Now())

	if report.TotalDetected != 3 || len(report.Rows) != 3 {
		t.Fatalf("row counts wrong: %+v", report)
	}
	if report.SuccessCount != 2 || report.FailCount != 1 {
		t.Fatalf("success=%d fail=%d, want 2/1", report.SuccessCount, report.FailCount)
	}
	if report.SuccessCount+report.FailCount != report.TotalDetected {
		t.Fatalf("count invariant broken: %+v", report)
	}
	// the found-but-unparsable row counts as success yet contributes zero
	if report.TotalValue != 100 {
		t.Fatalf("total = %v, want 100", report.TotalValue)
	}
}

func TestAggregatorPreservesDuplicateOrder(t *testing.T) {
	agg := NewAggregator(reportConfig())
	agg.Append(foundQuote("Gem", "₱5.00", 5))
	agg.Append(failedQuote("Gem", internal.StatusNotListed))
	agg.Append(foundQuote("Gem", "₱6.00", 6))

	report := agg.Finalize(time.Now())
	if len(report.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(report.Rows))
	}
	displays := []string{"₱5.00", internal.NotFoundMarker, "₱6.00"}
	for i, row := range report.Rows {
		if row.Name != "Gem" || row.Display != displays[i] {
			t.Fatalf("row[%d] = %+v", i, row)
		}
	}
}

func TestRenderReportFormat(t *testing.T) {
	agg := NewAggregator(reportConfig())
	agg.Append(foundQuote("Dota Plus", "₱2,400.00", 2400))
	agg.Append(foundQuote("Gem", "₱50.00", 50))
	agg.Append(failedQuote("Unknown Item", internal.StatusFetchError))

	generated := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	report := agg.Finalize(generated)
	rendered := agg.Render(report)

	want := strings.Join([]string{
		"Item Name\tPrice (PHP)",
		"Dota Plus\t₱2,400.00",
		"Gem\t₱50.00",
		"Unknown Item\t" + internal.NotFoundMarker,
		"",
		"Generated: 2026-08-29 14:30",
		"Total Items OCR-detected: 3",
		"Success: 2",
		"Failed: 1",
		"Total Value (parsed sum): ₱2,450.00",
		"",
	}, "\n")

	if rendered != want {
		t.Fatalf("rendered:\n%q\nwant:\n%q", rendered, want)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	agg := NewAggregator(reportConfig())
	agg.Append(foundQuote("Gem", "₱5.00", 5))
	report := agg.Finalize(time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC))

	if agg.Render(report) != agg.Render(report) {
		t.Fatalf("render is not deterministic")
	}
}
