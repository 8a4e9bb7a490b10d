package internal

import "time"

type QuoteStatus string

const (
	StatusFound      QuoteStatus = "FOUND"
	StatusNotListed  QuoteStatus = "NOT_LISTED"
	StatusFetchError QuoteStatus = "FETCH_ERROR"
)

// NotFoundMarker is the display text recorded for items the market could not
// price. Downstream tooling parses report rows, so the marker is fixed.
const NotFoundMarker = "❌ Not found / Error"

// ItemCandidate is one detected text block after normalization. SourceIndex
// is the position in the recognizer output; duplicates stay distinct.
type ItemCandidate struct {
	SourceIndex int
	RawText     string
	Name        string
}

// PriceQuote is the resolver's terminal result for one candidate.
// Parsed is false when DisplayText could not be converted to a number;
// the quote still counts as found in that case.
type PriceQuote struct {
	Item        ItemCandidate
	DisplayText string
	ParsedValue float64
	Parsed      bool
	Status      QuoteStatus
}

type ReportRow struct {
	Name    string
	Display string
	Status  QuoteStatus
}

// ResolutionReport is the aggregate of one run.
// SuccessCount+FailCount == TotalDetected == len(Rows) always holds.
type ResolutionReport struct {
	Rows          []ReportRow
	GeneratedAt   time.Time
	TotalDetected int
	SuccessCount  int
	FailCount     int
	TotalValue    float64
}
