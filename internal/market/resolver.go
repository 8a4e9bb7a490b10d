package market

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"marketscan/internal"
	"marketscan/internal/config"
	"marketscan/internal/util"
)

// PriceSource is the external market lookup the resolver queries.
type PriceSource interface {
	PriceOverview(ctx context.Context, name string) (string, error)
}

var reQuantityPrefix = regexp.MustCompile(`(?i)^x\s*\d+\s*`)

// StripQuantityPrefix removes a leading stack marker like "x5 " from a name.
// The recognizer sometimes merges the stack count into the name block.
func StripQuantityPrefix(name string) string {
	return strings.TrimSpace(reQuantityPrefix.ReplaceAllString(name, ""))
}

type stageOutcome int

const (
	stagePriced stageOutcome = iota
	stageNotListed
	stageExhausted
)

// Resolver runs the per-item lookup state machine: bounded primary attempts,
// then a single fallback attempt with the quantity marker stripped.
type Resolver struct {
	source  PriceSource
	pacer   *Pacer
	metrics *Metrics
	retries int
}

func NewResolver(cfg config.Config, source PriceSource, pacer *Pacer, metrics *Metrics) *Resolver {
	retries := cfg.MaxRetries
	if retries < 1 {
		retries = 1
	}
	return &Resolver{source: source, pacer: pacer, metrics: metrics, retries: retries}
}

// Resolve produces exactly one PriceQuote for the candidate. It never fails
// the run: every outcome is encoded in the quote status.
func (r *Resolver) Resolve(ctx context.Context, item internal.ItemCandidate) internal.PriceQuote {
	quote := internal.PriceQuote{Item: item}

	price, outcome := r.runStage(ctx, item.Name, r.retries, "primary")
	sawNotListed := outcome == stageNotListed
	if outcome != stagePriced {
		alt := StripQuantityPrefix(item.Name)
		price, outcome = r.runStage(ctx, alt, 1, "fallback")
		sawNotListed = sawNotListed || outcome == stageNotListed
	}

	if outcome == stagePriced {
		quote.Status = internal.StatusFound
		quote.DisplayText = price
		if parsed, ok := util.ParsePrice(price); ok {
			quote.ParsedValue = parsed
			quote.Parsed = true
		} else {
			slog.Warn("unparsable price string", "name", item.Name, "price", price)
		}
	} else {
		quote.DisplayText = internal.NotFoundMarker
		if sawNotListed {
			quote.Status = internal.StatusNotListed
		} else {
			quote.Status = internal.StatusFetchError
		}
	}

	r.metrics.IncResolved(string(quote.Status))
	return quote
}

func (r *Resolver) runStage(ctx context.Context, name string, attempts int, stage string) (string, stageOutcome) {
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			r.metrics.IncRetries()
		}
		r.metrics.IncRequest(stage)

		start := time.Now()
		price, err := r.source.PriceOverview(ctx, name)
		r.metrics.ObserveDuration(time.Since(start))

		if err == nil {
			return price, stagePriced
		}
		if errors.Is(err, ErrNoPriceListed) {
			r.metrics.IncError("no_price")
			return "", stageNotListed
		}

		r.metrics.IncError(errorTypeLabel(err))
		slog.Debug("price lookup failed",
			"name", name,
			"stage", stage,
			"attempt", attempt,
			"error", err,
		)
		r.pacer.AfterAttemptFailure()
	}
	return "", stageExhausted
}
