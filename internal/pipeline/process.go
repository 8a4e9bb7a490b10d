package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"marketscan/internal"
	"marketscan/internal/config"
	"marketscan/internal/market"
)

// Service drives the pipeline: normalize, resolve each candidate strictly in
// sequence, aggregate. Sequential processing is a design constraint: the
// market penalizes bursty callers.
type Service struct {
	cfg      config.Config
	resolver *market.Resolver
	pacer    *market.Pacer
	metrics  *market.Metrics
	loc      *time.Location
}

func NewService(cfg config.Config) (*Service, error) {
	loc, err := time.LoadLocation(cfg.ReportTimezone)
	if err != nil {
		return nil, fmt.Errorf("load report timezone: %w", err)
	}

	metrics := market.NewMetrics()
	pacer := market.NewPacer(cfg)
	client := market.NewClient(cfg)

	return &Service{
		cfg:      cfg,
		resolver: market.NewResolver(cfg, client, pacer, metrics),
		pacer:    pacer,
		metrics:  metrics,
		loc:      loc,
	}, nil
}

// Metrics exposes the resolver's registry for embedding programs.
func (s *Service) Metrics() *market.Metrics {
	return s.metrics
}

// Run resolves every candidate in input order and always finalizes a report
// for the items processed. Cancellation is honored between items only, never
// mid-retry; on early abort the partial report is returned with the context
// error.
func (s *Service) Run(ctx context.Context, rawNames []string) (internal.ResolutionReport, error) {
	candidates := NormalizeCandidates(rawNames)
	agg := NewAggregator(s.cfg)

	var runErr error
	for _, item := range candidates {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		quote := s.resolver.Resolve(ctx, item)
		agg.Append(quote)
		slog.Debug("item resolved",
			"name", item.Name,
			"status", string(quote.Status),
			"price", quote.DisplayText,
		)

		s.pacer.AfterItem(quote.Status == internal.StatusFound)
	}

	return agg.Finalize(time.Now().In(s.loc)), runErr
}

// Render produces the report artifact text.
func (s *Service) Render(report internal.ResolutionReport) string {
	return NewAggregator(s.cfg).Render(report)
}

// WriteReport writes the rendered report. A write failure here is fatal to
// the run, unlike any per-item resolution error.
func (s *Service) WriteReport(report internal.ResolutionReport, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outputPath, []byte(s.Render(report)), 0o644)
}

// DefaultReportFilename names the artifact the way downstream tooling expects.
func DefaultReportFilename(now time.Time) string {
	return "Price_Report_" + now.Format("2006-01-02_15-04") + ".txt"
}
