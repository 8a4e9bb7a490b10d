package scan

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"marketscan/internal"
	"marketscan/internal/config"
	"marketscan/internal/pipeline"
)

// Listener polls the messenger for incoming images, runs each through the
// pipeline and replies with a summary plus the report file. Cycle errors are
// logged and the loop continues.
type Listener struct {
	cfg       config.Config
	messenger Messenger
	recognize Recognizer
	pipe      *pipeline.Service
}

func NewListener(cfg config.Config, messenger Messenger, recognizer Recognizer, pipe *pipeline.Service) *Listener {
	return &Listener{cfg: cfg, messenger: messenger, recognize: recognizer, pipe: pipe}
}

func (l *Listener) Run(ctx context.Context) error {
	for {
		if err := l.runCycle(ctx); err != nil {
			slog.Error("listener cycle error", "error", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(time.Duration(l.cfg.ListenIntervalSec) * time.Second):
		}
	}
}

func (l *Listener) runCycle(ctx context.Context) error {
	messages, err := l.messenger.FetchImages(ctx, l.cfg.ListenFetchMax)
	if err != nil {
		return err
	}

	for _, msg := range messages {
		if err := l.handleImage(ctx, msg); err != nil {
			slog.Error("image processing failed", "message_id", msg.ID, "error", err)
			_ = l.messenger.SendText(ctx, msg.ChatID, fmt.Sprintf("Failed to process image: %v", err))
		}
	}
	return nil
}

func (l *Listener) handleImage(ctx context.Context, msg ImageMessage) error {
	_ = l.messenger.SendText(ctx, msg.ChatID, "Received image. Processing... This may take a while.")

	names, err := l.recognize.RecognizeFile(ctx, msg.ImagePath)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return l.messenger.SendText(ctx, msg.ChatID, "No text items detected in the image.")
	}

	report, err := l.pipe.Run(ctx, names)
	if err != nil {
		return err
	}

	outputPath := filepath.Join(l.cfg.OutputDir, "listener", pipeline.DefaultReportFilename(report.GeneratedAt))
	if err := l.pipe.WriteReport(report, outputPath); err != nil {
		return err
	}

	if err := l.messenger.SendText(ctx, msg.ChatID, l.summary(report)); err != nil {
		return err
	}
	return l.messenger.SendFile(ctx, msg.ChatID, outputPath)
}

func (l *Listener) summary(report internal.ResolutionReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ITEM SCAN REPORT (%s)\n\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	for i, row := range report.Rows {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, row.Name, row.Display)
	}
	b.WriteString("\nSummary:\n")
	fmt.Fprintf(&b, "Success: %d\n", report.SuccessCount)
	fmt.Fprintf(&b, "Failed: %d\n", report.FailCount)
	fmt.Fprintf(&b, "Total Value (sum of parsed prices): %s%.2f\n", l.cfg.CurrencySymbol, report.TotalValue)
	return b.String()
}
