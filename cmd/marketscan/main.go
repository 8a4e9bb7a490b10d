package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"marketscan/internal"
	"marketscan/internal/config"
	"marketscan/internal/market"
	"marketscan/internal/pipeline"
	"marketscan/internal/scan"
	"marketscan/internal/util"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := os.Args[1]
	switch cmd {
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "names file, one per line ('-' for stdin)")
		output := fs.String("output", "", "report path (default: timestamped file in OUTPUT_DIR)")
		xlsxOut := fs.String("xlsx", "", "optional xlsx export path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}
		names, err := readNames(*input)
		must(err)
		runPipeline(ctx, cfg, names, *output, *xlsxOut)
	case "scan":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		image := fs.String("image", "", "screenshot path")
		output := fs.String("output", "", "report path (default: timestamped file in OUTPUT_DIR)")
		xlsxOut := fs.String("xlsx", "", "optional xlsx export path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*image) == "" {
			must(fmt.Errorf("--image is required"))
		}
		recognizer := scan.NewCommandRecognizer(cfg.OCRCommand, cfg.OCRArgs)
		names, err := recognizer.RecognizeFile(ctx, *image)
		must(err)
		if len(names) == 0 {
			must(fmt.Errorf("no text items detected in %s", *image))
		}
		runPipeline(ctx, cfg, names, *output, *xlsxOut)
	case "price":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		name := fs.String("name", "", "item name")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*name) == "" {
			must(fmt.Errorf("--name is required"))
		}
		client := market.NewClient(cfg)
		resolver := market.NewResolver(cfg, client, market.NewPacer(cfg), market.NewMetrics())
		quote := resolver.Resolve(ctx, internal.ItemCandidate{RawText: *name, Name: util.CleanItemName(*name)})
		if quote.Parsed {
			fmt.Printf("%s\t%s\t(parsed %.2f)\n", quote.Item.Name, quote.DisplayText, quote.ParsedValue)
		} else {
			fmt.Printf("%s\t%s\n", quote.Item.Name, quote.DisplayText)
		}
	case "listen":
		messenger, err := makeMessenger(cfg)
		must(err)
		svc, err := pipeline.NewService(cfg)
		must(err)
		recognizer := scan.NewCommandRecognizer(cfg.OCRCommand, cfg.OCRArgs)
		listener := scan.NewListener(cfg, messenger, recognizer, svc)
		must(listener.Run(ctx))
	default:
		usage()
		os.Exit(1)
	}
}

func runPipeline(ctx context.Context, cfg config.Config, names []string, outputPath, xlsxPath string) {
	svc, err := pipeline.NewService(cfg)
	must(err)

	report, err := svc.Run(ctx, names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run aborted after %d items: %v\n", report.TotalDetected, err)
	}

	if strings.TrimSpace(outputPath) == "" {
		outputPath = filepath.Join(cfg.OutputDir, pipeline.DefaultReportFilename(report.GeneratedAt))
	}
	must(svc.WriteReport(report, outputPath))
	if strings.TrimSpace(xlsxPath) != "" {
		must(pipeline.ExportReportToXLSX(report, xlsxPath))
	}
	fmt.Printf("run done items=%d success=%d failed=%d output=%s\n",
		report.TotalDetected, report.SuccessCount, report.FailCount, outputPath)
}

// makeMessenger mirrors the recognizer setup, but no chat transport ships in
// this binary; embedding programs register their own scan.Messenger.
func makeMessenger(cfg config.Config) (scan.Messenger, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.MessengerProvider)) {
	default:
		return nil, fmt.Errorf("unsupported messenger provider: %q", cfg.MessengerProvider)
	}
}

func readNames(input string) ([]string, error) {
	var data []byte
	var err error
	if input == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

func usage() {
	fmt.Println("usage: marketscan <command>")
	fmt.Println("commands:")
	fmt.Println("  run --input=names.txt [--output=report.txt] [--xlsx=report.xlsx]")
	fmt.Println("  scan --image=shot.png [--output=report.txt] [--xlsx=report.xlsx]")
	fmt.Println("  price --name=\"Item Name\"")
	fmt.Println("  listen")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
