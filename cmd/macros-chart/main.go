// Package main exports the trailing-week macronutrient chart without
// starting the interactive screen.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"macros/internal/chart"
	"macros/internal/cli"
	"macros/internal/log"
)

func main() {
	// Load .env file for local development (ignore errors in production)
	cli.LoadEnvFile()

	// Load and validate configuration
	cfg := cli.LoadAndValidateConfig()

	days := flag.Int("days", cfg.WindowDays, "trailing window to chart, in days")
	out := flag.String("out", cfg.ChartDir, "directory the chart image is written to")
	flag.Parse()

	if *days < 1 {
		fmt.Fprintln(os.Stderr, "days must be at least 1")
		os.Exit(2)
	}

	logger, closeLogger := cli.SetupLogger(cfg, false)
	defer closeLogger()

	ctx := context.Background()
	result := cli.InitBackend(ctx, logger, cfg)

	path, err := chart.NewRenderer(result.Backend, logger).RenderWeekly(ctx, *out, *days)
	switch {
	case errors.Is(err, chart.ErrNoData):
		fmt.Printf("No entries found for the last %d days.\n", *days)
	case errors.Is(err, chart.ErrNoValidData):
		fmt.Printf("No valid entries found for the last %d days after processing.\n", *days)
	case err != nil:
		logger.Error("Chart export failed", log.FieldError, err)
		fmt.Fprintf(os.Stderr, "Failed to save chart: %v\n", err)
		os.Exit(1)
	default:
		fmt.Printf("Chart saved to %s\n", path)
	}
}
