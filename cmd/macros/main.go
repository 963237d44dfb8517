// Package main provides the interactive nutrition tracker application.
// It records named entries with their macro and calorie values in a flat
// CSV store and answers listing and statistics queries over them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"macros/internal/chart"
	"macros/internal/cli"
	"macros/internal/log"
	"macros/internal/services"
	"macros/internal/stats"
	"macros/internal/tui"
)

func main() {
	// Load .env file for local development (ignore errors in production)
	cli.LoadEnvFile()

	// Load and validate configuration
	cfg := cli.LoadAndValidateConfig()

	// The terminal belongs to the interactive screen, so log records go to
	// LOG_FILE when configured and are discarded otherwise.
	logger, closeLogger := cli.SetupLogger(cfg, true)
	defer closeLogger()

	// Create context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Initialize the entry store backend
	result := cli.InitBackend(ctx, logger, cfg)
	store := result.Backend

	// The first menu expects a well-formed store to already be there.
	if err := store.EnsureExists(); err != nil {
		logger.Error("Failed to prepare entry store",
			log.FieldError, err,
			log.FieldPath, result.Path)
		fmt.Fprintf(os.Stderr, "prepare entry store: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Starting nutrition tracker",
		log.FieldBackend, cfg.DataBackend,
		log.FieldPath, result.Path)

	executor := tui.NewExecutor(tui.Deps{
		Entries: services.NewEntryService(store, store, store),
		Stats:   stats.NewService(store),
		Chart:   chart.NewRenderer(store, logger),
		Reader:  store,
		Scanner: store,
		Config:  cfg,
		Logger:  logger,
	})

	if err := executor.Run(ctx); err != nil {
		logger.Error("Session ended with error", log.FieldError, err)
		fmt.Fprintf(os.Stderr, "session error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Exiting the Nutrition Tracker. Goodbye!")
	logger.Info("Session ended")
}
