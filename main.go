package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripadvisor-scraper/config"
	"tripadvisor-scraper/fetch"
	"tripadvisor-scraper/models"
	"tripadvisor-scraper/scraper/tripadvisor"
	"tripadvisor-scraper/services"
	"tripadvisor-scraper/storage"
	"tripadvisor-scraper/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, logger, os.Stdout)
	stop()
	os.Exit(code)
}

// run executes one batch and returns the process exit code.
func run(ctx context.Context, cfg *config.Config, logger *utils.Logger, out io.Writer) int {
	logger.Info("=== TripAdvisor Hotel Scraper starting ===")
	logger.Info("Config: input %s (column %q) | output %s | fetch: %s | concurrency: %d | timeout: %v",
		cfg.InputPath, cfg.URLColumn, cfg.CSVOutputPath, cfg.FetchMode, cfg.MaxConcurrency, cfg.RequestTimeout)

	rows, err := storage.ReadInput(cfg.InputPath, cfg.URLColumn)
	if err != nil {
		logger.Error("Error opening file: %v", err)
		return 1
	}
	logger.Info("Loaded %d URLs from %s", len(rows), cfg.InputPath)

	fetcher, closeFetcher, err := newFetcher(cfg, logger)
	if err != nil {
		logger.Error("Failed to create fetcher: %v", err)
		return 1
	}
	defer closeFetcher()

	csvWriter := storage.NewCSVWriter(cfg.CSVOutputPath)
	sinks := []storage.RecordWriter{csvWriter}

	var pgWriter *storage.PostgresWriter
	if cfg.PostgresEnabled {
		pgWriter, err = storage.NewPostgresWriter(cfg.DSN(), &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   time.Second,
			Logger:      logger,
		})
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			return 1
		}
		defer pgWriter.Close()
		sinks = append(sinks, pgWriter)
	}

	batch := services.NewBatch(fetcher, tripadvisor.Build, sinks, services.BatchOptions{
		MaxConcurrency: cfg.MaxConcurrency,
		RateLimitMs:    cfg.RateLimitMs,
		FlushPartial:   cfg.FlushPartial,
	}, logger)

	table, report, runErr := batch.Run(ctx, rows)
	if runErr != nil {
		logger.Error("Error in main: %v", runErr)
	}

	if report.Flushed {
		logger.Info("Results saved to %s", csvWriter.Path())
	}

	if pgWriter != nil && report.Flushed {
		stored, err := pgWriter.FetchAll()
		if err != nil {
			logger.Error("Failed to read hotels back from PostgreSQL: %v", err)
		} else if stored.Len() != table.Len() {
			logger.Warn("PostgreSQL holds %d hotels for %d written rows (rows sharing a URL are stored once)",
				stored.Len(), table.Len())
		}
	}

	insightSvc := services.NewInsightService(logger, out)
	insightSvc.Print(insightSvc.Generate(table, report))

	if runErr != nil {
		if errors.Is(runErr, models.ErrFatalBatch) {
			logger.Error("Batch halted before completion.")
		}
		return 1
	}
	return 0
}

func newFetcher(cfg *config.Config, logger *utils.Logger) (fetch.Fetcher, func(), error) {
	switch cfg.FetchMode {
	case config.FetchModeHTTP:
		f := fetch.NewHTTPFetcher(fetch.HTTPOptions{
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.RequestTimeout,
		}, logger)
		return f, func() {}, nil
	case config.FetchModeBrowser:
		f, err := fetch.NewBrowserFetcher(fetch.BrowserOptions{
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.RequestTimeout,
			ChromeBin: cfg.ChromeBin,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown FETCH_MODE %q", cfg.FetchMode)
	}
}
