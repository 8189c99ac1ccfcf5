// Package main is the entry point for charcanvas.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/samdwyer/charcanvas/internal/app"
	"github.com/samdwyer/charcanvas/internal/config"
	"github.com/samdwyer/charcanvas/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_CHARCANVAS_API_KEY available
	envErr := godotenv.Load()

	var cfg config.Config
	parser := kong.Must(&cfg,
		kong.Name("charcanvas"),
		kong.Description("Draw lines, rectangles and fills on a character grid."),
		kong.UsageOnError(),
	)

	fileArgs, err := config.LoadFileArgs()
	parser.FatalIfErrorf(err)

	_, err = parser.Parse(append(fileArgs, os.Args[1:]...))
	parser.FatalIfErrorf(err)
	parser.FatalIfErrorf(cfg.Check())

	if err := run(cfg, envErr); err != nil {
		fmt.Fprintf(os.Stderr, "charcanvas: %v\n", err)
		os.Exit(1)
	}
}

// run starts the editor and blocks until the session ends.
func run(cfg config.Config, envErr error) error {
	logger, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closeLog()

	if envErr != nil {
		// Not fatal - env vars might be set directly
		logger.Printf("Note: .env file not loaded: %v", envErr)
	}

	ctx := context.Background()

	if cfg.Telemetry {
		setupOTelEnv()
		if telemetry.Enabled() {
			shutdown, err := telemetry.Setup(ctx, telemetry.FrontendKey.String(cfg.Frontend()))
			if err != nil {
				// Continue without telemetry - the editor still works
				logger.Printf("Warning: telemetry setup failed: %v", err)
			} else {
				defer func() {
					if err := shutdown(ctx); err != nil {
						logger.Printf("Error shutting down telemetry: %v", err)
					}
				}()
			}
		}
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		return err
	}
	return a.Run(ctx)
}

// openLog opens path for appending, or discards the log if path is empty.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "", log.LstdFlags), func() { _ = f.Close() }, nil
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// provided and no endpoint has been configured explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_CHARCANVAS_API_KEY")
	if apiKey == "" {
		return
	}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	dataset := os.Getenv("HONEYCOMB_CHARCANVAS_DATASET")
	if dataset == "" {
		dataset = "charcanvas"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
