// Command lookup normalizes one address from the command line and prints the
// result as JSON, optionally followed by the generated summary.
//
//	lookup [-summary] "123 Main St, Springfield, IL 62701"
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yourorg/property-insight-api/internal/canon"
	"github.com/yourorg/property-insight-api/internal/config"
	"github.com/yourorg/property-insight-api/internal/logger"
	"github.com/yourorg/property-insight-api/internal/property"
	"github.com/yourorg/property-insight-api/internal/summary"
	"github.com/yourorg/property-insight-api/zillow"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitNotFound = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(stderr)
	withSummary := fs.Bool("summary", false, "also generate the HTML summary")
	timeout := fs.Duration("timeout", 90*time.Second, "overall deadline")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	address := canon.Line(strings.Join(fs.Args(), " "))
	if address == "" {
		fmt.Fprintln(stderr, "usage: lookup [-summary] <address>")
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	// logs go to stderr; stdout carries only the result
	log, err := logger.New(cfg.Logging.Level, "console")
	if err != nil {
		fmt.Fprintf(stderr, "logger init: %v\n", err)
		return exitFailure
	}
	defer func() { _ = log.Sync() }()

	var lookup property.Lookup
	if cfg.Property.Fixture != "" {
		lookup = zillow.Fixture{Path: cfg.Property.Fixture}
	} else {
		lookup = zillow.NewClient(zillow.Config{
			Host:    cfg.Property.Host,
			Key:     cfg.Property.Key,
			BaseURL: cfg.Property.BaseURL,
			Timeout: cfg.Property.Timeout,
		}, log)
	}

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	details, err := property.NewNormalizer(lookup, log).Normalize(ctx, address)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			fmt.Fprintln(stderr, "no property found for", address)
			return exitNotFound
		}
		log.Error("lookup failed", zap.Error(err))
		return exitFailure
	}

	out := map[string]any{"address": address, "details": details}
	if *withSummary {
		gen := summary.NewGenerator(summary.Config{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
			Timeout: cfg.OpenAI.Timeout,
		}, log)
		text, err := gen.Generate(ctx, details)
		if err != nil {
			text = summary.Message(err)
		}
		out["summary"] = text
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Error("write result", zap.Error(err))
		return exitFailure
	}
	return exitOK
}
