package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/time/rate"

	"github.com/repolens/repolens/gitapi"
	"github.com/repolens/repolens/gitapi/transport"
	"github.com/repolens/repolens/internal/collector"
	"github.com/repolens/repolens/internal/config"
	"github.com/repolens/repolens/internal/store/postgres"
	"github.com/repolens/repolens/repos"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	owner := flag.String("owner", "", "GitHub user or organization to snapshot")
	concurrency := flag.Int64("concurrency", collector.DefaultMaxConcurrentFetches, "Concurrent repository fetches")
	rps := flag.Float64("rps", 5, "Maximum API requests per second")
	flag.Parse()

	if *owner == "" {
		fmt.Fprintln(os.Stderr, "Usage: collector -owner <user-or-org> [flags]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	slog.Info("starting collector", "owner", *owner)

	cfg, err := config.LoadCollector()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, *owner, *concurrency, *rps, logger); err != nil {
		slog.Error("collection failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.CollectorConfig, owner string, concurrency int64, rps float64, logger *slog.Logger) error {
	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	slog.Info("postgres connected")

	rt := transport.NewRateLimit(nil, rate.NewLimiter(rate.Limit(rps), 1))
	rt = transport.NewRetry(rt, transport.DefaultRetryPolicy())
	rt = transport.NewLogging(rt, logger)

	var auth gitapi.Auth
	if cfg.Token != "" {
		auth = gitapi.TokenAuth{Token: cfg.Token}
	}
	api, err := gitapi.New(cfg.APIBaseURL,
		gitapi.WithHTTPClient(&http.Client{Transport: rt}),
		gitapi.WithAuth(auth),
	)
	if err != nil {
		return fmt.Errorf("create API client: %w", err)
	}

	c := collector.New(
		repos.NewClient(api),
		postgres.NewSnapshotStore(pool),
		logger,
		collector.WithMaxConcurrent(concurrency),
	)

	collected, err := c.Run(ctx, owner)
	if err != nil {
		return err
	}

	slog.Info("collection finished", "owner", owner, "snapshots", collected)
	return nil
}
