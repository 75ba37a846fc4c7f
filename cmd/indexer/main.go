package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/hospital-locator/backend/internal/adapters/directory"
	"github.com/zatekoja/hospital-locator/backend/internal/adapters/search"
	"github.com/zatekoja/hospital-locator/backend/internal/application/services"
	"github.com/zatekoja/hospital-locator/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/hospital-locator/backend/internal/infrastructure/observability"
	"github.com/zatekoja/hospital-locator/backend/pkg/config"
)

func main() {
	var reset bool
	var intervalFlag string
	flag.BoolVar(&reset, "reset", false, "delete the existing Typesense collection before reindexing")
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		observability.InitLogger(observability.LoggerOptions{ServiceName: "hospital-locator-indexer"})
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	observability.InitLogger(observability.LoggerOptions{
		ServiceName:    cfg.OTEL.ServiceName + "-indexer",
		ServiceVersion: cfg.OTEL.ServiceVersion,
		Env:            cfg.Server.Env,
		Level:          cfg.Server.LogLevel,
		Fields:         map[string]interface{}{"collection": search.CollectionName},
	})

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	if intervalValue != "" {
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			log.Fatal().Err(err).Str("interval", intervalValue).Msg("Invalid interval")
		}
		if interval <= 0 {
			log.Fatal().Msg("Interval must be greater than zero")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx, cfg, reset); err != nil {
			log.Error().Err(err).Msg("Reindex failed")
		}

		if interval <= 0 {
			break
		}

		reset = false
		log.Info().Dur("next_run_in", interval).Msg("Reindex complete")

		select {
		case <-ctx.Done():
			log.Info().Msg("Reindexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

func indexOnce(ctx context.Context, cfg *config.Config, reset bool) error {
	dir, err := directory.LoadDefault()
	if err != nil {
		return err
	}

	tsClient, err := typesense.NewClient(ctx, &cfg.Typesense)
	if err != nil {
		return err
	}
	adapter := search.NewTypesenseAdapter(tsClient)

	if reset || os.Getenv("RESET_TYPESENSE") == "true" {
		log.Info().Str("collection", search.CollectionName).Msg("Reset requested, deleting collection")
		if err := adapter.Drop(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to delete collection")
		}
	}

	_, err = services.NewDirectoryIndexer(dir, adapter).IndexAll(ctx)
	return err
}
