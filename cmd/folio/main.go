// Command folio recommends books within a genre from reader reviews.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/folio/internal/adapters/driven/config/file"
	"github.com/custodia-labs/folio/internal/adapters/driven/matcher/fuzzy"
	"github.com/custodia-labs/folio/internal/adapters/driven/partition/csvfile"
	"github.com/custodia-labs/folio/internal/adapters/driven/partition/sqlite"
	"github.com/custodia-labs/folio/internal/adapters/driven/sentiment/vader"
	"github.com/custodia-labs/folio/internal/adapters/driven/topics/lda"
	"github.com/custodia-labs/folio/internal/adapters/driving/cli"
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/core/services"
	"github.com/custodia-labs/folio/internal/logger"
	"github.com/custodia-labs/folio/internal/normalisers/label"
)

// Set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// partitionBackend is a store that can both read and write partitions.
type partitionBackend interface {
	driven.PartitionStore
	driven.PartitionWriter
}

func buildServices(opts cli.Options) (*cli.Services, func() error, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}
	if opts.Backend != "" {
		settings.Partitions.Backend = opts.Backend
	}
	logger.Debug("config: %s, backend: %s", configStore.Path(), settings.Partitions.Backend)

	store, closeStore, err := openPartitions(settings.Partitions)
	if err != nil {
		return nil, nil, err
	}

	scorer := vader.New()

	recommendService := services.NewRecommendationService(
		store,
		fuzzy.New(settings.Matching.Threshold),
		scorer,
		lda.New(lda.Options{
			Seed:       settings.Topics.Seed,
			Iterations: settings.Topics.Iterations,
			Stem:       settings.Topics.Stem,
		}),
	)
	recommendService.SetResultLimit(settings.Ranking.Limit)

	partitionService := services.NewPartitionService(csvfile.NewCodec(), label.New(), store)

	return &cli.Services{
		Recommend: recommendService,
		Partition: partitionService,
		Settings:  settingsService,
	}, closeStore, nil
}

func openPartitions(cfg domain.PartitionSettings) (partitionBackend, func() error, error) {
	switch cfg.Backend {
	case domain.PartitionBackendSQLite:
		store, err := sqlite.NewStore(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("opening partition database: %w", err)
		}
		logger.Debug("partitions: %s", store.Path())
		return store, store.Close, nil
	default:
		store, err := csvfile.NewStore(cfg.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening partition directory: %w", err)
		}
		logger.Debug("partitions: %s", store.Dir())
		return store, func() error { return nil }, nil
	}
}
