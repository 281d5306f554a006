// Package cli provides the folio command line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services injected before a command runs.
var (
	recommendService driving.RecommendationService
	partitionService driving.PartitionService
	settingsService  driving.SettingsService
)

// Global flags.
var (
	verbose   bool
	configDir string
	backend   string
)

// Options carries the global flags into a ServiceFactory.
type Options struct {
	// ConfigDir overrides the configuration directory. Empty means ~/.folio.
	ConfigDir string

	// Backend overrides partitions.backend for this run. Empty means the configured one.
	Backend domain.PartitionBackend
}

// Services is the set of driving ports the commands use.
type Services struct {
	Recommend driving.RecommendationService
	Partition driving.PartitionService
	Settings  driving.SettingsService
}

// ServiceFactory builds the services for one invocation. The returned
// func releases whatever the services hold open.
type ServiceFactory func(opts Options) (*Services, func() error, error)

var (
	serviceFactory ServiceFactory
	closeServices  func() error
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Genre book recommendations from reader reviews",
	Long: `Folio recommends books within a genre by matching your keywords against
reader review summaries, weighting each match by review score and sentiment,
and summarising the themes of the top results.

Run 'folio partition <raw.csv>' once to split a review corpus into per-genre
partitions, then 'folio recommend <genre> <keywords...>'.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.folio)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "partition backend for this run (csv|sqlite)")
}

// SetVersion sets the version reported by 'folio version'.
func SetVersion(v string) {
	version = v
}

// SetServiceFactory registers the factory run before each command.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetServices injects services directly.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	recommendService = s.Recommend
	partitionService = s.Partition
	settingsService = s.Settings
}

// Execute runs the root command and releases services afterwards.
func Execute(ctx context.Context) error {
	defer func() {
		if closeServices == nil {
			return
		}
		if err := closeServices(); err != nil {
			logger.Warn("closing services: %v", err)
		}
		closeServices = nil
	}()
	return rootCmd.ExecuteContext(ctx)
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	opts := Options{ConfigDir: configDir}
	if backend != "" {
		b := domain.PartitionBackend(backend)
		if !b.IsValid() {
			return fmt.Errorf("%w: unknown backend %q", domain.ErrInvalidInput, backend)
		}
		opts.Backend = b
	}

	if serviceFactory == nil {
		return nil
	}

	services, closer, err := serviceFactory(opts)
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	SetServices(services)
	closeServices = closer
	return nil
}
