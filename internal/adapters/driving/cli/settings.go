package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure partition storage, matching, ranking and topic settings.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save it.

Keys:
  partitions.backend   csv | sqlite
  partitions.dir       directory of CSV partitions ("" restores the default)
  partitions.database  SQLite database file ("" restores the default)
  matching.threshold   fuzzy match threshold, 1-100
  ranking.limit        default number of results, 1-10
  topics.seed          random seed for topic extraction
  topics.iterations    sampler sweeps, 1-10000
  topics.stem          true | false`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure partition storage and matching step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Partitions]")
	cmd.Printf("  Backend: %s\n", settings.Partitions.Backend.Description())
	cmd.Printf("  Directory: %s\n", orDefault(settings.Partitions.Dir))
	cmd.Printf("  Database: %s\n", orDefault(settings.Partitions.Database))
	cmd.Println()

	cmd.Println("[Matching]")
	cmd.Printf("  Threshold: %d\n", settings.Matching.Threshold)
	cmd.Println()

	cmd.Println("[Ranking]")
	cmd.Printf("  Limit: %d\n", settings.Ranking.Limit)
	cmd.Println()

	cmd.Println("[Topics]")
	cmd.Printf("  Seed: %d\n", settings.Topics.Seed)
	cmd.Printf("  Iterations: %d\n", settings.Topics.Iterations)
	cmd.Printf("  Stemming: %s\n", yesNo(settings.Topics.Stem))

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := applySetting(key, value); err != nil {
		return err
	}
	cmd.Printf("Set %s to %q\n", key, value)
	return nil
}

// applySetting routes one key to its setter, falling back to Get/Save for
// keys without a dedicated setter.
func applySetting(key, value string) error {
	switch key {
	case "partitions.backend":
		return settingsService.SetPartitionBackend(domain.PartitionBackend(value))
	case "partitions.dir":
		return settingsService.SetPartitionsDir(value)
	case "matching.threshold":
		n, err := parseIntSetting(key, value)
		if err != nil {
			return err
		}
		return settingsService.SetMatchThreshold(n)
	case "ranking.limit":
		n, err := parseIntSetting(key, value)
		if err != nil {
			return err
		}
		return settingsService.SetResultLimit(n)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	switch key {
	case "partitions.database":
		settings.Partitions.Database = value
	case "topics.seed":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		settings.Topics.Seed = n
	case "topics.iterations":
		n, err := parseIntSetting(key, value)
		if err != nil {
			return err
		}
		if n < 1 || n > 10000 {
			return fmt.Errorf("%w: %s outside 1..10000", domain.ErrInvalidInput, key)
		}
		settings.Topics.Iterations = n
	case "topics.stem":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		settings.Topics.Stem = b
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	return settingsService.Save(settings)
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.Reset(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	cmd.Println("Settings restored to defaults.")
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Folio Settings Wizard")
	cmd.Println("=====================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("Step 1: Partition Backend")
	cmd.Println("-------------------------")
	backends := domain.AllPartitionBackends()
	current := 1
	for i, b := range backends {
		if b == settings.Partitions.Backend {
			current = i + 1
		}
		cmd.Printf("  %d. %s\n", i+1, b.Description())
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	settings.Partitions.Backend = backends[parseChoice(readLine(reader), len(backends), current)-1]
	cmd.Printf("Backend: %s\n\n", settings.Partitions.Backend.Description())

	cmd.Println("Step 2: Match Threshold")
	cmd.Println("-----------------------")
	cmd.Println("Similarity (1-100) a keyword needs to match a word in a review.")
	cmd.Printf("\nEnter threshold [%d]: ", settings.Matching.Threshold)
	settings.Matching.Threshold = parseChoice(readLine(reader), 100, settings.Matching.Threshold)
	cmd.Printf("Threshold: %d\n\n", settings.Matching.Threshold)

	cmd.Println("Step 3: Result Limit")
	cmd.Println("--------------------")
	cmd.Printf("\nEnter limit 1-%d [%d]: ", domain.MaxResults, settings.Ranking.Limit)
	settings.Ranking.Limit = parseChoice(readLine(reader), domain.MaxResults, settings.Ranking.Limit)
	cmd.Printf("Limit: %d\n\n", settings.Ranking.Limit)

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Println("Settings saved.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func parseIntSetting(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
	}
	return n, nil
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
