package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio/internal/core/domain"
)

var partitionCmd = &cobra.Command{
	Use:   "partition <raw.csv>",
	Short: "Split a review corpus into genre partitions",
	Long: `Reads a raw review corpus (columns title, categories, review_summary,
review_score, publisher), normalises each row's category label and writes
one partition per recognised genre. Existing partitions are replaced.

Use the global --backend flag to write to a backend other than the
configured one.`,
	Args: cobra.ExactArgs(1),
	RunE: runPartition,
}

func init() {
	rootCmd.AddCommand(partitionCmd)
}

func runPartition(cmd *cobra.Command, args []string) error {
	if partitionService == nil {
		return errors.New("partition service not configured")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	report, err := partitionService.Partition(cmd.Context(), f)
	if err != nil {
		return fmt.Errorf("partition failed: %w", err)
	}

	outputPartitionReport(cmd, report)
	return nil
}

func outputPartitionReport(cmd *cobra.Command, report *domain.PartitionReport) {
	cmd.Printf("Read %d rows.\n", report.RowsRead)
	cmd.Println()

	if len(report.Written) == 0 {
		cmd.Println("No partitions written.")
	} else {
		cmd.Println("Written:")
		for _, g := range domain.Genres {
			if n, ok := report.Written[g]; ok {
				cmd.Printf("  %-28s %d rows\n", g, n)
			}
		}
	}

	if len(report.Skipped) > 0 {
		cmd.Println()
		cmd.Println("Skipped (no rows):")
		for _, g := range report.Skipped {
			cmd.Printf("  %s\n", g)
		}
	}

	if report.Unrecognised > 0 {
		cmd.Println()
		cmd.Printf("%d rows had an unrecognised category and were dropped.\n", report.Unrecognised)
	}
}
