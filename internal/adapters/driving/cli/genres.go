package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List genres and their partitions",
	Long: `Lists every genre in the vocabulary with the number of reviews in its
partition. Genres without a partition are shown as "no data".`,
	Args: cobra.NoArgs,
	RunE: runGenres,
}

func init() {
	rootCmd.AddCommand(genresCmd)
}

func runGenres(cmd *cobra.Command, _ []string) error {
	if recommendService == nil {
		return errors.New("recommend service not configured")
	}

	genres, err := recommendService.Genres(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list genres: %w", err)
	}

	cmd.Println("Genres:")
	available := 0
	for _, g := range genres {
		if g.Available {
			available++
			cmd.Printf("  %-28s %d reviews\n", g.Name, g.Reviews)
			continue
		}
		cmd.Printf("  %-28s no data\n", g.Name)
	}
	cmd.Println()
	cmd.Printf("%d of %d genres partitioned.\n", available, len(genres))
	return nil
}
