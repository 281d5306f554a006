package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/folio/internal/core/domain"
)

// defaultWidth is used when stdout is not a terminal.
const defaultWidth = 100

var (
	recommendLimit int
	recommendJSON  bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <genre> [keywords...]",
	Short: "Recommend books in a genre",
	Long: `Recommends up to ten books in a genre whose review summaries match any
of the keywords. Matching tolerates small spelling differences.

Each match is ranked by the mean of its review score and the sentiment of
its summary. Genres with spaces must be quoted.

Examples:
  folio recommend fiction funny heartwarming
  folio recommend "true crime" chilling --limit 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", domain.MaxResults, "maximum number of results (1-10)")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if recommendService == nil {
		return errors.New("recommend service not configured")
	}

	genre := args[0]
	keywords := strings.Join(args[1:], " ")

	rec, err := recommendService.Recommend(cmd.Context(), genre, keywords, domain.RecommendOptions{Limit: recommendLimit})
	if err != nil {
		return fmt.Errorf("recommend failed: %w", err)
	}

	if recommendJSON {
		return outputRecommendJSON(cmd, rec)
	}
	outputRecommendTable(cmd, rec, terminalWidth())
	return nil
}

type recommendJSONResult struct {
	Rank       int     `json:"rank"`
	Title      string  `json:"title"`
	Summary    string  `json:"summary"`
	Publisher  string  `json:"publisher,omitempty"`
	Categories string  `json:"categories"`
	Score      float64 `json:"score"`
	Sentiment  float64 `json:"sentiment"`
	TotalScore float64 `json:"total_score"`
}

type recommendJSONOutput struct {
	QueryID  string                `json:"query_id"`
	Genre    string                `json:"genre"`
	Keywords []string              `json:"keywords"`
	Outcome  domain.Outcome        `json:"outcome"`
	Results  []recommendJSONResult `json:"results"`
	Topics   struct {
		Status domain.TopicStatus `json:"status"`
		Text   string             `json:"text"`
	} `json:"topics"`
}

func outputRecommendJSON(cmd *cobra.Command, rec *domain.Recommendation) error {
	out := recommendJSONOutput{
		QueryID:  rec.QueryID,
		Genre:    rec.Genre,
		Keywords: rec.Keywords,
		Outcome:  rec.Outcome,
		Results:  make([]recommendJSONResult, 0, len(rec.Results)),
	}
	if out.Keywords == nil {
		out.Keywords = []string{}
	}
	for i := range rec.Results {
		r := &rec.Results[i]
		out.Results = append(out.Results, recommendJSONResult{
			Rank:       i + 1,
			Title:      r.Title,
			Summary:    r.Summary,
			Publisher:  r.Publisher,
			Categories: r.Categories,
			Score:      r.Score,
			Sentiment:  r.Sentiment,
			TotalScore: r.TotalScore,
		})
	}
	out.Topics.Status = rec.Topics.Status
	out.Topics.Text = rec.Topics.Text

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecommendTable(cmd *cobra.Command, rec *domain.Recommendation, width int) {
	if rec.Outcome != domain.OutcomeRanked {
		cmd.Println(rec.Outcome.Description())
		return
	}

	cmd.Printf("Recommendations for %q (%s):\n", rec.Genre, rec.Keywords)
	cmd.Println()
	for i := range rec.Results {
		r := &rec.Results[i]
		cmd.Printf("  [%d] %s\n", i+1, r.Title)
		cmd.Printf("      score %.1f  sentiment %+.3f  total %.3f\n", r.Score, r.Sentiment, r.TotalScore)
		if r.Summary != "" {
			cmd.Printf("      %s\n", truncate(r.Summary, width-6))
		}
	}
	cmd.Println()

	if rec.Topics.Status != domain.TopicStatusOK {
		cmd.Println(rec.Topics.Text)
		return
	}
	cmd.Println("Topics:")
	for _, label := range rec.Topics.Labels {
		cmd.Printf("  %s\n", label)
	}
}

// terminalWidth returns the stdout width, or defaultWidth when stdout is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func truncate(s string, maxLen int) string {
	if maxLen < 4 {
		maxLen = 4
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
