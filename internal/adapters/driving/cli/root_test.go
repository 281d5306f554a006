package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/services"
)

// mockRecommendService implements driving.RecommendationService.
type mockRecommendService struct {
	recommendation *domain.Recommendation
	genres         []domain.GenreInfo
	err            error

	lastGenre    string
	lastKeywords string
	lastOpts     domain.RecommendOptions
}

func (m *mockRecommendService) Recommend(
	_ context.Context, genre, keywords string, opts domain.RecommendOptions,
) (*domain.Recommendation, error) {
	m.lastGenre, m.lastKeywords, m.lastOpts = genre, keywords, opts
	if m.err != nil {
		return nil, m.err
	}
	return m.recommendation, nil
}

func (m *mockRecommendService) Genres(context.Context) ([]domain.GenreInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.genres, nil
}

// mockPartitionService implements driving.PartitionService.
type mockPartitionService struct {
	report *domain.PartitionReport
	err    error
	input  string
}

func (m *mockPartitionService) Partition(_ context.Context, r io.Reader) (*domain.PartitionReport, error) {
	data, _ := io.ReadAll(r)
	m.input = string(data)
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

type testServices struct {
	recommend *mockRecommendService
	partition *mockPartitionService
	settings  *services.SettingsService
	config    *memory.ConfigStore
}

var testMocks *testServices

func rankedRecommendation() *domain.Recommendation {
	return &domain.Recommendation{
		QueryID:  "q-1",
		Genre:    "fiction",
		Keywords: domain.Keywords{"funny"},
		Outcome:  domain.OutcomeRanked,
		Results: []domain.ScoredReview{
			{
				Match:      domain.Match{Review: domain.Review{Title: "Good Omens", Summary: "funny and wise", Score: 5, Publisher: "Gollancz", Categories: "fiction"}, KeywordMatch: true},
				Sentiment:  0.44,
				TotalScore: 2.72,
			},
			{
				Match:      domain.Match{Review: domain.Review{Title: "Wyrd Sisters", Summary: "funny witches", Score: 4, Categories: "fiction"}, KeywordMatch: true},
				Sentiment:  0.2,
				TotalScore: 2.1,
			},
		},
		Topics: domain.NewTopicSummary([]domain.TopicLabel{{Index: 1, Words: []string{"witches", "wise"}}}),
	}
}

// setupTestServices installs mock services and resets flag state.
// The returned func restores the previous services.
func setupTestServices() func() {
	prevRec, prevPart, prevSet := recommendService, partitionService, settingsService
	prevFactory := serviceFactory

	config := memory.NewConfigStore()
	testMocks = &testServices{
		recommend: &mockRecommendService{
			recommendation: rankedRecommendation(),
			genres: []domain.GenreInfo{
				{Name: "fiction", Available: true, Reviews: 120},
				{Name: "history", Available: false},
			},
		},
		partition: &mockPartitionService{
			report: &domain.PartitionReport{
				RowsRead:     5,
				Written:      map[string]int{"fiction": 3, "history": 1},
				Skipped:      []string{"poetry"},
				Unrecognised: 1,
			},
		},
		settings: services.NewSettingsService(config),
		config:   config,
	}

	serviceFactory = nil
	SetServices(&Services{
		Recommend: testMocks.recommend,
		Partition: testMocks.partition,
		Settings:  testMocks.settings,
	})

	recommendJSON = false
	recommendLimit = domain.MaxResults
	backend = ""
	verbose = false
	resetHelpFlags(rootCmd)

	return func() {
		recommendService, partitionService, settingsService = prevRec, prevPart, prevSet
		serviceFactory = prevFactory
		testMocks = nil
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		recommendJSON = false
		recommendLimit = domain.MaxResults
		backend = ""
		resetHelpFlags(rootCmd)
	}
}

// resetHelpFlags clears --help on cmd and its subcommands. Cobra keeps
// flag values on the package-level commands between executions.
func resetHelpFlags(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
		f.Changed = false
	}
	for _, sub := range cmd.Commands() {
		resetHelpFlags(sub)
	}
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := Execute(context.Background())
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "folio", rootCmd.Use)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "backend"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"recommend", "genres", "partition", "settings", "tui", "mcp", "version"} {
		assert.True(t, names[want], "%s command should be registered", want)
	}
}

func TestSetServices_NilIsIgnored(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	SetServices(nil)

	assert.NotNil(t, recommendService)
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("1.2.3")

	assert.Equal(t, "1.2.3", version)
}

func TestExecute_FactoryReceivesOptions(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	var got Options
	closed := false
	SetServiceFactory(func(opts Options) (*Services, func() error, error) {
		got = opts
		return &Services{
			Recommend: testMocks.recommend,
			Partition: testMocks.partition,
			Settings:  testMocks.settings,
		}, func() error { closed = true; return nil }, nil
	})

	out, err := execute(t, "--config-dir", "/tmp/folio-test", "--backend", "sqlite", "genres")
	configDir = ""

	require.NoError(t, err)
	assert.Equal(t, "/tmp/folio-test", got.ConfigDir)
	assert.Equal(t, domain.PartitionBackendSQLite, got.Backend)
	assert.True(t, closed, "services should be closed after the command")
	assert.Contains(t, out, "fiction")
}

func TestExecute_FactoryError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	SetServiceFactory(func(Options) (*Services, func() error, error) {
		return nil, nil, errors.New("disk full")
	})

	_, err := execute(t, "genres")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialising services")
	assert.Contains(t, err.Error(), "disk full")
}

func TestExecute_InvalidBackend(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "--backend", "parquet", "genres")

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, strings.Contains(err.Error(), "parquet"))
}
