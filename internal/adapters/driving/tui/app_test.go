package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/folio/internal/core/domain"
)

func newTestApp(t *testing.T, rec *MockRecommendService) *App {
	t.Helper()
	if rec == nil {
		rec = &MockRecommendService{}
	}
	app, err := NewApp(NewPorts(rec, &MockSettingsService{}))
	require.NoError(t, err)
	app.SetDimensions(100, 40)
	return app
}

// run executes cmd and feeds its message back into the app, one level deep.
func run(app *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				app.Update(c())
			}
		}
		return
	}
	app.Update(msg)
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(NewPorts(&MockRecommendService{}, &MockSettingsService{}))

	require.NoError(t, err)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingRecommendService)
	assert.Nil(t, app)
}

func TestApp_InitAndContext(t *testing.T) {
	app := newTestApp(t, nil)
	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("k"), "v")

	assert.Equal(t, app, app.WithContext(ctx))
	assert.NotNil(t, app.Init())
}

func TestApp_WindowSize(t *testing.T) {
	app, err := NewApp(NewPorts(&MockRecommendService{}, &MockSettingsService{}))
	require.NoError(t, err)

	_, cmd := app.Update(tea.WindowSizeMsg{Width: 90, Height: 30})

	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "Folio")
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t, nil)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_QuitMessage(t *testing.T) {
	app := newTestApp(t, nil)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_MenuToRecommendAndBack(t *testing.T) {
	app := newTestApp(t, nil)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(app, cmd)
	assert.Equal(t, messages.ViewRecommend, app.CurrentView())
	assert.Contains(t, app.View(), "Keywords:")

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	run(app, cmd)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_RecommendFlow(t *testing.T) {
	rec := &MockRecommendService{
		RecommendFunc: func(_ context.Context, genre, keywords string, _ domain.RecommendOptions) (*domain.Recommendation, error) {
			return &domain.Recommendation{
				Genre:    genre,
				Keywords: domain.ParseKeywords(keywords),
				Outcome:  domain.OutcomeRanked,
				Results: []domain.ScoredReview{
					{Match: domain.Match{Review: domain.Review{Title: "Good Omens", Summary: "funny", Score: 5}}, Sentiment: 0.44, TotalScore: 2.72},
				},
				Topics: domain.InsufficientTopics(),
			}, nil
		},
	}
	app := newTestApp(t, rec)
	app.Update(messages.ViewChanged{View: messages.ViewRecommend})

	for _, r := range "humor" {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	for _, r := range "funny" {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(app, cmd)

	require.NoError(t, app.Err())
	require.Len(t, app.RecommendView().Results(), 1)
	assert.Contains(t, app.View(), "Good Omens")
}

func TestApp_RecommendError(t *testing.T) {
	rec := &MockRecommendService{
		RecommendFunc: func(context.Context, string, string, domain.RecommendOptions) (*domain.Recommendation, error) {
			return nil, errors.New("partition corrupt")
		},
	}
	app := newTestApp(t, rec)
	app.Update(messages.ViewChanged{View: messages.ViewRecommend})
	app.RecommendView().SetGenre("fiction")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(app, cmd)

	require.Error(t, app.Err())
	assert.Contains(t, app.View(), "partition corrupt")
}

func TestApp_GenreSelectionPrefillsRecommend(t *testing.T) {
	app := newTestApp(t, nil)

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewGenres})
	run(app, cmd)
	assert.Equal(t, messages.ViewGenres, app.CurrentView())
	assert.Contains(t, app.View(), "2 reviews")

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(app, cmd)

	assert.Equal(t, messages.ViewRecommend, app.CurrentView())
	assert.Equal(t, "fiction", app.RecommendView().Genre())
}

func TestApp_SettingsView(t *testing.T) {
	app := newTestApp(t, nil)

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewSettings})
	run(app, cmd)

	assert.Equal(t, messages.ViewSettings, app.CurrentView())
	assert.Contains(t, app.View(), "Match threshold")
}

func TestApp_HelpView(t *testing.T) {
	app := newTestApp(t, nil)

	app.Update(messages.ViewChanged{View: messages.ViewHelp})
	assert.Contains(t, app.View(), "Help")

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Equal(t, messages.ViewHelp, app.CurrentView())

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t, nil)
	app.Update(messages.ViewChanged{View: messages.ViewRecommend})

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
	assert.EqualError(t, app.RecommendView().Err(), "boom")
}
