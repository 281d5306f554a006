package genres

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

type mockRecommendService struct {
	genres []domain.GenreInfo
	err    error
}

func (m *mockRecommendService) Recommend(
	_ context.Context, _, _ string, _ domain.RecommendOptions,
) (*domain.Recommendation, error) {
	return nil, errors.New("not used")
}

func (m *mockRecommendService) Genres(_ context.Context) ([]domain.GenreInfo, error) {
	return m.genres, m.err
}

func loadedView(t *testing.T, genres []domain.GenreInfo) *View {
	t.Helper()
	view := NewView(nil, &mockRecommendService{genres: genres})
	view.SetDimensions(80, 30)
	msg := view.Init()()
	view.Update(msg)
	return view
}

func TestView_InitLoadsGenres(t *testing.T) {
	view := loadedView(t, []domain.GenreInfo{
		{Name: "fiction", Available: true, Reviews: 12},
		{Name: "law"},
	})

	require.NoError(t, view.Err())
	assert.Len(t, view.Genres(), 2)

	out := view.View()
	assert.Contains(t, out, "fiction")
	assert.Contains(t, out, "12 reviews")
	assert.Contains(t, out, "no data")
}

func TestView_InitWithoutService(t *testing.T) {
	view := NewView(nil, nil)
	view.SetDimensions(80, 30)

	view.Update(view.Init()())

	assert.ErrorIs(t, view.Err(), ErrNoRecommendService)
	assert.Contains(t, view.View(), "Error:")
}

func TestView_LoadError(t *testing.T) {
	view := NewView(nil, &mockRecommendService{err: errors.New("db locked")})
	view.SetDimensions(80, 30)

	cmd := view.Init()
	assert.Contains(t, view.View(), "Loading genres")

	view.Update(cmd())
	assert.EqualError(t, view.Err(), "db locked")
}

func TestView_NavigateAndSelect(t *testing.T) {
	view := loadedView(t, []domain.GenreInfo{{Name: "art"}, {Name: "bible"}, {Name: "drama"}})

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.NotNil(t, view.SelectedGenre())
	assert.Equal(t, "drama", view.SelectedGenre().Name)

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.GenreSelected{Genre: "bible"}, cmd())
}

func TestView_EnterWithNoGenres(t *testing.T) {
	view := loadedView(t, nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Nil(t, view.SelectedGenre())
}

func TestView_Esc(t *testing.T) {
	view := NewView(nil, nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}
