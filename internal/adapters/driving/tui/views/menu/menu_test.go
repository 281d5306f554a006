package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/styles"
)

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles())

	require.NotNil(t, view)
	assert.Len(t, view.Items(), 5)
	assert.Equal(t, 0, view.Selected())
	assert.Equal(t, 80, view.width)
	assert.Equal(t, 24, view.height)
	assert.Nil(t, view.Init())
}

func TestNewView_NilStyles(t *testing.T) {
	assert.NotNil(t, NewView(nil).styles)
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
}

func TestView_Update_Navigation(t *testing.T) {
	view := NewView(nil)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())

	j := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	for i := 0; i < 10; i++ {
		view.Update(j)
	}
	assert.Equal(t, 4, view.Selected(), "selection stops at the last item")

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 2, view.Selected())

	for i := 0; i < 10; i++ {
		view.Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, 0, view.Selected(), "selection stops at the first item")
}

func TestView_Update_EnterChangesView(t *testing.T) {
	tests := []struct {
		index int
		view  messages.ViewType
	}{
		{0, messages.ViewRecommend},
		{1, messages.ViewGenres},
		{2, messages.ViewSettings},
		{3, messages.ViewHelp},
	}

	for _, tt := range tests {
		t.Run(tt.view.String(), func(t *testing.T) {
			view := NewView(nil)
			view.selected = tt.index

			_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

			require.NotNil(t, cmd)
			assert.Equal(t, messages.ViewChanged{View: tt.view}, cmd())
		})
	}
}

func TestView_Update_Quit(t *testing.T) {
	view := NewView(nil)
	view.selected = 4

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = NewView(nil).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_View(t *testing.T) {
	view := NewView(nil)
	assert.Equal(t, "Initialising...", view.View())

	view.SetDimensions(80, 24)
	out := view.View()

	assert.Contains(t, out, "Folio")
	assert.Contains(t, out, "> Recommend")
	assert.Contains(t, out, "Genres")
	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, "[q] Quit")
}
