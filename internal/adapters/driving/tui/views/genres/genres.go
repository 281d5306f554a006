// Package genres provides the genre browser view for the TUI.
package genres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/folio/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// ErrNoRecommendService indicates that no recommendation service was provided.
var ErrNoRecommendService = errors.New("recommendation service is required")

// View lists every genre with its review count.
type View struct {
	styles  *styles.Styles
	service driving.RecommendationService
	ctx     context.Context

	genres   []domain.GenreInfo
	selected int
	loading  bool
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new genres view.
func NewView(s *styles.Styles, service driving.RecommendationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		service: service,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the genre list.
func (v *View) Init() tea.Cmd {
	v.loading = true
	service := v.service
	ctx := v.ctx
	return func() tea.Msg {
		if service == nil {
			return messages.GenresLoaded{Err: ErrNoRecommendService}
		}
		genres, err := service.Genres(ctx)
		return messages.GenresLoaded{Genres: genres, Err: err}
	}
}

// Update handles messages for the genres view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.GenresLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.genres = msg.Genres
			v.selected = 0
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
		case "down", "j":
			if v.selected < len(v.genres)-1 {
				v.selected++
			}
		case "enter":
			if g := v.SelectedGenre(); g != nil {
				name := g.Name
				return v, func() tea.Msg {
					return messages.GenreSelected{Genre: name}
				}
			}
		}
	}
	return v, nil
}

// View renders the genre list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Folio") + v.styles.Muted.Render("  genres"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading genres..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	default:
		b.WriteString(v.renderList())
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Recommend in genre  [Esc] Back"))
	return b.String()
}

func (v *View) renderList() string {
	visible := v.height - 6
	if visible < 1 {
		visible = 1
	}
	start := 0
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	end := start + visible
	if end > len(v.genres) {
		end = len(v.genres)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		g := v.genres[i]
		count := v.styles.Muted.Render("no data")
		if g.Available {
			count = v.styles.Positive.Render(fmt.Sprintf("%d reviews", g.Reviews))
		}
		name := fmt.Sprintf("%-28s", g.Name)
		if i == v.selected {
			lines = append(lines, "> "+v.styles.Selected.Render(name)+" "+count)
		} else {
			lines = append(lines, "  "+v.styles.Normal.Render(name)+" "+count)
		}
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Genres returns the loaded genres.
func (v *View) Genres() []domain.GenreInfo {
	return v.genres
}

// SelectedGenre returns the highlighted genre, or nil when none are loaded.
func (v *View) SelectedGenre() *domain.GenreInfo {
	if v.selected < 0 || v.selected >= len(v.genres) {
		return nil
	}
	return &v.genres[v.selected]
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
