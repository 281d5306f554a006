// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/folio/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/folio/internal/core/domain"
)

// RankedList displays scored reviews in a navigable list.
type RankedList struct {
	results  []domain.ScoredReview
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewRankedList creates a new ranked list component.
func NewRankedList(s *styles.Styles) *RankedList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RankedList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (r *RankedList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RankedList) Update(msg tea.Msg) (*RankedList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the list.
func (r *RankedList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.results)+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Recommendations (%d)", len(r.results))), "")

	// Each entry takes two lines.
	visible := (r.height - 2) / 2
	if visible < 1 {
		visible = 1
	}

	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := start + visible
	if end > len(r.results) {
		end = len(r.results)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderEntry(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

func (r *RankedList) renderEntry(index int, res *domain.ScoredReview) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := res.Title
	if title == "" {
		title = "(Untitled)"
	}
	maxTitle := r.width - 30
	if maxTitle < 10 {
		maxTitle = 10
	}
	title = truncate(title, maxTitle)

	head := fmt.Sprintf("%s%2d. %-*s", indicator, index+1, maxTitle, title)
	scores := fmt.Sprintf("★ %.1f  ", res.Score) +
		r.styles.Sentiment(res.Sentiment).Render(fmt.Sprintf("%+.2f", res.Sentiment)) +
		fmt.Sprintf("  = %.3f", res.TotalScore)

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(head) + "  " + scores
	} else {
		titleLine = r.styles.Normal.Render(head) + "  " + r.styles.Muted.Render(scores)
	}

	maxSummary := r.width - 8
	if maxSummary < 20 {
		maxSummary = 20
	}
	summary := r.styles.Muted.Render("      " + truncate(res.Summary, maxSummary))

	return titleLine + "\n" + summary
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-3]) + "..."
}

// SetResults replaces the list contents and resets the selection.
func (r *RankedList) SetResults(results []domain.ScoredReview) {
	r.results = results
	r.selected = 0
}

// Results returns the current results.
func (r *RankedList) Results() []domain.ScoredReview {
	return r.results
}

// Selected returns the index of the selected entry.
func (r *RankedList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index. Out-of-range values are ignored.
func (r *RankedList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the selected entry, or nil if the list is empty.
func (r *RankedList) SelectedResult() *domain.ScoredReview {
	if r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *RankedList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RankedList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RankedList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of entries.
func (r *RankedList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *RankedList) IsEmpty() bool {
	return len(r.results) == 0
}
