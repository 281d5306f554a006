// Package recommend provides the query and results view for the TUI.
package recommend

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/folio/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// Focus identifies which part of the view receives keys.
type Focus int

const (
	FocusGenre Focus = iota
	FocusKeywords
	FocusResults
)

// View is the recommendation view with a genre field, a keyword field,
// the ranked results and the topic summary.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	genre     *input.Field
	keywords  *input.Field
	list      *list.RankedList
	statusbar *status.Bar

	service driving.RecommendationService
	ctx     context.Context

	recommendation *domain.Recommendation
	focus          Focus

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new recommend view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.RecommendationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		genre:     input.NewField(s, "Genre", "e.g. fiction, true crime, self-help"),
		keywords:  input.NewField(s, "Keywords", "e.g. funny heartwarming"),
		list:      list.NewRankedList(s),
		statusbar: status.NewBar(s, km),
		service:   service,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
	v.setFocus(FocusGenre)
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.genre.Init()
}

// Update handles messages for the recommend view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RecommendCompleted:
		v.handleCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	switch v.focus {
	case FocusGenre:
		v.genre, cmd = v.genre.Update(msg)
	case FocusKeywords:
		v.keywords, cmd = v.keywords.Update(msg)
	case FocusResults:
	}
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.focus == FocusResults {
		return v.handleResultsKey(msg)
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		if v.focus == FocusGenre {
			v.setFocus(FocusKeywords)
		} else {
			v.setFocus(FocusGenre)
		}
		return v, nil

	case tea.KeyEnter:
		if strings.TrimSpace(v.genre.Value()) == "" {
			v.setError(ErrNoGenre)
			v.setFocus(FocusGenre)
			return v, nil
		}
		v.err = nil
		v.statusbar.SetState(status.StateRanking)
		v.setFocus(FocusResults)
		return v, v.performRecommend(v.genre.Value(), v.keywords.Value())
	}

	var cmd tea.Cmd
	if v.focus == FocusGenre {
		v.genre, cmd = v.genre.Update(msg)
	} else {
		v.keywords, cmd = v.keywords.Update(msg)
	}
	return v, cmd
}

func (v *View) handleResultsKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.NewQuery):
		v.setFocus(FocusKeywords)
		v.keywords.SetValue("")
		return v, nil
	case keymap.Matches(msg.String(), v.keymap.NextField):
		v.setFocus(FocusGenre)
		return v, nil
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

// performRecommend runs the query off the update loop.
func (v *View) performRecommend(genre, keywords string) tea.Cmd {
	service := v.service
	ctx := v.ctx
	return func() tea.Msg {
		if service == nil {
			return messages.ErrorOccurred{Err: ErrNoRecommendService}
		}
		rec, err := service.Recommend(ctx, genre, keywords, domain.RecommendOptions{})
		return messages.RecommendCompleted{Recommendation: rec, Err: err}
	}
}

func (v *View) handleCompleted(msg messages.RecommendCompleted) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.recommendation = msg.Recommendation
	v.list.SetResults(msg.Recommendation.Results)
	v.statusbar.SetResultCount(len(msg.Recommendation.Results))
	v.statusbar.SetMessage("")

	if msg.Recommendation.Outcome != domain.OutcomeRanked {
		v.statusbar.SetState(status.StateEmpty)
		v.statusbar.SetMessage(msg.Recommendation.Outcome.Description())
		v.setFocus(FocusKeywords)
		return
	}
	v.statusbar.SetState(status.StateResults)
	v.setFocus(FocusResults)
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

func (v *View) setFocus(f Focus) {
	v.focus = f
	v.genre.Blur()
	v.keywords.Blur()
	switch f {
	case FocusGenre:
		v.genre.Focus()
	case FocusKeywords:
		v.keywords.Focus()
	case FocusResults:
	}
}

// View renders the recommend view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)
	sections = append(sections,
		v.styles.Title.Render("Folio")+v.styles.Muted.Render("  recommend"),
		"",
		v.genre.View(),
		v.keywords.View(),
		"",
	)

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if v.recommendation != nil {
		if v.recommendation.Outcome == domain.OutcomeRanked {
			sections = append(sections, v.list.View(), "", v.renderTopics())
		} else {
			sections = append(sections, v.styles.Warning.Render(v.recommendation.Outcome.Description()))
		}
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderTopics() string {
	topics := v.recommendation.Topics
	if topics.Status != domain.TopicStatusOK {
		return v.styles.Muted.Render(topics.Text)
	}

	lines := make([]string, 0, len(topics.Labels)+1)
	lines = append(lines, v.styles.Subtitle.Render("Themes"))
	for _, label := range topics.Labels {
		lines = append(lines, v.styles.Topic.Render("  "+label.String()))
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.genre.SetWidth(width)
	v.keywords.SetWidth(width)
	// Header, two inputs, topics and status take roughly half the screen.
	v.list.SetDimensions(width, height/2)
	v.statusbar.SetWidth(width)
}

// SetGenre pre-fills the genre and moves focus to the keywords.
func (v *View) SetGenre(genre string) {
	v.genre.SetValue(genre)
	v.setFocus(FocusKeywords)
}

// Genre returns the genre field value.
func (v *View) Genre() string {
	return v.genre.Value()
}

// Keywords returns the keyword field value.
func (v *View) Keywords() string {
	return v.keywords.Value()
}

// SetKeywords sets the keyword field value.
func (v *View) SetKeywords(keywords string) {
	v.keywords.SetValue(keywords)
}

// Recommendation returns the last completed recommendation.
func (v *View) Recommendation() *domain.Recommendation {
	return v.recommendation
}

// Results returns the ranked results on display.
func (v *View) Results() []domain.ScoredReview {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Focus returns which part of the view has focus.
func (v *View) Focus() Focus {
	return v.focus
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset clears the query and results. A pre-filled genre is kept.
func (v *View) Reset() {
	v.keywords.SetValue("")
	v.list.SetResults(nil)
	v.recommendation = nil
	v.err = nil
	v.statusbar.Clear()
	if v.genre.Value() == "" {
		v.setFocus(FocusGenre)
	} else {
		v.setFocus(FocusKeywords)
	}
}
