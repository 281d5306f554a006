// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/folio/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// ErrNoSettingsService indicates that no settings service was provided.
var ErrNoSettingsService = errors.New("settings service not available")

// Field identifies an editable setting.
type Field int

const (
	FieldBackend Field = iota
	FieldThreshold
	FieldLimit
	FieldSeed
	FieldIterations
	FieldStem
	fieldCount
)

// Step sizes for numeric fields.
const (
	thresholdStep  = 5
	iterationsStep = 50
)

func (f Field) label() string {
	switch f {
	case FieldBackend:
		return "Partition backend"
	case FieldThreshold:
		return "Match threshold"
	case FieldLimit:
		return "Result limit"
	case FieldSeed:
		return "Topic seed"
	case FieldIterations:
		return "Topic iterations"
	case FieldStem:
		return "Stem topic words"
	default:
		return ""
	}
}

// View is the settings configuration view. Edits stay local until saved.
type View struct {
	styles          *styles.Styles
	keymap          *keymap.KeyMap
	settingsService driving.SettingsService

	settings *domain.AppSettings
	selected Field
	dirty    bool
	notice   string
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:          s,
		keymap:          keymap.DefaultKeyMap(),
		settingsService: settingsService,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

func (v *View) loadSettings() tea.Cmd {
	service := v.settingsService
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsLoaded{Err: ErrNoSettingsService}
		}
		settings, err := service.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

func (v *View) saveSettings() tea.Cmd {
	service := v.settingsService
	settings := *v.settings
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsSaved{Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Err: service.Save(&settings)}
	}
}

func (v *View) resetSettings() tea.Cmd {
	service := v.settingsService
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsSaved{Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Err: service.Reset()}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		v.err = msg.Err
		if msg.Err == nil {
			v.settings = msg.Settings
			v.dirty = false
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.notice = ""
			return v, nil
		}
		v.err = nil
		v.notice = "Saved. New values apply the next time folio starts."
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	if k == "esc" {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}
	if v.settings == nil {
		return v, nil
	}

	switch {
	case keymap.Matches(k, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.selected < fieldCount-1 {
			v.selected++
		}
	case keymap.Matches(k, v.keymap.Decrease):
		v.adjust(-1)
	case keymap.Matches(k, v.keymap.Increase), k == "enter", k == " ":
		v.adjust(1)
	case keymap.Matches(k, v.keymap.Save):
		if v.dirty {
			return v, v.saveSettings()
		}
	case k == "r":
		return v, v.resetSettings()
	}
	return v, nil
}

// adjust moves the selected field one step in direction dir (+1 or -1).
func (v *View) adjust(dir int) {
	s := v.settings
	switch v.selected {
	case FieldBackend:
		backends := domain.AllPartitionBackends()
		i := 0
		for j, b := range backends {
			if b == s.Partitions.Backend {
				i = j
			}
		}
		s.Partitions.Backend = backends[(i+dir+len(backends))%len(backends)]
	case FieldThreshold:
		s.Matching.Threshold = clamp(s.Matching.Threshold+dir*thresholdStep, thresholdStep, 100)
	case FieldLimit:
		s.Ranking.Limit = clamp(s.Ranking.Limit+dir, 1, domain.MaxResults)
	case FieldSeed:
		if s.Topics.Seed+int64(dir) >= 0 {
			s.Topics.Seed += int64(dir)
		}
	case FieldIterations:
		s.Topics.Iterations = clamp(s.Topics.Iterations+dir*iterationsStep, iterationsStep, 10000)
	case FieldStem:
		s.Topics.Stem = !s.Topics.Stem
	case fieldCount:
	}
	v.dirty = true
	v.notice = ""
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func (v *View) value(f Field) string {
	s := v.settings
	switch f {
	case FieldBackend:
		return s.Partitions.Backend.Description()
	case FieldThreshold:
		return fmt.Sprintf("%d", s.Matching.Threshold)
	case FieldLimit:
		return fmt.Sprintf("%d", s.Ranking.Limit)
	case FieldSeed:
		return fmt.Sprintf("%d", s.Topics.Seed)
	case FieldIterations:
		return fmt.Sprintf("%d", s.Topics.Iterations)
	case FieldStem:
		if s.Topics.Stem {
			return "on"
		}
		return "off"
	default:
		return ""
	}
}

// View renders the settings view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Folio") + v.styles.Muted.Render("  settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
	} else {
		for f := Field(0); f < fieldCount; f++ {
			line := fmt.Sprintf("%-20s %s", f.label(), v.value(f))
			if f == v.selected {
				b.WriteString("> " + v.styles.Selected.Render(line))
			} else {
				b.WriteString("  " + v.styles.Normal.Render(line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch {
	case v.notice != "":
		b.WriteString(v.styles.Positive.Render(v.notice))
	case v.dirty:
		b.WriteString(v.styles.Warning.Render("Unsaved changes"))
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [h/l] Change  [s] Save  [r] Reset  [Esc] Back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset returns the view to the first field.
func (v *View) Reset() {
	v.selected = FieldBackend
	v.dirty = false
	v.notice = ""
	v.err = nil
}

// Settings returns the settings being edited.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Selected returns the highlighted field.
func (v *View) Selected() Field {
	return v.selected
}

// Dirty reports whether there are unsaved edits.
func (v *View) Dirty() bool {
	return v.dirty
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
