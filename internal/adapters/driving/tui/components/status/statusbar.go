// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady    State = "ready"
	StateScanning State = "scanning"
	StateError    State = "error"
	StateHelp     State = "help"
	StateResults  State = "results"
)

// Bar displays application status, scan progress and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	state    State
	message  string
	warning  string
	scanned  int
	total    int
	restrict bool
	stale    bool
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is mostly passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := s.width - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the left side of the status bar.
func (s *Bar) renderLeft() string {
	parts := make([]string, 0, 4)

	switch s.state {
	case StateScanning:
		// Total is only known once enumeration completes
		if s.total > 0 {
			parts = append(parts, s.styles.Muted.Render(fmt.Sprintf("Scanning %d/%d...", s.scanned, s.total)))
		} else {
			parts = append(parts, s.styles.Muted.Render(fmt.Sprintf("Scanning (%d scanned)...", s.scanned)))
		}
	case StateError:
		if s.message != "" {
			parts = append(parts, s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message)))
		} else {
			parts = append(parts, s.styles.Error.Render("Error"))
		}
	case StateHelp:
		parts = append(parts, s.styles.Normal.Render("Help"))
	case StateReady, StateResults:
		switch {
		case s.message != "":
			parts = append(parts, s.styles.Normal.Render(s.message))
		case s.total > 0:
			parts = append(parts, s.styles.Normal.Render(fmt.Sprintf("%d documents", s.total)))
		default:
			parts = append(parts, s.styles.Muted.Render("Ready"))
		}
	default:
		parts = append(parts, s.styles.Muted.Render("Ready"))
	}

	if s.restrict {
		parts = append(parts, s.styles.Warning.Render("[restrict]"))
	}
	if s.stale {
		parts = append(parts, s.styles.Warning.Render("[folder changed, rescan]"))
	}
	if s.warning != "" {
		parts = append(parts, s.styles.Warning.Render(s.warning))
	}

	return strings.Join(parts, " ")
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding

	if s.state == StateResults && s.total > 0 {
		bindings = s.keymap.ResultsHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetWarning sets a persistent warning (e.g. a likely misspelt query).
func (s *Bar) SetWarning(warning string) {
	s.warning = warning
}

// Warning returns the current warning.
func (s *Bar) Warning() string {
	return s.warning
}

// SetProgress sets the scanned and total document counts.
func (s *Bar) SetProgress(scanned, total int) {
	s.scanned = scanned
	s.total = total
}

// Scanned returns the number of documents scanned so far.
func (s *Bar) Scanned() int {
	return s.scanned
}

// Total returns the total document count.
func (s *Bar) Total() int {
	return s.total
}

// SetRestrict shows or hides the restrict mode indicator.
func (s *Bar) SetRestrict(restrict bool) {
	s.restrict = restrict
}

// Restrict returns whether restrict mode is shown.
func (s *Bar) Restrict() bool {
	return s.restrict
}

// SetStale shows or hides the stale-results indicator.
func (s *Bar) SetStale(stale bool) {
	s.stale = stale
}

// Stale returns whether results are marked stale.
func (s *Bar) Stale() bool {
	return s.stale
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.warning = ""
	s.scanned = 0
	s.total = 0
	s.stale = false
}
