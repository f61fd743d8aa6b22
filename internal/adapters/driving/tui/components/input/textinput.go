// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/styles"
)

// TextField wraps a bubbles textinput with a label and shared styling.
// The scan view uses one field for the folder and one for the query.
type TextField struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewTextField creates a labelled text field.
func NewTextField(s *styles.Styles, label, placeholder string) *TextField {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 50

	return &TextField{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     50,
	}
}

// Init initialises the text field.
func (t *TextField) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (t *TextField) Update(msg tea.Msg) (*TextField, tea.Cmd) {
	var cmd tea.Cmd
	t.textinput, cmd = t.textinput.Update(msg)
	return t, cmd
}

// View renders the text field.
func (t *TextField) View() string {
	label := t.styles.Title.Render(t.label + ": ")
	field := t.styles.InputField.Render(t.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (t *TextField) Value() string {
	return t.textinput.Value()
}

// SetValue sets the input value.
func (t *TextField) SetValue(value string) {
	t.textinput.SetValue(value)
}

// Label returns the field label.
func (t *TextField) Label() string {
	return t.label
}

// Focus sets focus on the input.
func (t *TextField) Focus() tea.Cmd {
	return t.textinput.Focus()
}

// Blur removes focus from the input.
func (t *TextField) Blur() {
	t.textinput.Blur()
}

// Focused returns whether the input is focused.
func (t *TextField) Focused() bool {
	return t.textinput.Focused()
}

// SetWidth sets the width of the input.
func (t *TextField) SetWidth(width int) {
	t.width = width
	// Account for label and padding
	inputWidth := width - len(t.label) - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	t.textinput.Width = inputWidth
}

// Width returns the current width.
func (t *TextField) Width() int {
	return t.width
}

// Reset clears the input.
func (t *TextField) Reset() {
	t.textinput.Reset()
}
