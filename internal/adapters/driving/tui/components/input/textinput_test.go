package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/styles"
)

func newTestField() *TextField {
	return NewTextField(styles.DefaultStyles(), "Query", "word or phrase")
}

func TestNewTextField(t *testing.T) {
	field := newTestField()

	require.NotNil(t, field)
	assert.Equal(t, "Query", field.Label())
	assert.Empty(t, field.Value())
	assert.False(t, field.Focused())
}

func TestTextField_FocusBlur(t *testing.T) {
	field := newTestField()

	field.Focus()
	assert.True(t, field.Focused())

	field.Blur()
	assert.False(t, field.Focused())
}

func TestTextField_SetValue(t *testing.T) {
	field := newTestField()

	field.SetValue("budget")

	assert.Equal(t, "budget", field.Value())
}

func TestTextField_Update_TypesIntoFocusedField(t *testing.T) {
	field := newTestField()
	field.Focus()

	field, _ = field.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})

	assert.Equal(t, "hi", field.Value())
}

func TestTextField_Reset(t *testing.T) {
	field := newTestField()
	field.SetValue("budget")

	field.Reset()

	assert.Empty(t, field.Value())
}

func TestTextField_View(t *testing.T) {
	field := newTestField()
	field.SetValue("budget")

	view := field.View()

	assert.Contains(t, view, "Query")
	assert.Contains(t, view, "budget")
}

func TestTextField_SetWidth(t *testing.T) {
	field := newTestField()

	field.SetWidth(60)

	assert.Equal(t, 60, field.Width())
}
