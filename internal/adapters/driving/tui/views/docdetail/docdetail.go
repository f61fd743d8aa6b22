// Package docdetail implements the document detail view, which renders
// every matching line of a single document with highlighted match spans.
package docdetail

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
)

// View is the document detail view model.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	result   domain.DocumentResult
	restrict bool
	excerpts []domain.Excerpt

	scroll int
	width  int
	height int
}

// NewView creates the document detail view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	return &View{
		styles: s,
		keymap: km,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetResult loads a document result into the view. Excerpts are
// recomputed from the matches already in hand; no re-scan happens.
func (v *View) SetResult(result domain.DocumentResult, restrict bool) {
	v.result = result
	v.restrict = restrict
	v.excerpts = domain.Excerpts(result.Text, result.Matches, restrict)
	v.scroll = 0
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	keyStr := keyMsg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.scroll > 0 {
			v.scroll--
		}

	case keymap.Matches(keyStr, v.keymap.Down):
		if v.scroll < v.maxScroll() {
			v.scroll++
		}

	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewScan}
		}
	}

	return v, nil
}

// View renders the document detail view.
func (v *View) View() string {
	title := v.styles.Title.Render(v.result.Label())

	count := v.result.Count()
	if v.restrict {
		count = v.result.CountRestricted()
	}
	header := v.styles.Subtitle.Render(fmt.Sprintf("%s · %d occurrences", v.result.Ref.Path, count))
	if v.restrict {
		header += " " + v.styles.Warning.Render("[restrict]")
	}

	body := v.renderExcerpts()

	help := v.styles.Help.Render("↑/↓: scroll | esc: back | q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, header, "", body, "", help)
}

// renderExcerpts renders the visible window of matching lines.
func (v *View) renderExcerpts() string {
	if len(v.excerpts) == 0 {
		return v.styles.Muted.Render("(no matching lines)")
	}

	visible := v.excerpts
	if max := v.pageSize(); len(visible) > max {
		end := v.scroll + max
		if end > len(visible) {
			end = len(visible)
		}
		visible = visible[v.scroll:end]
	}

	lines := make([]string, 0, len(visible))
	for _, excerpt := range visible {
		lineNo := v.styles.Muted.Render(fmt.Sprintf("%5d ", excerpt.Line+1))
		lines = append(lines, lineNo+v.renderSegments(excerpt.Segments))
	}

	return strings.Join(lines, "\n")
}

// renderSegments wraps each match span in its highlight style.
func (v *View) renderSegments(segments []domain.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		switch seg.Kind {
		case domain.SegmentDirect:
			b.WriteString(v.styles.Direct.Render(seg.Text))
		case domain.SegmentSynonym:
			b.WriteString(v.styles.Synonym.Render(seg.Text))
		default:
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// pageSize returns how many excerpt lines fit on screen.
func (v *View) pageSize() int {
	// Title, header, help and spacing take six rows.
	size := v.height - 6
	if size < 1 {
		size = 10
	}
	return size
}

// maxScroll returns the largest valid scroll offset.
func (v *View) maxScroll() int {
	max := len(v.excerpts) - v.pageSize()
	if max < 0 {
		return 0
	}
	return max
}

// SetDimensions updates the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Result returns the loaded document result.
func (v *View) Result() domain.DocumentResult {
	return v.result
}

// Restrict reports whether the view renders in restrict mode.
func (v *View) Restrict() bool {
	return v.restrict
}

// Excerpts exposes the computed excerpts for inspection.
func (v *View) Excerpts() []domain.Excerpt {
	return v.excerpts
}
