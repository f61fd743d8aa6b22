// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
)

// ResultList displays per-document scan results in a navigable list,
// sorted by path so incremental updates keep a stable order.
type ResultList struct {
	results  []domain.DocumentResult
	selected int
	restrict bool
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		results:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			r.MoveUp()
		case "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No documents")
	}

	lines := make([]string, 0, len(r.results)*2+2)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Documents (%d)", len(r.results)))
	lines = append(lines, header, "")

	// Each document takes two lines (title + excerpt)
	visibleCount := (r.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.results) {
		end = len(r.results)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

// renderResult formats one document as a title line plus first excerpt.
func (r *ResultList) renderResult(index int, result *domain.DocumentResult) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	label := result.Label()
	maxLabelLen := r.width - 24
	if maxLabelLen < 10 {
		maxLabelLen = 10
	}
	if len(label) > maxLabelLen {
		label = label[:maxLabelLen-3] + "..."
	}

	count := r.countFor(result)

	var titleLine string
	switch {
	case result.Failed():
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxLabelLen, label)) +
			r.styles.Error.Render("failed")
	case index == r.selected:
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%-*s  %d", indicator, maxLabelLen, label, count))
	default:
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxLabelLen, label)) +
			r.styles.Muted.Render(fmt.Sprintf("%d", count))
	}

	return titleLine + "\n" + r.styles.Muted.Render("    "+r.preview(result))
}

// countFor returns the displayed count, honouring restrict mode.
func (r *ResultList) countFor(result *domain.DocumentResult) int {
	if r.restrict {
		return result.CountRestricted()
	}
	return result.Count()
}

// preview returns the first matching line, truncated to the width.
func (r *ResultList) preview(result *domain.DocumentResult) string {
	if result.Failed() {
		return result.Err.Error()
	}

	excerpts := domain.Excerpts(result.Text, result.Matches, r.restrict)
	if len(excerpts) == 0 {
		return "(no matches)"
	}

	var b strings.Builder
	for _, seg := range excerpts[0].Segments {
		b.WriteString(seg.Text)
	}
	preview := b.String()
	maxPreviewLen := r.width - 6
	if maxPreviewLen < 20 {
		maxPreviewLen = 20
	}
	if len(preview) > maxPreviewLen {
		preview = preview[:maxPreviewLen-3] + "..."
	}
	return preview
}

// SetResults replaces the list contents.
func (r *ResultList) SetResults(results []domain.DocumentResult) {
	r.results = results
	r.sortResults()
	r.selected = 0
}

// Upsert inserts or replaces one document's result, keeping path order.
// The selection stays on the same document where possible.
func (r *ResultList) Upsert(result domain.DocumentResult) {
	var selectedPath string
	if current := r.SelectedResult(); current != nil {
		selectedPath = current.Ref.Path
	}

	replaced := false
	for i := range r.results {
		if r.results[i].Ref.Path == result.Ref.Path {
			r.results[i] = result
			replaced = true
			break
		}
	}
	if !replaced {
		r.results = append(r.results, result)
		r.sortResults()
	}

	if selectedPath != "" {
		for i := range r.results {
			if r.results[i].Ref.Path == selectedPath {
				r.selected = i
				break
			}
		}
	}
}

func (r *ResultList) sortResults() {
	sort.Slice(r.results, func(i, j int) bool {
		return r.results[i].Ref.Path < r.results[j].Ref.Path
	})
}

// SetRestrict switches the displayed counts and previews.
func (r *ResultList) SetRestrict(restrict bool) {
	r.restrict = restrict
}

// Restrict returns whether restrict mode is on.
func (r *ResultList) Restrict() bool {
	return r.restrict
}

// Results returns the current results.
func (r *ResultList) Results() []domain.DocumentResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.DocumentResult {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of documents in the list.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}

// Clear empties the list.
func (r *ResultList) Clear() {
	r.results = nil
	r.selected = 0
}
