// Package scan implements the main scan view: folder and query inputs,
// incremental results, restrict toggle, and change-watch staleness.
package scan

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wordfind-cli/internal/logger"
)

// focus identifies which part of the view receives key input.
type focus int

const (
	focusFolder focus = iota
	focusQuery
	focusResults
)

// View is the scan view model.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	folder    *input.TextField
	query     *input.TextField
	results   *list.ResultList
	statusbar *status.Bar

	scanService    driving.ScanService
	lexiconService driving.LexiconService
	config         driven.ConfigStore

	ctx        context.Context
	cancelScan context.CancelFunc

	// events delivers incremental results from the running scan
	// goroutine back into the Bubbletea loop.
	events  <-chan tea.Msg
	changes <-chan string

	focus    focus
	restrict bool
	scanning bool

	width  int
	height int
}

// NewView creates the scan view. lexicon and config may be nil.
func NewView(s *styles.Styles, km *keymap.KeyMap, scan driving.ScanService, lexicon driving.LexiconService, config driven.ConfigStore) *View {
	v := &View{
		styles:         s,
		keymap:         km,
		folder:         input.NewTextField(s, "Folder", "path to scan"),
		query:          input.NewTextField(s, "Query", "word or phrase"),
		results:        list.NewResultList(s),
		statusbar:      status.NewBar(s, km),
		scanService:    scan,
		lexiconService: lexicon,
		config:         config,
		ctx:            context.Background(),
	}
	v.folder.Focus()

	if config != nil {
		v.restrict = config.GetBool(driven.KeyRestrict)
	}
	v.results.SetRestrict(v.restrict)
	v.statusbar.SetRestrict(v.restrict)

	return v
}

// WithContext sets the context used for scans and watches.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scan view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.DocumentScanned:
		v.results.Upsert(msg.Result)
		v.statusbar.SetProgress(v.results.Count(), 0)
		return v, v.waitForEvent()

	case messages.ScanCompleted:
		v.scanning = false
		if errors.Is(msg.Err, context.Canceled) {
			// The user cancelled; the statusbar was already reset.
			return v, nil
		}
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			v.focus = focusQuery
			v.query.Focus()
			return v, nil
		}
		v.statusbar.SetProgress(v.results.Count(), v.results.Count())
		v.statusbar.SetState(status.StateResults)
		v.statusbar.SetMessage(v.summary(msg.Report))
		return v, nil

	case messages.FolderChanged:
		v.statusbar.SetStale(true)
		return v, v.waitForChange()
	}

	return v, nil
}

// handleKeyMsg routes key presses by focus.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if v.focus == focusResults {
		return v.handleResultsKey(keyStr)
	}
	return v.handleInputKey(msg, keyStr)
}

func (v *View) handleInputKey(msg tea.KeyMsg, keyStr string) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(keyStr, v.keymap.Tab):
		v.cycleFocus()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Scan):
		return v, v.startScan()

	case keymap.Matches(keyStr, v.keymap.Cancel):
		if v.scanning {
			v.stopScan()
			v.statusbar.SetState(status.StateReady)
			v.statusbar.Clear()
			return v, nil
		}
		if !v.results.IsEmpty() {
			v.focus = focusResults
			v.blurInputs()
			return v, nil
		}
		return v, func() tea.Msg { return messages.Quit{} }
	}

	var cmd tea.Cmd
	switch v.focus {
	case focusFolder:
		v.folder, cmd = v.folder.Update(msg)
	case focusQuery:
		v.query, cmd = v.query.Update(msg)
	}
	return v, cmd
}

func (v *View) handleResultsKey(keyStr string) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }

	case keymap.Matches(keyStr, v.keymap.Up):
		v.results.MoveUp()

	case keymap.Matches(keyStr, v.keymap.Down):
		v.results.MoveDown()

	case keymap.Matches(keyStr, v.keymap.Restrict):
		v.toggleRestrict()

	case keymap.Matches(keyStr, v.keymap.NewScan):
		v.focus = focusQuery
		v.query.Reset()
		return v, v.query.Focus()

	case keymap.Matches(keyStr, v.keymap.Select):
		if result := v.results.SelectedResult(); result != nil && !result.Failed() {
			selected := *result
			restrict := v.restrict
			return v, func() tea.Msg {
				return messages.DocumentSelected{Result: selected, Restrict: restrict}
			}
		}

	case keymap.Matches(keyStr, v.keymap.Back):
		v.focus = focusQuery
		return v, v.query.Focus()
	}

	return v, nil
}

// startScan validates the inputs and launches the scan goroutine. The
// goroutine pushes one DocumentScanned per result and a final
// ScanCompleted into the events channel; waitForEvent pumps them back
// into the update loop one at a time.
func (v *View) startScan() tea.Cmd {
	folder := v.folder.Value()
	query := v.query.Value()
	if folder == "" || query == "" {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage("folder and query are required")
		return nil
	}

	v.stopScan()
	v.results.Clear()
	v.statusbar.Clear()
	v.statusbar.SetRestrict(v.restrict)
	v.statusbar.SetState(status.StateScanning)
	v.warnUnknownWord(query)

	v.scanning = true
	v.focus = focusResults
	v.blurInputs()

	ctx, cancel := context.WithCancel(v.ctx)
	v.cancelScan = cancel

	events := make(chan tea.Msg, 64)
	v.events = events

	opts := v.scanOptions()
	go func() {
		report, err := v.scanService.Scan(ctx, folder, query, opts, func(result domain.DocumentResult) {
			events <- messages.DocumentScanned{Result: result}
		})
		events <- messages.ScanCompleted{Report: report, Err: err}
		close(events)
	}()

	return tea.Batch(v.waitForEvent(), v.startWatch(ctx, folder))
}

// stopScan cancels any running scan and its watch.
func (v *View) stopScan() {
	if v.cancelScan != nil {
		v.cancelScan()
		v.cancelScan = nil
	}
	v.scanning = false
}

// scanOptions reads scan defaults from the config store.
func (v *View) scanOptions() driving.ScanOptions {
	var opts driving.ScanOptions
	if v.config != nil {
		opts.Recursive = v.config.GetBool(driven.KeyRecursive)
		opts.CaseSensitive = v.config.GetBool(driven.KeyCaseSensitive)
		opts.Workers = v.config.GetInt(driven.KeyWorkers)
	}
	return opts
}

// warnUnknownWord flags a single-word query the lexicon does not know,
// which usually means a misspelling.
func (v *View) warnUnknownWord(text string) {
	v.statusbar.SetWarning("")
	if v.lexiconService == nil || !v.lexiconService.Available() {
		return
	}
	query, err := domain.NewQuery(text, false)
	if err != nil || query.IsPhrase() {
		return
	}
	if !v.lexiconService.Known(query.Text) {
		v.statusbar.SetWarning("query word not in lexicon, check spelling")
	}
}

// waitForEvent returns a command that delivers the next scan event.
func (v *View) waitForEvent() tea.Cmd {
	events := v.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

// startWatch begins watching the scanned folder for changes so the
// results can be marked stale. A watch failure is non-fatal.
func (v *View) startWatch(ctx context.Context, folder string) tea.Cmd {
	changes, err := v.scanService.Watch(ctx, folder)
	if err != nil {
		logger.Debug("watch unavailable for %s: %v", folder, err)
		v.changes = nil
		return nil
	}
	v.changes = changes
	return v.waitForChange()
}

// waitForChange returns a command that delivers the next folder change.
func (v *View) waitForChange() tea.Cmd {
	changes := v.changes
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-changes
		if !ok {
			return nil
		}
		return messages.FolderChanged{Path: path}
	}
}

// toggleRestrict flips restrict mode, re-rendering counts and excerpts
// from the matches already in hand. The preference is persisted.
func (v *View) toggleRestrict() {
	v.restrict = !v.restrict
	v.results.SetRestrict(v.restrict)
	v.statusbar.SetRestrict(v.restrict)
	if v.config != nil {
		if err := v.config.Set(driven.KeyRestrict, v.restrict); err != nil {
			logger.Debug("failed to persist restrict setting: %v", err)
		}
	}
}

// cycleFocus moves between the folder and query fields.
func (v *View) cycleFocus() {
	if v.focus == focusFolder {
		v.focus = focusQuery
		v.folder.Blur()
		v.query.Focus()
		return
	}
	v.focus = focusFolder
	v.query.Blur()
	v.folder.Focus()
}

func (v *View) blurInputs() {
	v.folder.Blur()
	v.query.Blur()
}

// summary formats the post-scan status line.
func (v *View) summary(report *domain.ScanReport) string {
	if report == nil {
		return ""
	}
	return fmt.Sprintf("%d documents, %d failures, %d occurrences",
		report.Documents(), report.Failures(), report.TotalMatches(v.restrict))
}

// View renders the scan view.
func (v *View) View() string {
	title := v.styles.Title.Render("wordfind")

	sections := []string{
		title,
		"",
		v.folder.View(),
		v.query.View(),
		"",
	}

	if !v.results.IsEmpty() || v.scanning {
		sections = append(sections, v.results.View())
	} else {
		sections = append(sections, v.styles.Muted.Render("Enter a folder and a query, then press enter to scan."))
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions updates the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.folder.SetWidth(width - 4)
	v.query.SetWidth(width - 4)
	// Leave room for the title, the two inputs and the status bar.
	v.results.SetDimensions(width, height-10)
	v.statusbar.SetWidth(width)
}

// Reset returns the view to its initial state. Any running scan is
// cancelled.
func (v *View) Reset() {
	v.stopScan()
	v.changes = nil
	v.events = nil
	v.folder.Reset()
	v.query.Reset()
	v.results.Clear()
	v.statusbar.Clear()
	v.statusbar.SetState(status.StateReady)
	v.focus = focusFolder
	v.folder.Focus()
}

// Restrict reports whether restrict mode is on.
func (v *View) Restrict() bool {
	return v.restrict
}

// Scanning reports whether a scan is in progress.
func (v *View) Scanning() bool {
	return v.scanning
}

// Results exposes the result list for inspection.
func (v *View) Results() *list.ResultList {
	return v.results
}

// StatusBar exposes the status bar for inspection.
func (v *View) StatusBar() *status.Bar {
	return v.statusbar
}

// Folder exposes the folder field for inspection.
func (v *View) Folder() *input.TextField {
	return v.folder
}

// Query exposes the query field for inspection.
func (v *View) Query() *input.TextField {
	return v.query
}
