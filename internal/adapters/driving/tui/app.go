package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/views/docdetail"
	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/tui/views/scan"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// scanView is the folder/query input and results view.
	scanView *scan.View

	// docDetailView shows one document's matching lines.
	docDetailView *docdetail.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	scanView := scan.NewView(s, km, ports.Scan, ports.Lexicon, ports.Config)
	docDetailView := docdetail.NewView(s, km)

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		scanView:      scanView,
		docDetailView: docDetailView,
		currentView:   messages.ViewScan,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.scanView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("wordfind - Document Scanner"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.scanView.SetDimensions(msg.Width, msg.Height)
		a.docDetailView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewScan:
			if msg.String() == "?" && !a.scanView.Scanning() {
				a.currentView = messages.ViewHelp
				return a, nil
			}
			a.scanView, cmd = a.scanView.Update(msg)
			return a, cmd

		case messages.ViewDocDetail:
			a.docDetailView, cmd = a.docDetailView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Any key leaves help
			a.currentView = messages.ViewScan
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.DocumentSelected:
		a.docDetailView.SetResult(msg.Result, msg.Restrict)
		a.currentView = messages.ViewDocDetail
		return a, nil

	case messages.DocumentScanned, messages.ScanCompleted, messages.FolderChanged:
		// Scan lifecycle messages always belong to the scan view, even
		// while the user is looking at a document detail.
		if completed, ok := msg.(messages.ScanCompleted); ok && completed.Err != nil {
			a.err = completed.Err
		}
		a.scanView, cmd = a.scanView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view.
	switch a.currentView {
	case messages.ViewScan:
		a.scanView, cmd = a.scanView.Update(msg)
	case messages.ViewDocDetail:
		a.docDetailView, cmd = a.docDetailView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewScan:
		return a.scanView.View()
	case messages.ViewDocDetail:
		return a.docDetailView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.scanView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Scan:
  tab         Switch between folder and query
  enter       Start the scan
  esc         Cancel a running scan

Results:
  j/k, ↑/↓    Navigate documents
  r           Toggle restrict mode (direct matches only)
  enter       Open document detail
  n           New scan
  esc         Back to inputs

Detail:
  j/k, ↑/↓    Scroll matching lines
  esc         Back to results

ctrl+c quits from anywhere.

[any key] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// ScanView returns the scan view (for testing).
func (a *App) ScanView() *scan.View {
	return a.scanView
}

// DocDetailView returns the document detail view (for testing).
func (a *App) DocDetailView() *docdetail.View {
	return a.docDetailView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.scanView.SetDimensions(width, height)
	a.docDetailView.SetDimensions(width, height)
}
