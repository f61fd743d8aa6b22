// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewScan is the folder/query input and results view.
	ViewScan ViewType = iota
	// ViewDocDetail shows one document's matching lines.
	ViewDocDetail
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewScan:
		return "scan"
	case ViewDocDetail:
		return "doc_detail"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ScanStarted signals a scan began for a folder and query.
type ScanStarted struct {
	Folder string
	Query  string
}

// DocumentScanned carries one document's completed result while a scan
// is still running.
type DocumentScanned struct {
	Result domain.DocumentResult
}

// ScanCompleted carries the aggregate report back to the model.
type ScanCompleted struct {
	Report *domain.ScanReport
	Err    error
}

// DocumentSelected signals a document was selected for detail view.
type DocumentSelected struct {
	Result   domain.DocumentResult
	Restrict bool
}

// RestrictToggled signals restrict mode was switched.
type RestrictToggled struct {
	Restrict bool
}

// FolderChanged signals a watched file under the scanned folder changed,
// so displayed results are stale.
type FolderChanged struct {
	Path string
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
