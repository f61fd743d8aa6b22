// Package tui provides an interactive terminal user interface for wordfind.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scan runs document scans and watches folders.
	Scan driving.ScanService

	// Lexicon provides synonym lookups and spelling checks. Optional.
	Lexicon driving.LexiconService

	// Config provides persisted scan defaults. Optional.
	Config driven.ConfigStore
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(scan driving.ScanService, lexicon driving.LexiconService) *Ports {
	return &Ports{
		Scan:    scan,
		Lexicon: lexicon,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Scan == nil {
		return ErrMissingScanService
	}
	return nil
}
