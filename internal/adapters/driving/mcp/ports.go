package mcp

import (
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scan runs document scans.
	Scan driving.ScanService

	// Lexicon provides synonym lookups. Optional.
	Lexicon driving.LexiconService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Scan == nil {
		return ErrMissingScanService
	}
	return nil
}
