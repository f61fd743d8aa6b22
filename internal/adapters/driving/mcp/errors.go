// Package mcp provides an MCP (Model Context Protocol) server adapter for
// wordfind. It lets AI assistants run document scans and lexicon lookups.
package mcp

import "errors"

// ErrMissingScanService is returned when the scan service is not provided.
var ErrMissingScanService = errors.New("mcp: scan service is required")
