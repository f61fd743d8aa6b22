// Package driving defines the driving ports (primary adapters' interfaces)
// for wordfind. The CLI, TUI and MCP adapters drive the core through these.
package driving
