// Package domain contains the core business entities and logic for wordfind.
// It has no dependencies on adapters or external libraries, and holds the
// document/query/match model plus the pure tokenising, matching and
// highlighting logic that the services orchestrate.
package domain
