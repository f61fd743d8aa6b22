// Package driven defines the driven ports (secondary adapters' interfaces)
// for wordfind. The core services depend on these interfaces; adapters under
// internal/adapters/driven, internal/extractors and internal/connectors
// implement them.
package driven
