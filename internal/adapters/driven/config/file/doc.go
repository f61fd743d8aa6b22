// Package file provides file-based implementations of driven port interfaces.
// ConfigStore persists scan defaults and the WordNet database path as TOML
// under the wordfind config directory.
package file
