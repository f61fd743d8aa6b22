// Package cli implements the wordfind command-line interface using cobra.
// Services are injected at startup via SetServices; commands fail with a
// clear error when a required service is missing.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wordfind-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services. Nil until SetServices is called.
var (
	scanService    driving.ScanService
	lexiconService driving.LexiconService
	configStore    driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "wordfind",
	Short: "Scan folders of PDF and Word documents for a keyword",
	Long: `Wordfind scans a folder of PDF and Word documents for a keyword or
phrase, expands single-word queries with WordNet synonyms, and reports
per-document occurrence counts with highlighted excerpts.

Run without arguments to launch the interactive terminal UI, or use the
scan command for one-shot scans.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation launches the TUI
		return runTUI(cmd, args)
	},
}

// Services bundles everything the commands need.
type Services struct {
	Scan    driving.ScanService
	Lexicon driving.LexiconService
	Config  driven.ConfigStore
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	scanService = s.Scan
	lexiconService = s.Lexicon
	configStore = s.Config
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a context, so a SIGINT
// cancels any running scan.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
