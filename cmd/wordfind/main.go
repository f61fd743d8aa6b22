// Command wordfind scans folders of PDF and Word documents for a keyword
// or phrase, with WordNet synonym expansion and highlighted excerpts.
//
// This is the composition root: adapters are constructed here and wired
// into the core services through their ports.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/wordfind-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wordfind-cli/internal/adapters/driven/lexicon/wordnet"
	"github.com/custodia-labs/wordfind-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/wordfind-cli/internal/connectors/filesystem"
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wordfind-cli/internal/core/services"
	"github.com/custodia-labs/wordfind-cli/internal/extractors/docx"
	"github.com/custodia-labs/wordfind-cli/internal/extractors/pdf"
	"github.com/custodia-labs/wordfind-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var configStore driven.ConfigStore
	if store, err := file.NewConfigStore(""); err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
	} else {
		configStore = store
	}

	lexicon := loadLexicon(configStore)

	registry := services.NewExtractorRegistry(pdf.New(), docx.New())
	scanService := services.NewScanService(filesystem.New(), registry, lexicon)
	lexiconService := services.NewLexiconService(lexicon)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Scan:    scanService,
		Lexicon: lexiconService,
		Config:  configStore,
	})

	if err := cli.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadLexicon opens the WordNet database named by config or the
// WORDFIND_WORDNET environment variable. A missing lexicon is not
// fatal: scans still run with synonym expansion disabled.
func loadLexicon(configStore driven.ConfigStore) driven.Lexicon {
	path := os.Getenv("WORDFIND_WORDNET")
	if path == "" && configStore != nil {
		path = configStore.GetString(driven.KeyWordNetPath)
	}
	if path == "" {
		return nil
	}

	lexicon, err := wordnet.New(path)
	if err != nil {
		logger.Warn("lexicon unavailable, synonym expansion disabled: %v", err)
		return nil
	}
	return lexicon
}
