package tui

import (
	"context"

	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driving"
)

// mockScanService implements driving.ScanService for tests.
type mockScanService struct {
	ScanFunc  func(ctx context.Context, folder, query string, opts driving.ScanOptions, onResult driving.ResultHandler) (*domain.ScanReport, error)
	WatchFunc func(ctx context.Context, folder string) (<-chan string, error)
}

func (m *mockScanService) Scan(ctx context.Context, folder, query string, opts driving.ScanOptions, onResult driving.ResultHandler) (*domain.ScanReport, error) {
	if m.ScanFunc != nil {
		return m.ScanFunc(ctx, folder, query, opts, onResult)
	}
	q, err := domain.NewQuery(query, opts.CaseSensitive)
	if err != nil {
		return nil, err
	}
	return domain.NewScanReport(q), nil
}

func (m *mockScanService) Watch(ctx context.Context, folder string) (<-chan string, error) {
	if m.WatchFunc != nil {
		return m.WatchFunc(ctx, folder)
	}
	ch := make(chan string)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

// mockLexiconService implements driving.LexiconService for tests.
type mockLexiconService struct {
	SynonymsFunc func(word string) []string
	KnownFunc    func(word string) bool
	available    bool
}

func (m *mockLexiconService) Synonyms(word string) []string {
	if m.SynonymsFunc != nil {
		return m.SynonymsFunc(word)
	}
	return nil
}

func (m *mockLexiconService) Known(word string) bool {
	if m.KnownFunc != nil {
		return m.KnownFunc(word)
	}
	return true
}

func (m *mockLexiconService) Available() bool {
	return m.available
}
