package mcp

import (
	"context"

	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driving"
)

// mockScanService is a mock implementation of driving.ScanService.
type mockScanService struct {
	report  *domain.ScanReport
	watchCh chan string
	err     error
}

func (m *mockScanService) Scan(
	_ context.Context,
	_, _ string,
	_ driving.ScanOptions,
	onResult driving.ResultHandler,
) (*domain.ScanReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	if onResult != nil && m.report != nil {
		for _, result := range m.report.Results {
			onResult(result)
		}
	}
	return m.report, nil
}

func (m *mockScanService) Watch(_ context.Context, _ string) (<-chan string, error) {
	return m.watchCh, m.err
}

// mockLexiconService is a mock implementation of driving.LexiconService.
type mockLexiconService struct {
	synonyms  []string
	known     bool
	available bool
}

func (m *mockLexiconService) Synonyms(_ string) []string {
	return m.synonyms
}

func (m *mockLexiconService) Known(_ string) bool {
	return m.known
}

func (m *mockLexiconService) Available() bool {
	return m.available
}
