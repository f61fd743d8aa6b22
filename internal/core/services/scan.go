package services

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wordfind-cli/internal/logger"
)

// Ensure ScanService implements the interface.
var _ driving.ScanService = (*ScanService)(nil)

// DefaultFileTimeout bounds extraction time for a single document, so a
// pathologically large or malformed file cannot stall its worker forever.
const DefaultFileTimeout = 30 * time.Second

// ScanService runs keyword scans over a folder of documents.
//
// Each scan is a fresh linear pass: enumerate, extract, match, aggregate.
// Nothing is indexed or persisted between scans. Jobs run on a bounded
// goroutine pool inside this process; the aggregate report is the only
// shared mutable state and is guarded by a single mutex.
type ScanService struct {
	enumerator driven.Enumerator
	registry   *ExtractorRegistry
	lexicon    driven.Lexicon
}

// NewScanService creates a new scan service.
// The lexicon parameter is optional (can be nil): without it, synonym
// expansion is disabled and direct matching still works.
func NewScanService(
	enumerator driven.Enumerator,
	registry *ExtractorRegistry,
	lexicon driven.Lexicon,
) *ScanService {
	return &ScanService{
		enumerator: enumerator,
		registry:   registry,
		lexicon:    lexicon,
	}
}

// Scan enumerates the folder and processes one extract+match job per
// document on a bounded worker pool. onResult (may be nil) is invoked as
// each document completes; calls are serialised with the aggregate update.
//
//nolint:gocognit // central scan loop coordinates enumeration and the pool
func (s *ScanService) Scan(
	ctx context.Context,
	folder, query string,
	opts driving.ScanOptions,
	onResult driving.ResultHandler,
) (*domain.ScanReport, error) {
	q, err := domain.NewQuery(query, opts.CaseSensitive)
	if err != nil {
		return nil, err
	}
	q = s.expandQuery(q)

	logger.Section("Scan")
	logger.Debug("Folder: %s recursive=%t", folder, opts.Recursive)
	logger.Debug("Query: %q synonyms=%d", q.Text, len(q.Synonyms))

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU() / 2
		if workers < 1 {
			workers = 1
		}
	}
	timeout := opts.FileTimeout
	if timeout <= 0 {
		timeout = DefaultFileTimeout
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	report := domain.NewScanReport(q)
	var mu sync.Mutex
	var wg sync.WaitGroup

	record := func(result domain.DocumentResult) {
		mu.Lock()
		defer mu.Unlock()
		report.Results[result.Ref.Path] = result
		if onResult != nil {
			onResult(result)
		}
	}

	refs, errs := s.enumerator.Enumerate(ctx, folder, opts.Recursive)

	var fatal error
	for refs != nil || errs != nil {
		select {
		case ref, ok := <-refs:
			if !ok {
				refs = nil
				continue
			}
			// Cooperative cancellation: stop submitting between jobs
			// but keep draining so the enumerator can finish.
			if ctx.Err() != nil || fatal != nil {
				continue
			}
			wg.Add(1)
			job := ref
			if submitErr := pool.Submit(func() {
				defer wg.Done()
				record(s.process(ctx, q, job, timeout))
			}); submitErr != nil {
				wg.Done()
				record(domain.NewFailedResult(job, domain.NewExtractionError(job.Path, submitErr)))
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if err != nil && fatal == nil {
				fatal = err
			}
		}
	}

	wg.Wait()

	if fatal != nil {
		// A fatal enumeration error reports no partial results.
		return nil, fatal
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	logger.Info("Scan complete: %d documents, %d failures, %d matches",
		report.Documents(), report.Failures(), report.TotalMatches(false))
	return report, nil
}

// Watch signals changes to supported files under the folder.
func (s *ScanService) Watch(ctx context.Context, folder string) (<-chan string, error) {
	return s.enumerator.Watch(ctx, folder)
}

// process runs one document's extract+match job.
// All failure modes produce a failed result rather than an error, so one
// malformed file never aborts the batch.
func (s *ScanService) process(
	ctx context.Context,
	q domain.Query,
	ref domain.DocumentRef,
	timeout time.Duration,
) domain.DocumentResult {
	extractor, ok := s.registry.For(ref.Format)
	if !ok {
		return domain.NewFailedResult(ref,
			domain.NewExtractionError(ref.Path, domain.ErrUnsupportedFormat))
	}

	jobCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := extractor.Extract(jobCtx, ref.Path)
	if err != nil {
		if !errors.Is(err, domain.ErrExtraction) {
			err = domain.NewExtractionError(ref.Path, err)
		}
		logger.Warn("Extraction failed for %s: %v", ref.Path, err)
		return domain.NewFailedResult(ref, err)
	}

	return domain.NewDocumentResult(ref, text, q.Match(text))
}

// expandQuery adds lexicon synonyms to a single-word query.
// Lexicon failures degrade to direct-only matching.
func (s *ScanService) expandQuery(q domain.Query) domain.Query {
	if s.lexicon == nil || q.IsPhrase() {
		return q
	}

	synonyms, err := s.lexicon.Synonyms(q.Text)
	if err != nil {
		logger.Warn("Synonym expansion unavailable: %v", err)
		return q
	}
	return q.WithSynonyms(synonyms)
}
