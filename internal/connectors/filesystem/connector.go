// Package filesystem enumerates scannable documents on the local disk.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
	"github.com/custodia-labs/wordfind-cli/internal/logger"
)

// Enumerator walks folders for supported document files and watches them
// for changes. It implements driven.Enumerator.
type Enumerator struct{}

// New creates a filesystem enumerator.
func New() *Enumerator {
	return &Enumerator{}
}

// Enumerate streams refs for every supported file under folder. With
// recursive set it descends into subdirectories, skipping hidden ones.
// Both channels are closed when the walk finishes or ctx is cancelled.
func (e *Enumerator) Enumerate(ctx context.Context, folder string, recursive bool) (<-chan domain.DocumentRef, <-chan error) {
	refs := make(chan domain.DocumentRef)
	errs := make(chan error, 1)

	go func() {
		defer close(refs)
		defer close(errs)

		info, err := os.Stat(folder)
		if err != nil {
			errs <- fmt.Errorf("%w: %s: %v", domain.ErrDirectoryUnreadable, folder, err)
			return
		}
		if !info.IsDir() {
			errs <- fmt.Errorf("%w: %s is not a directory", domain.ErrDirectoryUnreadable, folder)
			return
		}

		if recursive {
			e.walk(ctx, folder, refs, errs)
			return
		}
		e.list(ctx, folder, refs, errs)
	}()

	return refs, errs
}

// list emits refs for supported files directly inside folder.
func (e *Enumerator) list(ctx context.Context, folder string, refs chan<- domain.DocumentRef, errs chan<- error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		errs <- fmt.Errorf("%w: %s: %v", domain.ErrDirectoryUnreadable, folder, err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || isHidden(entry.Name()) {
			continue
		}
		if !e.emit(ctx, filepath.Join(folder, entry.Name()), refs) {
			return
		}
	}
}

// walk emits refs for supported files in folder and all subdirectories.
func (e *Enumerator) walk(ctx context.Context, folder string, refs chan<- domain.DocumentRef, errs chan<- error) {
	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == folder {
				return fmt.Errorf("%w: %s: %v", domain.ErrDirectoryUnreadable, folder, err)
			}
			// Unreadable subdirectories are skipped, not fatal.
			logger.Debug("skipping unreadable path: %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			if path != folder && isHidden(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if isHidden(d.Name()) {
			return nil
		}
		if !e.emit(ctx, path, refs) {
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		errs <- err
	}
}

// emit sends a ref for path if its extension is supported. It reports
// false when ctx is cancelled and the walk should stop.
func (e *Enumerator) emit(ctx context.Context, path string, refs chan<- domain.DocumentRef) bool {
	format, ok := domain.FormatForPath(path)
	if !ok {
		return true
	}

	ref := domain.DocumentRef{
		ID:     uuid.New().String(),
		Path:   path,
		Format: format,
	}

	select {
	case refs <- ref:
		return true
	case <-ctx.Done():
		return false
	}
}

// Watch signals the path of any supported file created, modified, removed
// or renamed under folder. The channel is closed when ctx is cancelled or
// the underlying watcher fails.
func (e *Enumerator) Watch(ctx context.Context, folder string) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(folder); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDirectoryUnreadable, folder, err)
	}

	changes := make(chan string)

	go func() {
		defer close(changes)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				path, relevant := handleFsEvent(event)
				if !relevant {
					continue
				}
				select {
				case changes <- path:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error: %v", err)
			}
		}
	}()

	return changes, nil
}

// handleFsEvent reports whether an fsnotify event concerns a supported
// document file, and the path it concerns.
func handleFsEvent(event fsnotify.Event) (string, bool) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return "", false
	}
	if isHidden(filepath.Base(event.Name)) {
		return "", false
	}
	if _, ok := domain.FormatForPath(event.Name); !ok {
		return "", false
	}
	return event.Name, true
}

// isHidden reports whether name is a dotfile. The special entries "." and
// ".." are not considered hidden.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
