package driven

import (
	"context"

	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
)

// Enumerator produces document references from a user-selected folder.
type Enumerator interface {
	// Enumerate walks the folder and streams refs for supported files.
	// The sequence is lazy, finite and non-restartable: the channels are
	// closed once the walk completes or the context is cancelled.
	// Unsupported extensions are silently skipped. An unreadable folder
	// yields domain.ErrDirectoryUnreadable on the error channel before
	// any ref is produced.
	Enumerate(ctx context.Context, folder string, recursive bool) (<-chan domain.DocumentRef, <-chan error)

	// Watch signals changes to supported files under the folder.
	// Each value is the path that changed. The channel is closed when
	// the context is cancelled. Results are not rescanned automatically;
	// callers use the signal to mark displayed results stale.
	Watch(ctx context.Context, folder string) (<-chan string, error)
}
