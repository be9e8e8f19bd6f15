// Package watch provides the inbox watcher: PDFs dropped into a
// configured directory are ingested into the library automatically.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/clauser-cli/internal/core/ports/driving"
	"github.com/custodia-labs/clauser-cli/internal/logger"
)

// settleDelay is how long a file must stay quiet before ingestion.
// Drops and downloads arrive as a Create followed by many Writes, so
// ingesting on the first event would read a half-written file.
const settleDelay = 2 * time.Second

// InboxWatcher ingests PDFs dropped into a directory.
type InboxWatcher struct {
	dir     string
	library driving.LibraryService
	settle  time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// NewInboxWatcher creates a watcher over dir.
func NewInboxWatcher(dir string, library driving.LibraryService) *InboxWatcher {
	return &InboxWatcher{
		dir:     dir,
		library: library,
		settle:  settleDelay,
		pending: make(map[string]*time.Timer),
	}
}

// Run watches the inbox until ctx is cancelled. Pre-existing PDFs are
// ingested once on startup so files dropped while clauser was not
// running are not missed.
func (w *InboxWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	logger.Info("Watching inbox: %s", w.dir)

	results, err := w.library.IngestAll(ctx, []string{w.dir})
	if err != nil {
		return fmt.Errorf("initial inbox sweep: %w", err)
	}
	for _, res := range results {
		if res.Err != nil {
			logger.Warn("Inbox ingest failed for %s: %v", res.Path, res.Err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			w.cancelPending()
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if path := w.handleEvent(event); path != "" {
				w.schedule(ctx, path)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Inbox watcher error: %v", err)
		}
	}
}

// handleEvent returns the path to ingest, or "" when the event is not
// an interesting one. Hidden files and non-PDFs are skipped.
func (w *InboxWatcher) handleEvent(event fsnotify.Event) string {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return ""
	}

	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return ""
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return ""
	}

	return event.Name
}

// schedule (re)arms the settle timer for path. Each new event on the
// same file pushes ingestion back until writes stop.
func (w *InboxWatcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Stop()
	}

	w.pending[path] = time.AfterFunc(w.settle, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		if ctx.Err() != nil {
			return
		}

		res, err := w.library.Ingest(ctx, path)
		if err != nil {
			logger.Warn("Inbox ingest failed for %s: %v", path, err)
			return
		}
		if res.Err != nil {
			logger.Warn("Inbox ingest failed for %s: %v", path, res.Err)
			return
		}
		if !res.Skipped {
			logger.Info("Ingested from inbox: %s", res.Standard.Name)
		}
	})
}

// cancelPending stops all armed timers.
func (w *InboxWatcher) cancelPending() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
}
