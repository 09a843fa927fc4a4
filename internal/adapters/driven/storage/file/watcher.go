package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/snipdeck-cli/internal/logger"
)

// reloadRate bounds how often file events trigger a reload. Editors
// fire bursts of writes on save; one reload per burst is enough.
var reloadRate = rate.Every(200 * time.Millisecond)

// Watch blocks until ctx is cancelled, reloading the snippet file
// whenever it changes on disk and invoking onChange after each
// successful reload. A reload failure is logged and the previous
// collection stays in place.
func (s *SnippetStore) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir()); err != nil {
		return fmt.Errorf("watching %s: %w", s.dir(), err)
	}

	limiter := rate.NewLimiter(reloadRate, 1)
	target := filepath.Clean(s.path)

	logger.Debug("Watching %s for changes", target)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !limiter.Allow() {
				continue
			}

			if err := s.reload(); err != nil {
				logger.Warn("Reload after change failed: %v", err)
				continue
			}
			if onChange != nil {
				onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}
