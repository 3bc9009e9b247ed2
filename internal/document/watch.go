package document

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// settle is how long Watch waits after a write so that editors saving in
// several steps trigger a single reload.
const settle = 100 * time.Millisecond

// Watch calls onChange with the path of every document under paths that is
// written, until ctx is done. Directories are watched non-recursively.
func Watch(ctx context.Context, logger *zap.Logger, paths []string, onChange func(path string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	for _, p := range paths {
		if err := w.Add(p); err != nil {
			return fmt.Errorf("error adding %s to watcher: %w", p, err)
		}
	}

	pending := map[string]bool{}
	timer := time.NewTimer(settle)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !IsDocumentPath(event.Name) {
				continue
			}
			pending[filepath.Clean(event.Name)] = true
			timer.Reset(settle)

		case <-timer.C:
			for path := range pending {
				onChange(path)
			}
			clear(pending)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", zap.Error(err))
		}
	}
}
