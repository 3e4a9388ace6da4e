// Package watch re-runs a callback when a schema bundle changes on disk.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Alia5/modelgen/internal/log"
)

// DefaultDebounce is the quiet period after the last event before the
// callback runs. Editors write a bundle as a burst of events.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a file or a directory tree for changes.
type Watcher struct {
	root     string
	dir      bool
	debounce time.Duration
	callback func(ctx context.Context) error
	logger   *slog.Logger
	watcher  *fsnotify.Watcher
}

// New creates a watcher for path. Directories are watched recursively and
// directories created later are picked up. A debounce <= 0 uses DefaultDebounce.
func New(path string, debounce time.Duration, logger *slog.Logger, callback func(ctx context.Context) error) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", absPath, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		root:     absPath,
		dir:      info.IsDir(),
		debounce: debounce,
		callback: callback,
		logger:   logger,
		watcher:  watcher,
	}
	if w.dir {
		err = w.addTree(absPath)
	} else {
		err = watcher.Add(filepath.Dir(absPath))
	}
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		w.logger.Log(context.Background(), log.LevelTrace, "Watching directory", "dir", path)
		return w.watcher.Add(path)
	})
}

// relevant reports whether an event touches the watched path.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	path, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	if !w.dir {
		return path == w.root
	}
	return path == w.root || strings.HasPrefix(path, w.root+string(filepath.Separator))
}

// Run blocks, invoking the callback once per debounced burst of events, until
// ctx is done. Callback errors are logged and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	debounceTimer := time.NewTimer(w.debounce)
	debounceTimer.Stop()
	defer debounceTimer.Stop()
	var debounceCh <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("Change detected", "path", event.Name, "op", event.Op.String())
			if w.dir && event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.logger.Warn("Failed to watch new directory", "dir", event.Name, "error", err)
					}
				}
			}
			debounceTimer.Reset(w.debounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			debounceCh = nil
			if err := w.callback(ctx); err != nil {
				w.logger.Error("Regeneration failed", "error", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watch error", "error", err)

		case <-ctx.Done():
			return nil
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
