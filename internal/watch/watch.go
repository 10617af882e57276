// Package watch triggers full pipeline re-runs on file changes. Change
// notifications are coalesced into a debounce window; each firing runs one
// complete re-scan-and-regenerate pass. There is no partial rebuild.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher re-runs a callback whenever files under the root change.
type Watcher struct {
	root     string
	excludes []string
	debounce time.Duration
	log      *logrus.Logger
	run      func()
}

// New creates a Watcher. The run callback must be a full recomputation; the
// watcher passes no information about what changed.
func New(root string, excludes []string, debounce time.Duration, log *logrus.Logger, run func()) *Watcher {
	return &Watcher{
		root:     root,
		excludes: excludes,
		debounce: debounce,
		log:      log,
		run:      run,
	}
}

// Watch blocks until the context is cancelled, firing the callback after
// each debounce window that saw at least one event. A new regeneration
// never starts before the current window elapses.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := w.addRecursive(fw, w.root); err != nil {
		return err
	}

	var timer *time.Timer
	fired := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.excluded(event.Name) {
				continue
			}
			// New directories need to be picked up for future events.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addRecursive(fw, event.Name)
				}
			}
			w.log.Debugf("Change detected: %s (%s)", event.Name, event.Op)
			if timer == nil {
				timer = time.AfterFunc(w.debounce, func() {
					select {
					case fired <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(w.debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warnf("Watch error: %v", err)
		case <-fired:
			timer = nil
			w.log.Info("Rebuilding after change batch")
			w.run()
		}
	}
}

func (w *Watcher) addRecursive(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.excluded(path) {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}

func (w *Watcher) excluded(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		rel = path
	}
	for _, exc := range w.excludes {
		// Match against the pattern's leading path element; full glob
		// filtering happens again inside the pipeline's finder.
		head := strings.SplitN(exc, "/", 2)[0]
		if head == "" || strings.ContainsAny(head, "*?[") {
			continue
		}
		if rel == head || strings.HasPrefix(rel, head+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
