// Package watcher implements recursive file system watching on top of fsnotify.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/scriptmerge/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

// skippedDirectories are never watched.
var skippedDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

const eventChannelBuffer = 100

// Watcher implements ports.Watcher using fsnotify. A Watcher is single use.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	log       ports.Logger
	events    chan ports.WatchEvent
}

// NewWatcher creates a new file system watcher. Watch errors are reported to log.
func NewWatcher(log ports.Logger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: watcher,
		log:       log,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start watches every directory below root and forwards events until ctx is done
// or the watcher is stopped.
func (w *Watcher) Start(ctx context.Context, root string) error {
	for dir := range watchableDirs(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events. It ends when the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// watchableDirs yields root and every directory below it that is not skipped.
func watchableDirs(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable directories are not watched
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && skippedDirectories[d.Name()] {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent, ok := convertEvent(event)
			if !ok {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

			if watchEvent.Operation == ports.OpCreate {
				w.watchNewDir(event.Name)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn(fmt.Sprintf("watcher: file system error: %v", err))
		}
	}
}

// watchNewDir starts watching a directory created after Start.
func (w *Watcher) watchNewDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || skippedDirectories[info.Name()] {
		return
	}
	for dir := range watchableDirs(path) {
		_ = w.fsWatcher.Add(dir)
	}
}

// convertEvent maps an fsnotify event to a ports.WatchEvent. Chmod-only events are dropped.
func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: event.Name, Operation: op}, true
}
