package cliconfig

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/reugn/go-calendar/logger"
)

// DefaultWatchDelay is the debounce delay of Watch.
const DefaultWatchDelay = 100 * time.Millisecond

// Watcher reports changes of a config file.
type Watcher struct {
	path     string
	delay    time.Duration
	onChange func()
	log      logger.Logger

	fire     chan struct{}
	debounce *time.Timer
}

// NewWatcher returns a Watcher calling onChange once for every burst of
// writes to the file at path. onChange runs on the goroutine of Run, one
// call at a time, and never after Run has returned.
func NewWatcher(path string, onChange func(), log logger.Logger) *Watcher {
	return &Watcher{
		path:     path,
		delay:    DefaultWatchDelay,
		onChange: onChange,
		fire:     make(chan struct{}, 1),
		log:      logger.OrNoOp(log).With("component", "watcher", "path", path),
	}
}

// Run watches the directory of the file until ctx is done and reports
// writes, creations and renames of the file.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.log.Debug("watching config")

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			w.stop()
			return nil

		case <-w.fire:
			w.onChange()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Trace("config event", "op", event.Op.String())
			w.schedule()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", "error", err)
		}
	}
}

// schedule restarts the debounce timer. The timer only signals Run, so a
// pending signal is coalesced with the next one.
func (w *Watcher) schedule() {
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.delay, func() {
		select {
		case w.fire <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stop() {
	if w.debounce != nil {
		w.debounce.Stop()
	}
}

// Watch runs a Watcher over path until ctx is done.
func Watch(ctx context.Context, path string, onChange func(), log logger.Logger) error {
	return NewWatcher(path, onChange, log).Run(ctx)
}
