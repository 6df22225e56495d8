// Package watcher reloads the dataset when its files change on disk.
//
// Editors and deploy scripts typically write JSON files with a rename or
// a burst of partial writes, so events are debounced: the reload callback
// fires once per quiet period, not once per write.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher watches a dataset directory and invokes a callback after changes
// settle.
type Watcher struct {
	dir      string
	debounce time.Duration
	onChange func()
	logger   *slog.Logger

	fsw    *fsnotify.Watcher
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a watcher over dir. onChange runs on the watcher goroutine
// after each debounced burst of events; it must not block indefinitely.
func New(dir string, onChange func(), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{
		dir:      dir,
		debounce: defaultDebounce,
		onChange: onChange,
		logger:   logger,
		fsw:      fsw,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. Returns immediately; events are processed on a
// background goroutine until Stop is called.
func (w *Watcher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	go w.run(ctx)
	w.logger.Info("watching dataset directory", "dir", w.dir)
}

// Stop cancels the watch and waits for the goroutine to exit.
func (w *Watcher) Stop() error {
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
	return w.fsw.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debug("dataset file changed", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)

		case <-timerC:
			timer = nil
			timerC = nil
			w.logger.Info("dataset changed, reloading")
			w.onChange()
		}
	}
}

// relevant filters out events that cannot change dataset contents.
// Only JSON files matter; Chmod-only events are noise.
func relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return strings.EqualFold(filepath.Ext(event.Name), ".json")
}
