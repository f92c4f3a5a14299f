package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before
// OnChange runs.
const DefaultDebounce = 150 * time.Millisecond

// Watcher calls OnChange after any of Paths is written, created, renamed
// or removed.
type Watcher struct {
	Paths    []string
	Debounce time.Duration
	// OnChange receives the path of the last event in a burst. An error
	// is passed to OnError and does not stop the watcher.
	OnChange func(path string) error
	OnError  func(error)
}

// Run blocks until ctx is cancelled or the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	if len(w.Paths) == 0 {
		return fmt.Errorf("watch: no paths")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fw.Close()

	targets := make(map[string]bool, len(w.Paths))
	dirs := make(map[string]bool)
	for _, p := range w.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		targets[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := ""

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(ev.Name)] || !relevant(ev.Op) {
				continue
			}
			pending = ev.Name
			timer.Reset(debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.reportError(fmt.Errorf("file watcher: %w", err))

		case <-timer.C:
			if pending == "" {
				continue
			}
			path := pending
			pending = ""
			if w.OnChange != nil {
				if err := w.OnChange(path); err != nil {
					w.reportError(err)
				}
			}
		}
	}
}

func (w *Watcher) reportError(err error) {
	if w.OnError != nil {
		w.OnError(err)
	}
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) ||
		op.Has(fsnotify.Rename) || op.Has(fsnotify.Remove)
}
