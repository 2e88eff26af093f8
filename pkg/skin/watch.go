package skin

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
)

// DefaultReloadDelay groups the burst of events an editor save produces.
const DefaultReloadDelay = 200 * time.Millisecond

// Watch reloads the manifest at path whenever a file in its directory
// changes, and hands each result to fn. fn runs on a timer goroutine and
// is not called once ctx is done. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, delay time.Duration, fn func(*Skin, error)) error {
	if delay <= 0 {
		delay = DefaultReloadDelay
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	// Editors often replace the file, so watch the directory.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	// A reload still queued in the debouncer can fire after Watch returns.
	reload := func() {
		if ctx.Err() != nil {
			return
		}
		s, err := Load(path)
		if ctx.Err() != nil {
			return
		}
		fn(s, err)
	}
	debounced := debounce.New(delay)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				debounced(reload)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("watching %s: %w", path, err))
		}
	}
}
