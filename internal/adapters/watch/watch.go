// Package watch reports batched filesystem changes under a set of
// directories.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rjeczalik/notify"
)

const DefaultDelay = 50 * time.Millisecond

// Events is one debounced batch of changes.
type Events []notify.EventInfo

// Paths returns the distinct changed paths, sorted.
func (evs Events) Paths() []string {
	seen := make(map[string]bool, len(evs))
	var paths []string
	for _, ev := range evs {
		if !seen[ev.Path()] {
			seen[ev.Path()] = true
			paths = append(paths, ev.Path())
		}
	}
	sort.Strings(paths)
	return paths
}

// HasExt checks if any event path has the given extension.
func (evs Events) HasExt(ext string) bool {
	for _, ev := range evs {
		if filepath.Ext(ev.Path()) == ext {
			return true
		}
	}
	return false
}

// Watcher watches directories recursively. Directories that do not
// exist when the watcher starts are skipped.
type Watcher struct {
	evs   chan notify.EventInfo
	delay time.Duration
	dirs  []string
}

func New(delay time.Duration, dirs ...string) (*Watcher, error) {
	if delay <= 0 {
		delay = DefaultDelay
	}

	w := &Watcher{
		evs:   make(chan notify.EventInfo, 64),
		delay: delay,
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := notify.Watch(filepath.Join(dir, "..."), w.evs, notify.All); err != nil {
			notify.Stop(w.evs)
			return nil, fmt.Errorf("failed to watch %q: %w", dir, err)
		}
		w.dirs = append(w.dirs, dir)
	}

	return w, nil
}

// Dirs lists the directories being watched.
func (w *Watcher) Dirs() []string {
	return w.dirs
}

// Run calls onChange with every batch of events that arrive within the
// debounce delay of each other. It stops watching and returns when ctx is
// done.
func (w *Watcher) Run(ctx context.Context, onChange func(Events)) error {
	defer notify.Stop(w.evs)

	delay := time.NewTimer(time.Hour)
	delay.Stop()
	defer delay.Stop()

	var evs Events
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-w.evs:
			evs = append(evs, ev)
			delay.Reset(w.delay)

		case <-delay.C:
			if len(evs) > 0 {
				onChange(evs)
			}
			evs = nil
		}
	}
}
