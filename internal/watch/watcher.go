// Package watch provides a file system watcher that regenerates a deck
// whenever its source dataset changes.
package watch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config holds the watcher configuration.
type Config struct {
	// Path is the dataset file to watch.
	Path string
	// Debounce is how long to wait after the last event before rebuilding,
	// in milliseconds. Editors and spreadsheet apps fire several events per
	// save.
	Debounce int
}

// Event records one completed rebuild attempt.
type Event struct {
	Time      time.Time `json:"time"`
	Path      string    `json:"path"`
	Operation string    `json:"operation"`
	Status    string    `json:"status"` // "rebuilt" or "error"
	Error     string    `json:"error,omitempty"`
}

// Handler is called with the dataset path when a rebuild is due.
type Handler func(path string) error

// Watcher monitors a dataset file and triggers rebuilds.
type Watcher struct {
	Config  Config
	Logger  *log.Logger
	Handler Handler

	mu      sync.Mutex
	events  []Event
	watcher *fsnotify.Watcher
	timer   *time.Timer
}

// New creates a Watcher for the dataset at config.Path.
func New(config Config) (*Watcher, error) {
	if config.Path == "" {
		return nil, fmt.Errorf("no dataset path to watch")
	}
	if _, err := os.Stat(config.Path); err != nil {
		return nil, fmt.Errorf("could not watch %s: %w", config.Path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}
	if config.Debounce <= 0 {
		config.Debounce = 500
	}
	return &Watcher{
		Config:  config,
		Logger:  log.New(os.Stderr, "[watch] ", log.LstdFlags),
		watcher: fsw,
	}, nil
}

// Start begins watching. It blocks until the context is cancelled.
//
// The parent directory is watched rather than the file itself: most
// applications save by writing a temp file and renaming it over the target,
// which replaces the watched inode.
func (w *Watcher) Start(ctx context.Context) error {
	abs, err := filepath.Abs(w.Config.Path)
	if err != nil {
		return fmt.Errorf("could not resolve %s: %w", w.Config.Path, err)
	}
	if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("could not watch %s: %w", filepath.Dir(abs), err)
	}

	w.Logger.Printf("Watching %s", abs)

	for {
		select {
		case <-ctx.Done():
			w.Logger.Println("Stopping watcher")
			return w.watcher.Close()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(abs, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.Logger.Printf("Error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(target string, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}
	if !matchesTarget(target, event.Name) {
		return
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	op := event.Op.String()
	w.timer = time.AfterFunc(time.Duration(w.Config.Debounce)*time.Millisecond, func() {
		w.rebuild(target, op)
	})
	w.mu.Unlock()
}

func (w *Watcher) rebuild(path, operation string) {
	evt := Event{Time: time.Now(), Path: path, Operation: operation}

	if w.Handler != nil {
		if err := w.Handler(path); err != nil {
			evt.Status = "error"
			evt.Error = err.Error()
			w.Logger.Printf("Rebuild failed: %v", err)
		} else {
			evt.Status = "rebuilt"
			w.Logger.Printf("Rebuilt after %s of %s", operation, filepath.Base(path))
		}
	} else {
		evt.Status = "rebuilt"
	}

	w.mu.Lock()
	w.events = append(w.events, evt)
	w.mu.Unlock()
}

// matchesTarget reports whether an event path refers to the watched dataset,
// ignoring editor temp files.
func matchesTarget(target, name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, "~$") || strings.HasPrefix(base, ".~") {
		return false
	}
	return base == filepath.Base(target)
}

// Events returns a copy of all recorded rebuild events.
func (w *Watcher) Events() []Event {
	w.mu.Lock()
	defer w.mu.Unlock()
	events := make([]Event, len(w.events))
	copy(events, w.events)
	return events
}
