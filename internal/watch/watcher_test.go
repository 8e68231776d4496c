package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func datasetFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "superstore.csv")
	if err := os.WriteFile(path, []byte("Order_ID\n1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewWatcher(t *testing.T) {
	w, err := New(Config{Path: datasetFile(t), Debounce: 100})
	if err != nil {
		t.Fatal(err)
	}
	if w == nil {
		t.Fatal("expected non-nil watcher")
	}
	w.watcher.Close()
}

func TestNewWatcherMissingFile(t *testing.T) {
	if _, err := New(Config{Path: filepath.Join(t.TempDir(), "nope.csv")}); err == nil {
		t.Fatal("expected an error for a missing dataset")
	}
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected an error for an empty path")
	}
}

func TestDefaultDebounce(t *testing.T) {
	w, err := New(Config{Path: datasetFile(t), Debounce: 0})
	if err != nil {
		t.Fatal(err)
	}
	defer w.watcher.Close()

	if w.Config.Debounce != 500 {
		t.Errorf("expected default debounce 500, got %d", w.Config.Debounce)
	}
}

func TestMatchesTarget(t *testing.T) {
	target := "/data/superstore.csv"

	if !matchesTarget(target, "/data/superstore.csv") {
		t.Error("should match the watched file")
	}
	if matchesTarget(target, "/data/other.csv") {
		t.Error("should not match a sibling file")
	}
	if matchesTarget(target, "/data/~$superstore.csv") {
		t.Error("should not match an Office temp file")
	}
	if matchesTarget(target, "/data/.~superstore.csv") {
		t.Error("should not match an editor temp file")
	}
}

func TestWatcherRebuildsOnWrite(t *testing.T) {
	path := datasetFile(t)

	w, err := New(Config{Path: path, Debounce: 50})
	if err != nil {
		t.Fatal(err)
	}

	rebuilt := make(chan string, 1)
	w.Handler = func(p string) error {
		rebuilt <- p
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	// Give the watcher time to start.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(path, []byte("Order_ID\n2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-rebuilt:
		if filepath.Base(got) != "superstore.csv" {
			t.Errorf("rebuilt path = %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for rebuild")
	}

	events := w.Events()
	if len(events) != 1 || events[0].Status != "rebuilt" {
		t.Errorf("events = %+v", events)
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	path := datasetFile(t)

	w, err := New(Config{Path: path, Debounce: 50})
	if err != nil {
		t.Fatal(err)
	}

	rebuilt := make(chan struct{}, 1)
	w.Handler = func(string) error {
		rebuilt <- struct{}{}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	time.Sleep(100 * time.Millisecond)

	sibling := filepath.Join(filepath.Dir(path), "notes.txt")
	if err := os.WriteFile(sibling, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-rebuilt:
		t.Error("handler should not run for sibling files")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestRebuildRecordsErrors(t *testing.T) {
	path := datasetFile(t)

	w, err := New(Config{Path: path, Debounce: 50})
	if err != nil {
		t.Fatal(err)
	}
	defer w.watcher.Close()

	w.Handler = func(string) error { return os.ErrPermission }
	w.rebuild(path, "WRITE")

	events := w.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Status != "error" || events[0].Error == "" {
		t.Errorf("event = %+v", events[0])
	}
}
