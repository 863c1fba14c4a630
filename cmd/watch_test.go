package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.csv")
	if err := os.WriteFile(path, []byte("Alpha,20,slip,5,100.00\n"), 0644); err != nil {
		t.Fatalf("writing fleet file: %v", err)
	}

	w, err := newFileWatch(path)
	if err != nil {
		t.Skipf("file watching not available: %v", err)
	}
	defer w.Close()

	if w.Changed() {
		t.Fatal("Changed() = true before any modification")
	}

	if err := os.WriteFile(path, []byte("beta,10,land,B,0.00\n"), 0644); err != nil {
		t.Fatalf("modifying fleet file: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for !w.Changed() {
		if time.Now().After(deadline) {
			t.Fatal("Changed() stayed false after the file was modified")
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Let the event queue drain before resetting: one write can surface as
	// several events.
	time.Sleep(200 * time.Millisecond)
	w.Reset()
	if w.Changed() {
		t.Error("Changed() = true after Reset()")
	}
}

func TestFileWatch_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fleet.csv")
	if err := os.WriteFile(path, []byte("Alpha,20,slip,5,100.00\n"), 0644); err != nil {
		t.Fatalf("writing fleet file: %v", err)
	}

	w, err := newFileWatch(path)
	if err != nil {
		t.Skipf("file watching not available: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x\n"), 0644); err != nil {
		t.Fatalf("writing sibling file: %v", err)
	}

	time.Sleep(200 * time.Millisecond)
	if w.Changed() {
		t.Error("Changed() = true for a sibling file modification")
	}
}
