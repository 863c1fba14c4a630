package cmd

import (
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// fileWatch observes a single file for external modification. It only
// records that a change happened; the session decides what to do with it.
type fileWatch struct {
	w       *fsnotify.Watcher
	changed atomic.Bool
}

// newFileWatch starts watching path. The parent directory is watched rather
// than the file itself: editors replace files, which drops a direct watch.
func newFileWatch(path string) (*fileWatch, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}

	fw := &fileWatch{w: w}
	base := filepath.Base(path)
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) == base && ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					fw.changed.Store(true)
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return fw, nil
}

// Changed reports whether the file was modified since the watch started.
func (f *fileWatch) Changed() bool { return f.changed.Load() }

// Reset clears the changed flag.
func (f *fileWatch) Reset() { f.changed.Store(false) }

func (f *fileWatch) Close() error { return f.w.Close() }
