package imageio

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a single file. It watches the parent directory
// so editors that replace the file by rename are still seen.
type Watcher struct {
	path    string
	w       *fsnotify.Watcher
	changes chan string
	done    chan struct{}
}

func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	w := &Watcher{path: abs, w: fw, changes: make(chan string, 1), done: make(chan struct{})}
	go w.loop()
	return w, nil
}

// Changes delivers the watched path after each write or re-creation.
// Bursts collapse into one pending notification.
func (w *Watcher) Changes() <-chan string { return w.changes }

// Path is the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

func (w *Watcher) Close() error {
	err := w.w.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			select {
			case w.changes <- w.path:
			default:
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			log.Printf("watch %s: %v", w.path, err)
		}
	}
}
