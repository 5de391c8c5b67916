package app

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const watchedOps = fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// dirWatcher reports content changes of the directory being browsed. Only
// one directory is watched at a time; bursts of events collapse into a
// single pending notification.
type dirWatcher struct {
	fsWatcher *fsnotify.Watcher

	mu  sync.Mutex
	dir string

	changes chan string
	done    chan struct{}
	log     logrus.FieldLogger
}

func newDirWatcher(log logrus.FieldLogger) (*dirWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	w := &dirWatcher{
		fsWatcher: fsWatcher,
		changes:   make(chan string, 1),
		done:      make(chan struct{}),
		log:       log,
	}
	go w.run()
	return w, nil
}

// Changes delivers the directory whose listing changed.
func (w *dirWatcher) Changes() <-chan string {
	if w == nil {
		return nil
	}
	return w.changes
}

// Watch replaces the watched directory with dir.
func (w *dirWatcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dir == dir {
		return nil
	}
	if w.dir != "" {
		_ = w.fsWatcher.Remove(w.dir)
		w.dir = ""
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.dir = dir
	return nil
}

func (w *dirWatcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.fsWatcher.Close()
}

func (w *dirWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&watchedOps == 0 {
				continue
			}
			w.notify(w.changedDir(event.Name))
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("directory watcher error")
		}
	}
}

// changedDir maps an event path to the directory whose listing it affects.
// Removing or renaming the watched directory itself reports that directory.
func (w *dirWatcher) changedDir(name string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dir != "" && filepath.Clean(name) == w.dir {
		return w.dir
	}
	return filepath.Dir(name)
}

func (w *dirWatcher) notify(dir string) {
	select {
	case w.changes <- dir:
	default:
		// a notification is already pending; the refresh it triggers
		// will pick this change up too
	}
}
