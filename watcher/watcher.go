package watcher

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"layoutcycle/config"
	"layoutcycle/log"
)

// Event is sent each time the watched config file is rewritten
type Event struct {
	Path   string
	Config *config.Config
	Err    error
}

// Watcher reloads a config file whenever it changes on disk
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	Events    chan Event
	done      chan struct{}
}

// New creates a Watcher for the config file at path
func New(path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher: fsw,
		path:      absPath,
		Events:    make(chan Event, 10),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching. The parent directory is watched rather than the
// file itself so editors that save by rename are still picked up, and so a
// config file created after startup is noticed. The directory is created
// when it does not exist yet.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}
	go w.run()
	return nil
}

// Stop stops the watcher
func (w *Watcher) Stop() {
	close(w.done)
	w.fsWatcher.Close()
}

func (w *Watcher) run() {
	defer close(w.Events)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := config.LoadConfig(w.path)
			if err != nil {
				log.Printf("config reload %s: %v", w.path, err)
			} else {
				log.Printf("config reloaded from %s", w.path)
			}
			if !w.send(Event{Path: w.path, Config: cfg, Err: err}) {
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) send(e Event) bool {
	select {
	case w.Events <- e:
		return true
	case <-w.done:
		return false
	}
}
