package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce groups the burst of events an editor save produces.
const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a config file when it changes on disk.
//
// A reload applies the same command-line overrides as Load.
//
// Updates carries each successfully parsed and validated config; only the
// newest one is kept if the reader falls behind. Errors carries parse and
// validation failures, after which the previous config stays in effect.
// Both channels are closed once the watcher stops. Each update is a full
// Config; the game session applies only its camera section live.
type Watcher struct {
	Updates chan *Config
	Errors  chan error

	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

// Watch starts watching path. The containing directory is watched so that
// editors which save by rename are picked up.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		Updates:  make(chan *Config, 1),
		Errors:   make(chan error, 1),
		path:     abs,
		debounce: reloadDebounce,
		watcher:  fw,
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Updates)
		close(w.Errors)
		close(w.done)
	}()

	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(w.debounce)
		case <-pending:
			pending = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.path)
	if err == nil {
		err = applyFlags(cfg)
	}
	if err != nil {
		w.sendError(err)
		return
	}

	// Replace an unread update rather than block on it.
	select {
	case <-w.Updates:
	default:
	}
	select {
	case w.Updates <- cfg:
	case <-w.closeCh:
	}
}

// sendError drops err if an earlier error is still unread.
func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
