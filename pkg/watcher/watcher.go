// Package watcher reports changes to a fixed set of files, such as
// settings files. The files need not exist; their directories are watched.
package watcher

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Watcher struct {
	mutex sync.Mutex

	log *zerolog.Logger

	watcher *fsnotify.Watcher
	files   map[string]struct{}
	stop    chan struct{}
	done    chan struct{}

	// EventsReady receives a value when a batch of events is ready to be
	// read with GetEventsBatch. Notifications of unread batches are merged.
	EventsReady chan struct{}

	events         *Events
	notifyListener func()
}

// New watches files, merging changes closer together than delay into one batch.
func New(delay time.Duration, files ...string) (*Watcher, error) {
	fswatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "unable to create watcher")
	}

	logger := log.With().Str("component", "watcher").Logger()
	w := &Watcher{
		watcher:     fswatcher,
		log:         &logger,
		files:       make(map[string]struct{}),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
		EventsReady: make(chan struct{}, 1),
	}

	dirs := make(map[string]struct{})
	for _, f := range files {
		f = filepath.Clean(f)
		w.files[f] = struct{}{}
		dirs[filepath.Dir(f)] = struct{}{}
	}
	for dir := range dirs {
		err := fswatcher.Add(dir)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("dir", dir).Msg("not watching missing directory")
			continue
		} else if err != nil {
			_ = fswatcher.Close()
			return nil, errors.Wrapf(err, "unable to watch %s", dir)
		}
	}

	d := debounce.New(delay)
	w.notifyListener = func() {
		d(func() {
			select {
			case w.EventsReady <- struct{}{}:
			default:
			}
		})
	}

	go w.listenForChangeEvents()
	logger.Debug().Int("files", len(w.files)).Msg("file watcher created")
	return w, nil
}

func (w *Watcher) listenForChangeEvents() {
	defer close(w.done)
	for {
		select {
		case <-w.stop:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			path := filepath.Clean(event.Name)
			if _, watched := w.files[path]; !watched {
				continue
			}
			switch {
			case event.Op&fsnotify.Create == fsnotify.Create:
				w.handleEvent(path, CREATED)
			case event.Op&fsnotify.Write == fsnotify.Write:
				w.handleEvent(path, MODIFIED)
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				w.recordEventInBatch(path, DELETED, nil)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) handleEvent(path string, event EventType) {
	info, err := os.Stat(path)
	if err != nil {
		w.log.Err(err).Str("path", path).Msg("unable to stat file")
		return
	}
	if !info.IsDir() {
		w.recordEventInBatch(path, event, info)
	}
}

func (w *Watcher) recordEventInBatch(path string, event EventType, info os.FileInfo) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.events == nil {
		w.events = newEventBatch()
	}
	w.events.addEvent(path, event, info)
	w.notifyListener()
}

// GetEventsBatch returns the events since the last call, or nil if there were none.
func (w *Watcher) GetEventsBatch() *Events {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	events := w.events
	w.events = nil
	return events
}

// Close stops watching. EventsReady is not closed.
func (w *Watcher) Close() error {
	close(w.stop)
	<-w.done
	return w.watcher.Close()
}
