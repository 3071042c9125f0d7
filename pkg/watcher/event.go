package watcher

import "os"

type EventType = string

const (
	CREATED  EventType = "Created"
	MODIFIED EventType = "Modified"
	DELETED  EventType = "Deleted"
)

type Event struct {
	EventType EventType
	Path      string
	Info      os.FileInfo // nil for DELETED
}

// Events is a batch of changes, keeping the latest event per file.
type Events struct {
	latest map[string]Event
}

func newEventBatch() *Events {
	return &Events{latest: make(map[string]Event)}
}

func (e *Events) addEvent(path string, event EventType, info os.FileInfo) {
	e.latest[path] = Event{EventType: event, Path: path, Info: info}
}

// Events returns the events of the batch, in no particular order.
func (e *Events) Events() []Event {
	events := make([]Event, 0, len(e.latest))
	for _, event := range e.latest {
		events = append(events, event)
	}
	return events
}
