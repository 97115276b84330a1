package core

import (
	"fmt"

	"github.com/Rorical/eventlist/internal/config"
	"github.com/Rorical/eventlist/internal/devices"
	"github.com/Rorical/eventlist/internal/event"
	"github.com/Rorical/eventlist/internal/history"
	"github.com/Rorical/eventlist/internal/input"
	"github.com/Rorical/eventlist/internal/models"
)

// Backend is the input service the loop drives
type Backend interface {
	input.Backend
	Poll() []event.Event
	SetGrab(grab bool)
	KeyName(code event.KeyCode) string
}

// Loop owns all state mutated by the application. It is not safe for
// concurrent use; every method must be called from the program's update loop.
type Loop struct {
	backend Backend
	history *history.Log
	status  *input.Tracker
	surface event.Size
	state   State
}

func NewLoop(cfg *config.Config, backend Backend, found []devices.Device, surface event.Size) (*Loop, error) {
	log, err := history.New(cfg.HistoryLineCount)
	if err != nil {
		return nil, fmt.Errorf("failed to create history: %w", err)
	}
	for _, line := range devices.SeedLines(found) {
		log.Append(line)
	}

	l := &Loop{
		backend: backend,
		history: log,
		status:  input.NewTracker(),
		surface: surface,
		state:   Running,
	}
	l.status.Refresh(backend)
	return l, nil
}

// Handle applies a single event to the loop state
func (l *Loop) Handle(e event.Event) {
	switch e.Kind {
	case event.Quit:
		l.state = Terminating
	case event.KeyDown:
		if code, ok := e.Key(); ok {
			if code == event.KeyEscape {
				l.state = Terminating
			} else {
				l.status.RecordKeypress(code)
			}
		}
	case event.MouseButtonDown:
		l.backend.SetGrab(true)
	case event.MouseButtonUp:
		l.backend.SetGrab(false)
	case event.VideoResize:
		if size, ok := e.Size(); ok {
			l.surface = size
		}
	}

	if e.Kind != event.MouseMotion {
		l.history.Append(event.Format(e))
	}
}

// Step handles a whole batch. Events after a quit in the same batch are still
// applied.
func (l *Loop) Step(batch []event.Event) {
	for _, e := range batch {
		l.Handle(e)
	}
}

// Tick drains the backend, applies the batch, and refreshes the snapshot
func (l *Loop) Tick() State {
	l.Step(l.backend.Poll())
	l.status.Refresh(l.backend)
	return l.state
}

func (l *Loop) State() State {
	return l.state
}

func (l *Loop) Running() bool {
	return l.state == Running
}

func (l *Loop) History() []string {
	return l.history.Entries()
}

func (l *Loop) Snapshot() input.Snapshot {
	return l.status.Snapshot()
}

func (l *Loop) Frame() models.Frame {
	return models.Frame{
		Surface:  l.surface,
		Snapshot: l.status.Snapshot(),
		History:  l.history.ForDisplay(),
		KeyName:  l.backend.KeyName,
	}
}
