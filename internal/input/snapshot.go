package input

import "github.com/Rorical/eventlist/internal/event"

// Backend exposes the device state the status panel reports on
type Backend interface {
	MouseFocused() bool
	KeyboardFocused() bool
	MousePosition() event.Position
	Grabbed() bool
}

// Snapshot is the per-tick view of the input devices
type Snapshot struct {
	MouseFocused    bool
	KeyboardFocused bool
	MousePosition   event.Position
	InputGrabbed    bool
	LastKey         event.KeyCode
	HasLastKey      bool
}

// Tracker owns the current Snapshot. Backend fields are replaced on every
// Refresh; the last key survives until the next RecordKeypress.
type Tracker struct {
	current Snapshot
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Refresh(b Backend) {
	t.current = Snapshot{
		MouseFocused:    b.MouseFocused(),
		KeyboardFocused: b.KeyboardFocused(),
		MousePosition:   b.MousePosition(),
		InputGrabbed:    b.Grabbed(),
		LastKey:         t.current.LastKey,
		HasLastKey:      t.current.HasLastKey,
	}
}

func (t *Tracker) RecordKeypress(code event.KeyCode) {
	t.current.LastKey = code
	t.current.HasLastKey = true
}

func (t *Tracker) Snapshot() Snapshot {
	return t.current
}
