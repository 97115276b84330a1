package backend

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/eventlist/internal/event"
	"github.com/Rorical/eventlist/internal/eventbus"
)

// Terminal is the input backend for a Bubble Tea program. Device state is
// derived from the events posted to it; events wait in a bounded queue until
// the main loop polls them.
type Terminal struct {
	queue *eventbus.Queue

	mouseFocused    bool
	keyboardFocused bool
	mousePosition   event.Position
	grabbed         bool
}

func NewTerminal(queueSize int) *Terminal {
	return &Terminal{
		queue: eventbus.NewQueue(queueSize),
		// The program starts in the foreground terminal
		keyboardFocused: true,
	}
}

// Post records e against the device state and queues it for the next poll
func (t *Terminal) Post(e event.Event) error {
	t.observe(e)
	return t.queue.Post(e)
}

func (t *Terminal) observe(e event.Event) {
	switch {
	case e.IsMouse():
		t.mouseFocused = true
		if pos, ok := e.Position(); ok {
			t.mousePosition = pos
		}
	case e.Kind == event.KeyDown, e.Kind == event.WindowFocusGained:
		t.keyboardFocused = true
	case e.Kind == event.WindowFocusLost:
		t.keyboardFocused = false
		t.mouseFocused = false
	}
}

func (t *Terminal) Poll() []event.Event {
	return t.queue.Drain()
}

func (t *Terminal) SetErrorCallback(callback func(eventbus.QueueError)) {
	t.queue.SetErrorCallback(callback)
}

func (t *Terminal) MouseFocused() bool            { return t.mouseFocused }
func (t *Terminal) KeyboardFocused() bool         { return t.keyboardFocused }
func (t *Terminal) MousePosition() event.Position { return t.mousePosition }
func (t *Terminal) Grabbed() bool                 { return t.grabbed }

func (t *Terminal) SetGrab(grab bool) {
	t.grabbed = grab
}

// KeyName translates a key code into a human readable name
func (t *Terminal) KeyName(code event.KeyCode) string {
	return KeyName(code)
}

func KeyName(code event.KeyCode) string {
	switch {
	case code == ' ':
		return "space"
	case code > ' ' && code != 127 && utf8.ValidRune(rune(code)):
		return string(rune(code))
	}
	if name := tea.KeyType(code).String(); name != "" {
		return name
	}
	return "unknown"
}

func (t *Terminal) Close() {
	t.queue.Close()
}
