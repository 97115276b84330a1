package event

import (
	"fmt"
	"strings"
)

// Kind identifies the type of an input or window event
type Kind int

const (
	Quit Kind = iota
	KeyDown
	MouseMotion
	MouseButtonDown
	MouseButtonUp
	MouseWheel
	VideoResize
	WindowFocusGained
	WindowFocusLost
)

var kindNames = map[Kind]string{
	Quit:              "Quit",
	KeyDown:           "KeyDown",
	MouseMotion:       "MouseMotion",
	MouseButtonDown:   "MouseButtonDown",
	MouseButtonUp:     "MouseButtonUp",
	MouseWheel:        "MouseWheel",
	VideoResize:       "VideoResize",
	WindowFocusGained: "WindowFocusGained",
	WindowFocusLost:   "WindowFocusLost",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(k))
}

// KeyCode is a backend-neutral key identifier
type KeyCode int

// KeyEscape is the code delivered for the escape key
const KeyEscape KeyCode = 27

// Position is a pointer location in surface cells
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is a surface size in cells
type Size struct {
	Width, Height int
}

func (s Size) String() string {
	return fmt.Sprintf("(%d, %d)", s.Width, s.Height)
}

// Field is one key/value pair of an event payload
type Field struct {
	Key   string
	Value any
}

// Event is a single input or window event. Fields are kept in insertion order.
type Event struct {
	Kind   Kind
	Fields []Field
}

// Field keys shared by constructors and accessors
const (
	fieldKey    = "key"
	fieldName   = "name"
	fieldAlt    = "alt"
	fieldPos    = "pos"
	fieldButton = "button"
	fieldSize   = "size"
	fieldW      = "w"
	fieldH      = "h"
)

func QuitEvent() Event {
	return Event{Kind: Quit}
}

func KeyDownEvent(code KeyCode, name string, alt bool) Event {
	return Event{Kind: KeyDown, Fields: []Field{
		{Key: fieldKey, Value: code},
		{Key: fieldName, Value: name},
		{Key: fieldAlt, Value: alt},
	}}
}

func MouseMotionEvent(pos Position, button string) Event {
	return Event{Kind: MouseMotion, Fields: []Field{
		{Key: fieldPos, Value: pos},
		{Key: fieldButton, Value: button},
	}}
}

func MouseButtonDownEvent(pos Position, button string) Event {
	return mouseButton(MouseButtonDown, pos, button)
}

func MouseButtonUpEvent(pos Position, button string) Event {
	return mouseButton(MouseButtonUp, pos, button)
}

func MouseWheelEvent(pos Position, button string) Event {
	return mouseButton(MouseWheel, pos, button)
}

func mouseButton(kind Kind, pos Position, button string) Event {
	return Event{Kind: kind, Fields: []Field{
		{Key: fieldPos, Value: pos},
		{Key: fieldButton, Value: button},
	}}
}

func VideoResizeEvent(size Size) Event {
	return Event{Kind: VideoResize, Fields: []Field{
		{Key: fieldSize, Value: size},
		{Key: fieldW, Value: size.Width},
		{Key: fieldH, Value: size.Height},
	}}
}

func FocusGainedEvent() Event {
	return Event{Kind: WindowFocusGained}
}

func FocusLostEvent() Event {
	return Event{Kind: WindowFocusLost}
}

// Lookup returns the value stored under key
func (e Event) Lookup(key string) (any, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Key returns the key code of a KeyDown event
func (e Event) Key() (KeyCode, bool) {
	v, ok := e.Lookup(fieldKey)
	if !ok {
		return 0, false
	}
	code, ok := v.(KeyCode)
	return code, ok
}

// Position returns the pointer position carried by mouse events
func (e Event) Position() (Position, bool) {
	v, ok := e.Lookup(fieldPos)
	if !ok {
		return Position{}, false
	}
	pos, ok := v.(Position)
	return pos, ok
}

// Size returns the new surface size of a VideoResize event
func (e Event) Size() (Size, bool) {
	v, ok := e.Lookup(fieldSize)
	if !ok {
		return Size{}, false
	}
	size, ok := v.(Size)
	return size, ok
}

// IsMouse reports whether the event came from the pointer device
func (e Event) IsMouse() bool {
	switch e.Kind {
	case MouseMotion, MouseButtonDown, MouseButtonUp, MouseWheel:
		return true
	}
	return false
}

// Format renders an event as a history line: "<Kind>: {k1: v1, k2: v2}".
func Format(e Event) string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": {")
	for i, f := range e.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Key)
		b.WriteString(": ")
		b.WriteString(formatValue(f.Value))
	}
	b.WriteString("}")
	return b.String()
}

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
