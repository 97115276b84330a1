package event_test

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/Rorical/eventlist/internal/event"
)

func TestFormat(t *testing.T) {
	t.Parallel()
	cases := []struct {
		Name     string
		Event    event.Event
		Expected string
	}{
		{
			Name:     "Empty payload",
			Event:    event.QuitEvent(),
			Expected: "Quit: {}",
		},
		{
			Name:     "Key down",
			Event:    event.KeyDownEvent(97, "a", false),
			Expected: `KeyDown: {key: 97, name: "a", alt: false}`,
		},
		{
			Name:     "Button down",
			Event:    event.MouseButtonDownEvent(event.Position{X: 3, Y: 7}, "left"),
			Expected: `MouseButtonDown: {pos: (3, 7), button: "left"}`,
		},
		{
			Name:     "Resize",
			Event:    event.VideoResizeEvent(event.Size{Width: 120, Height: 40}),
			Expected: "VideoResize: {size: (120, 40), w: 120, h: 40}",
		},
		{
			Name:     "Focus lost",
			Event:    event.FocusLostEvent(),
			Expected: "WindowFocusLost: {}",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			assert.Check(t, is.Equal(tc.Expected, event.Format(tc.Event)))
		})
	}
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	code, ok := event.KeyDownEvent(event.KeyEscape, "esc", false).Key()
	assert.Assert(t, ok)
	assert.Check(t, is.Equal(event.KeyEscape, code))

	_, ok = event.QuitEvent().Key()
	assert.Check(t, !ok)

	pos, ok := event.MouseMotionEvent(event.Position{X: 1, Y: 2}, "none").Position()
	assert.Assert(t, ok)
	assert.Check(t, is.Equal(event.Position{X: 1, Y: 2}, pos))

	size, ok := event.VideoResizeEvent(event.Size{Width: 10, Height: 5}).Size()
	assert.Assert(t, ok)
	assert.Check(t, is.Equal(event.Size{Width: 10, Height: 5}, size))
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Check(t, is.Equal("MouseMotion", event.MouseMotion.String()))
	assert.Check(t, is.Equal("Unknown(99)", event.Kind(99).String()))
}

func TestIsMouse(t *testing.T) {
	t.Parallel()
	assert.Check(t, event.MouseWheelEvent(event.Position{}, "wheel up").IsMouse())
	assert.Check(t, !event.FocusGainedEvent().IsMouse())
}
