package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/eventlist/internal/event"
)

var mouseButtons = map[tea.MouseButton]string{
	tea.MouseButtonNone:       "none",
	tea.MouseButtonLeft:       "left",
	tea.MouseButtonMiddle:     "middle",
	tea.MouseButtonRight:      "right",
	tea.MouseButtonWheelUp:    "wheel up",
	tea.MouseButtonWheelDown:  "wheel down",
	tea.MouseButtonWheelLeft:  "wheel left",
	tea.MouseButtonWheelRight: "wheel right",
	tea.MouseButtonBackward:   "backward",
	tea.MouseButtonForward:    "forward",
}

func buttonName(b tea.MouseButton) string {
	if name, ok := mouseButtons[b]; ok {
		return name
	}
	return "unknown"
}

// KeyCodeOf maps a key message onto a key code. Printable keys use their rune,
// everything else uses the Bubble Tea key type.
func KeyCodeOf(keyMsg tea.KeyMsg) event.KeyCode {
	switch keyMsg.Type {
	case tea.KeyRunes:
		if len(keyMsg.Runes) > 0 {
			return event.KeyCode(keyMsg.Runes[0])
		}
	case tea.KeySpace:
		return ' '
	}
	return event.KeyCode(keyMsg.Type)
}

// HandleKeyMsg translates a key press. ctrl+c is the terminal's close request.
func HandleKeyMsg(keyMsg tea.KeyMsg) event.Event {
	if keyMsg.Type == tea.KeyCtrlC {
		return event.QuitEvent()
	}
	name := keyMsg.String()
	if keyMsg.Alt {
		name = strings.TrimPrefix(name, "alt+")
	}
	return event.KeyDownEvent(KeyCodeOf(keyMsg), name, keyMsg.Alt)
}

func HandleMouseMsg(mouseMsg tea.MouseMsg) event.Event {
	pos := event.Position{X: mouseMsg.X, Y: mouseMsg.Y}
	button := buttonName(mouseMsg.Button)
	switch {
	case mouseMsg.Action == tea.MouseActionMotion:
		return event.MouseMotionEvent(pos, button)
	case tea.MouseEvent(mouseMsg).IsWheel():
		return event.MouseWheelEvent(pos, button)
	case mouseMsg.Action == tea.MouseActionPress:
		return event.MouseButtonDownEvent(pos, button)
	default:
		return event.MouseButtonUpEvent(pos, button)
	}
}

func HandleWindowSizeMsg(sizeMsg tea.WindowSizeMsg) event.Event {
	return event.VideoResizeEvent(event.Size{Width: sizeMsg.Width, Height: sizeMsg.Height})
}

type TickMsg time.Time

// TickCmd schedules the next loop iteration after the fixed pause
func TickCmd(pause time.Duration) tea.Cmd {
	return tea.Tick(pause, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
