package update

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/eventlist/internal/event"
)

// SignalMsg carries an OS termination signal into the program
type SignalMsg struct {
	Signal os.Signal
}

// Translate converts a Bubble Tea message into an input event. Messages that
// are neither terminal input nor a termination signal report false.
func Translate(msg tea.Msg) (event.Event, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(msg), true
	case tea.MouseMsg:
		return HandleMouseMsg(msg), true
	case tea.WindowSizeMsg:
		return HandleWindowSizeMsg(msg), true
	case tea.FocusMsg:
		return event.FocusGainedEvent(), true
	case tea.BlurMsg:
		return event.FocusLostEvent(), true
	case SignalMsg:
		return event.QuitEvent(), true
	}
	return event.Event{}, false
}
