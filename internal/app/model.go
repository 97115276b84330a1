package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/eventlist/internal/backend"
	"github.com/Rorical/eventlist/internal/config"
	"github.com/Rorical/eventlist/internal/core"
	"github.com/Rorical/eventlist/internal/eventbus"
	"github.com/Rorical/eventlist/internal/update"
	"github.com/Rorical/eventlist/ui/components"
)

// AppModel adapts the loop to Bubble Tea. Input messages are queued on the
// backend; the loop only sees them on the next tick.
type AppModel struct {
	config  *config.Config
	backend *backend.Terminal
	loop    *core.Loop
	dropped int
}

func NewAppModel(cfg *config.Config, term *backend.Terminal, loop *core.Loop) *AppModel {
	m := &AppModel{
		config:  cfg,
		backend: term,
		loop:    loop,
	}
	term.SetErrorCallback(func(eventbus.QueueError) {
		m.dropped++
	})
	return m
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.config.Title),
		update.TickCmd(m.config.LoopPause),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(update.TickMsg); ok {
		if m.loop.Tick() == core.Terminating {
			return m, tea.Quit
		}
		return m, update.TickCmd(m.config.LoopPause)
	}

	if e, ok := update.Translate(msg); ok {
		// Rejected events are counted by the queue's error callback
		_ = m.backend.Post(e)
	}
	return m, nil
}

func (m *AppModel) View() string {
	frame := m.loop.Frame()
	status := components.RenderStatus(frame.Snapshot, frame.KeyName, m.dropped, frame.Surface.Width)
	historyHeight := frame.Surface.Height - lipgloss.Height(status)
	if historyHeight <= 0 {
		return components.ClampHeight(status, frame.Surface.Height)
	}
	history := components.RenderHistory(frame.History, frame.Surface.Width, historyHeight)
	return components.ClampHeight(lipgloss.JoinVertical(lipgloss.Left, status, history), frame.Surface.Height)
}

// Dropped is the number of events rejected by a full queue
func (m *AppModel) Dropped() int {
	return m.dropped
}
