package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/eventlist/internal/backend"
	"github.com/Rorical/eventlist/internal/config"
	"github.com/Rorical/eventlist/internal/core"
	"github.com/Rorical/eventlist/internal/devices"
	"github.com/Rorical/eventlist/internal/event"
	"github.com/Rorical/eventlist/internal/update"
)

// Application manages the complete application lifecycle
type Application struct {
	config  *config.Config
	backend *backend.Terminal
	loop    *core.Loop
	model   *AppModel
	options []tea.ProgramOption
	signals chan os.Signal
}

// NewApplication enumerates devices and builds the loop. initial is the
// surface size to draw with until the terminal reports one.
func NewApplication(cfg *config.Config, enumerator devices.Enumerator, initial event.Size, opts ...tea.ProgramOption) (*Application, error) {
	found, err := enumerator.Enumerate()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate input devices: %w", err)
	}

	term := backend.NewTerminal(cfg.EventQueueSize)
	loop, err := core.NewLoop(cfg, term, found, initial)
	if err != nil {
		term.Close()
		return nil, err
	}

	// Registered here so a signal arriving before Start is queued, not fatal
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	return &Application{
		config:  cfg,
		backend: term,
		loop:    loop,
		model:   NewAppModel(cfg, term, loop),
		options: opts,
		signals: signals,
	}, nil
}

func (app *Application) Start() error {
	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
		// Signals become Quit events so they end the loop like any other quit
		tea.WithoutSignalHandler(),
	}, app.options...)

	p := tea.NewProgram(app.model, opts...)

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case sig := <-app.signals:
				p.Send(update.SignalMsg{Signal: sig})
			case <-done:
				return
			}
		}
	}()

	_, err := p.Run()
	return err
}

func (app *Application) Stop() {
	signal.Stop(app.signals)
	app.backend.Close()
}
