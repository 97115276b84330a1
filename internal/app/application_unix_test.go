//go:build unix

package app_test

import (
	"io"
	"os"
	"syscall"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"gotest.tools/v3/assert"

	"github.com/Rorical/eventlist/internal/app"
	"github.com/Rorical/eventlist/internal/config"
	"github.com/Rorical/eventlist/internal/devices"
	"github.com/Rorical/eventlist/internal/event"
)

// Not parallel: the signal is delivered to the whole test process.
func TestApplication_SignalQuitsCleanly(t *testing.T) {
	for _, sig := range []syscall.Signal{syscall.SIGINT, syscall.SIGTERM} {
		t.Run(sig.String(), func(t *testing.T) {
			application, err := app.NewApplication(
				config.Default(),
				devices.Static{},
				event.Size{Width: 80, Height: 24},
				tea.WithInput(nil),
				tea.WithOutput(io.Discard),
			)
			assert.NilError(t, err)
			defer application.Stop()

			result := make(chan error, 1)
			go func() { result <- application.Start() }()
			assert.NilError(t, syscall.Kill(os.Getpid(), sig))

			select {
			case err := <-result:
				assert.NilError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatalf("application still running %s after %s", 5*time.Second, sig)
			}
		})
	}
}
