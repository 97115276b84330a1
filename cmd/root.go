package cmd

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Rorical/eventlist/internal/app"
	"github.com/Rorical/eventlist/internal/config"
	"github.com/Rorical/eventlist/internal/devices"
	"github.com/Rorical/eventlist/internal/event"
)

var errNotTerminal = errors.New("stdout is not a terminal")

var rootCmd = &cobra.Command{
	Use:   "eventlist",
	Short: "Show live input device state and a log of input events",
	Long: `eventlist displays the state of the mouse and keyboard at the top of the
terminal and a scrolling list of raw input and window events below it.
Press escape or ctrl+c to exit.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			log.Fatalf("Failed to start: %v", errNotTerminal)
		}

		application, err := app.NewApplication(cfg, joysticks(cfg), initialSize(cfg, fd))
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func joysticks(cfg *config.Config) devices.Enumerator {
	return devices.Linux{
		DevRoot: cfg.JoystickDevRoot,
		SysRoot: cfg.JoystickSysRoot,
	}
}

func initialSize(cfg *config.Config, fd int) event.Size {
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return event.Size{Width: cfg.FallbackWidth, Height: cfg.FallbackHeight}
	}
	return event.Size{Width: w, Height: h}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}
