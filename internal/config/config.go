package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	HistoryLineCount = 13
	LoopPauseTime    = 10 * time.Millisecond
	WindowTitle      = "Event List"
	EventQueueSize   = 256

	// Used until the terminal reports its real size
	FallbackWidth  = 80
	FallbackHeight = 24

	JoystickDevRoot = "/dev/input"
	JoystickSysRoot = "/sys/class/input"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	HistoryLineCount int
	LoopPause        time.Duration
	Title            string
	EventQueueSize   int
	FallbackWidth    int
	FallbackHeight   int
	JoystickDevRoot  string
	JoystickSysRoot  string
}

// LoadConfig returns the built-in configuration. Nothing is read from disk or
// the environment.
func LoadConfig() (*Config, error) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		HistoryLineCount: HistoryLineCount,
		LoopPause:        LoopPauseTime,
		Title:            WindowTitle,
		EventQueueSize:   EventQueueSize,
		FallbackWidth:    FallbackWidth,
		FallbackHeight:   FallbackHeight,
		JoystickDevRoot:  JoystickDevRoot,
		JoystickSysRoot:  JoystickSysRoot,
	}
}

func (c *Config) Validate() error {
	if c.HistoryLineCount <= 0 {
		return fmt.Errorf("%w: history line count %d", ErrInvalidConfig, c.HistoryLineCount)
	}
	if c.LoopPause <= 0 {
		return fmt.Errorf("%w: loop pause %s", ErrInvalidConfig, c.LoopPause)
	}
	if c.EventQueueSize <= 0 {
		return fmt.Errorf("%w: event queue size %d", ErrInvalidConfig, c.EventQueueSize)
	}
	if c.FallbackWidth <= 0 || c.FallbackHeight <= 0 {
		return fmt.Errorf("%w: fallback size %dx%d", ErrInvalidConfig, c.FallbackWidth, c.FallbackHeight)
	}
	return nil
}
