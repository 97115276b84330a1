package models

import (
	"github.com/Rorical/eventlist/internal/event"
	"github.com/Rorical/eventlist/internal/input"
)

// Frame is everything the renderer needs for one tick
type Frame struct {
	Surface  event.Size     // Current surface size
	Snapshot input.Snapshot // Device state refreshed this tick
	History  []string       // History lines, newest first
	KeyName  func(event.KeyCode) string
}
