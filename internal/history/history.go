package history

import (
	"errors"
	"slices"
)

var ErrInvalidCapacity = errors.New("history capacity must be positive")

// Log is a bounded, append-only list of event descriptions. Once the log holds
// capacity entries every append drops the oldest one.
type Log struct {
	entries  []string
	capacity int
}

func New(capacity int) (*Log, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Log{
		entries:  make([]string, 0, capacity),
		capacity: capacity,
	}, nil
}

// Append adds entry at the tail, trimming the head back down to capacity
func (l *Log) Append(entry string) {
	l.entries = append(l.entries, entry)
	if over := len(l.entries) - l.capacity; over > 0 {
		// Shift into the front of the slice so the backing array stays bounded
		n := copy(l.entries, l.entries[over:])
		clear(l.entries[n:])
		l.entries = l.entries[:n]
	}
}

// Entries returns a copy of the retained entries, oldest first
func (l *Log) Entries() []string {
	return slices.Clone(l.entries)
}

// ForDisplay returns the retained entries newest first
func (l *Log) ForDisplay() []string {
	out := slices.Clone(l.entries)
	slices.Reverse(out)
	return out
}

func (l *Log) Len() int {
	return len(l.entries)
}

func (l *Log) Cap() int {
	return l.capacity
}
