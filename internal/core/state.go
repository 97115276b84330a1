package core

import "fmt"

// State is the lifecycle state of the main loop
type State int

const (
	Running State = iota
	Terminating
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Terminating:
		return "Terminating"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
