package tween

import "fmt"

// State is where a tween sits in its lifecycle.
type State uint8

const (
	StateIdle      State = iota // configured, never started
	StateDelayed                // waiting out the initial or repeat delay
	StateActive                 // time is elapsing
	StatePaused                 // Delayed or Active with time frozen
	StateCompleted              // last playthrough finished
	StateStopped                // stopped from outside
)

var stateNames = [...]string{
	StateIdle:      "Idle",
	StateDelayed:   "Delayed",
	StateActive:    "Active",
	StatePaused:    "Paused",
	StateCompleted: "Completed",
	StateStopped:   "Stopped",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// running reports whether time advances in this state.
func (s State) running() bool {
	return s == StateDelayed || s == StateActive
}

// Allowed moves between the stored states. Paused is not stored; it is the
// paused flag layered over Delayed or Active.
var transitions = map[State][]State{
	StateIdle:      {StateDelayed, StateActive, StateStopped},
	StateDelayed:   {StateDelayed, StateActive, StateStopped},
	StateActive:    {StateDelayed, StateActive, StateCompleted, StateStopped},
	StateCompleted: {StateDelayed, StateActive, StateStopped},
	StateStopped:   {StateDelayed, StateActive, StateStopped},
}

func canTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
