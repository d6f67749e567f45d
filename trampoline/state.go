package trampoline

// State is the phase of a top-level call as seen by an Observer.
//
// StateRunning → StateDeferred → StateRunning … → StateDone.
type State int

const (
	// StateRunning a step is being evaluated.
	StateRunning State = iota
	// StateDeferred the step produced a deferred call, the loop continues.
	StateDeferred
	// StateDone the step produced a final value, the loop exits.
	StateDone
)

var stateNames = [...]string{"running", "deferred", "done"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Observer is notified on every state transition with the number of bounces so far.
type Observer func(state State, bounces int)
