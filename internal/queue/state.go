package queue

// State is the lifecycle state of a [Client].
type State string

const (
	// StateIdle is the initial state; no session is held.
	StateIdle State = "idle"
	// StateQueuing means an enter request was accepted or is in flight and
	// the client is polling.
	StateQueuing State = "queuing"
	// StateReady is terminal for the session: the server allowed entry.
	StateReady State = "ready"
	// StateError is terminal for the attempt: enter failed or poll retries
	// were exhausted.
	StateError State = "error"
)

func (s State) String() string { return string(s) }

// Terminal reports whether no further automatic polling happens in s.
func (s State) Terminal() bool {
	return s == StateReady || s == StateError
}

// StateChange is the payload of the stateChanged event.
type StateChange struct {
	Old State `json:"old_state"`
	New State `json:"new_state"`
}
