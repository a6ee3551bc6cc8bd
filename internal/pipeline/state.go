package pipeline

// State is a step of a pipeline run, or of one chunk within it.
type State string

const (
	StateCreated         State = "created"
	StateSegmented       State = "segmented"
	StatePacked          State = "packed"
	StateDispatched      State = "dispatched"
	StateCleanedReceived State = "cleaned_received"
	StateSanitized       State = "sanitized"
	StateReassembled     State = "reassembled"
	StateDone            State = "done"
	StateFailed          State = "failed"
)

// next lists the legal transitions. Any state may also move to StateFailed.
var next = map[State][]State{
	StateCreated:         {StateSegmented},
	StateSegmented:       {StatePacked},
	StatePacked:          {StateDispatched, StateReassembled, StateDone},
	StateDispatched:      {StateCleanedReceived},
	StateCleanedReceived: {StateSanitized, StateReassembled},
	StateSanitized:       {StateReassembled},
	StateReassembled:     {StateDone},
}

func canMove(from, to State) bool {
	if to == StateFailed {
		return from != StateDone && from != StateFailed
	}
	for _, s := range next[from] {
		if s == to {
			return true
		}
	}
	return false
}
