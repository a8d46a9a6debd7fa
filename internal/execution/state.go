package execution

// State is the lifecycle position of a Runner
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateAllPassed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateRunning:
		return "running"
	case StateAllPassed:
		return "all passed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
