package bot

// State is the lifecycle of a bot's session.
type State uint8

const (
	StateNeverSpawned State = iota
	StateAlive
	StateDead
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateNeverSpawned:
		return "never_spawned"
	case StateAlive:
		return "alive"
	case StateDead:
		return "dead"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
