package anim

// State is the lifecycle state of an Animable.
type State int

const (
	// Stopped means the animation is not running. Changing state to
	// Running restarts it from the beginning.
	Stopped State = iota

	// Paused means the animation is stopped but keeps its position.
	// Changing state to Running continues from the paused position.
	Paused

	// Running means the animation is advanced on every Group.Step call.
	Running
)

// String returns a human-readable state name for log output.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	default:
		return "Unknown"
	}
}
