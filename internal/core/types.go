package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// ControlState is the run/pause state of a simulation.
type ControlState uint8

const (
	// Running advances generations as time accumulates.
	Running ControlState = iota
	// Paused only advances on explicit step requests.
	Paused
)

func (s ControlState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "unknown"
}

// Sim defines the contract a driver needs from a frame-driven automaton.
type Sim interface {
	Name() string
	Size() Size
	State() ControlState
	Generation() uint64
	Population() int
	Alive(x, y int) bool
}
