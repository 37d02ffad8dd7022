package loader

// State is the lifecycle state of a Loader.
type State uint32

const (
	// StateUnresolved means Load has not been called yet.
	StateUnresolved State = iota

	// StateProbing means the first Load is probing and binding.
	StateProbing

	// StateBound means the library is bound. Terminal.
	StateBound

	// StateAbsent means the load failed. Terminal.
	StateAbsent
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "UNRESOLVED"
	case StateProbing:
		return "PROBING"
	case StateBound:
		return "BOUND"
	case StateAbsent:
		return "ABSENT"
	default:
		return "UNKNOWN"
	}
}

// IsTerminal reports whether no further transition can leave s.
func (s State) IsTerminal() bool {
	return s == StateBound || s == StateAbsent
}
