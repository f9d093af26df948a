package monitor

// SortKey selects the process field the view orders by.
type SortKey int

const (
	SortCPU SortKey = iota
	SortMemory
	SortName
	SortPID
)

func (k SortKey) String() string {
	switch k {
	case SortCPU:
		return "cpu"
	case SortMemory:
		return "memory"
	case SortName:
		return "name"
	case SortPID:
		return "pid"
	default:
		return "cpu"
	}
}

// ControlState is the user-adjustable query state of the monitor. It is
// owned by the interactive loop and only mutated between refresh cycles.
type ControlState struct {
	SortKey        SortKey
	SortDescending bool
	NameFilter     string // case-insensitive substring, empty = no filter
	OwnerOnly      bool
}

// DefaultControlState is the startup state: cpu, descending, no filter.
func DefaultControlState() ControlState {
	return ControlState{SortKey: SortCPU, SortDescending: true}
}

// SetSort switches the sort key with its natural default direction:
// usage metrics descend, identity keys ascend.
func (s *ControlState) SetSort(key SortKey) {
	s.SortKey = key
	switch key {
	case SortCPU, SortMemory:
		s.SortDescending = true
	case SortName, SortPID:
		s.SortDescending = false
	}
}

// ToggleReverse flips the sort direction.
func (s *ControlState) ToggleReverse() {
	s.SortDescending = !s.SortDescending
}

// SetFilter sets the name filter; empty text clears it.
func (s *ControlState) SetFilter(text string) {
	s.NameFilter = text
}

// ToggleOwnerOnly flips the current-user-only flag.
func (s *ControlState) ToggleOwnerOnly() {
	s.OwnerOnly = !s.OwnerOnly
}
