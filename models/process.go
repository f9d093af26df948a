package models

// ProcessStatus is the closed set of process states shown in the monitor.
type ProcessStatus int

const (
	StatusUnknown ProcessStatus = iota
	StatusRunning
	StatusSleeping
	StatusDiskSleep
	StatusStopped
	StatusZombie
	StatusDead
)

// ParseStatus maps a gopsutil status string onto the enum.
func ParseStatus(s string) ProcessStatus {
	switch s {
	case "running":
		return StatusRunning
	case "sleep", "sleeping", "idle":
		return StatusSleeping
	case "wait", "disk-sleep":
		return StatusDiskSleep
	case "stop", "stopped":
		return StatusStopped
	case "zombie":
		return StatusZombie
	case "dead":
		return StatusDead
	default:
		return StatusUnknown
	}
}

func (s ProcessStatus) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSleeping:
		return "sleeping"
	case StatusDiskSleep:
		return "disk sleep"
	case StatusStopped:
		return "stopped"
	case StatusZombie:
		return "zombie"
	case StatusDead:
		return "dead"
	default:
		return "unknown"
	}
}

// ProcessRecord is one process as seen in a single snapshot. Records are
// built fresh on every snapshot and never mutated; pid equality is the only
// identity across snapshots and is not stable if the OS recycles pids.
type ProcessRecord struct {
	PID           int32
	Name          string
	Owner         string
	CPUPercent    float64
	MemoryPercent float64
	ResidentBytes uint64
	Status        ProcessStatus
}

// MemoryMB is the resident set in megabytes, for display.
func (r ProcessRecord) MemoryMB() float64 {
	return float64(r.ResidentBytes) / (1024 * 1024)
}
