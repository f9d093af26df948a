package monitor

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

var (
	// ErrNotFound means the pid no longer exists.
	ErrNotFound = errors.New("process not found")
	// ErrAccessDenied means the caller may not signal that process.
	ErrAccessDenied = errors.New("access denied")
	// ErrInvalidPID means the input was not a usable pid.
	ErrInvalidPID = errors.New("invalid pid")
)

// Actuator terminates processes. It lives outside the read path: every call
// re-resolves the pid against the live process table instead of trusting
// the last rendered snapshot. A pid recycled by the OS between confirmation
// and signal can still hit the wrong process; that window is inherent to
// signalling by pid and is not closed here.
type Actuator struct{}

func NewActuator() *Actuator {
	return &Actuator{}
}

// Terminate sends SIGTERM to pid.
func (a *Actuator) Terminate(pid int32) error {
	if pid < 0 {
		return ErrInvalidPID
	}

	proc, err := process.NewProcess(pid)
	if err != nil {
		return ErrNotFound
	}

	if err := proc.Terminate(); err != nil {
		if isPermission(err) {
			return ErrAccessDenied
		}
		return ErrNotFound
	}
	return nil
}

// Name resolves the current name of pid, for the confirmation prompt.
func (a *Actuator) Name(pid int32) (string, error) {
	if pid < 0 {
		return "", ErrInvalidPID
	}
	proc, err := process.NewProcess(pid)
	if err != nil {
		return "", ErrNotFound
	}
	name, err := proc.Name()
	if err != nil {
		return "", ErrNotFound
	}
	return name, nil
}

// ParsePID validates user input destined for the actuator.
func ParsePID(input string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 32)
	if err != nil || n < 0 {
		return 0, ErrInvalidPID
	}
	return int32(n), nil
}

func isPermission(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "permission") ||
		strings.Contains(strings.ToLower(err.Error()), "operation not permitted")
}
