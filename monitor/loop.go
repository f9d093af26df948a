package monitor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"termtools/models"
)

// SnapshotSource yields a fresh process snapshot on demand.
type SnapshotSource interface {
	Snapshot() ([]models.ProcessRecord, error)
}

// StatsSource yields the system-wide summary for the current cycle.
type StatsSource interface {
	Stats() (models.SystemStats, error)
}

// Renderer draws the monitor's output. It must not mutate its inputs or
// block beyond flushing.
type Renderer interface {
	Dashboard(view []models.ProcessRecord, stats models.SystemStats, state ControlState)
	Compact(view []models.ProcessRecord, stats models.SystemStats, elapsed time.Duration)
	Notice(msg string)
	Warning(msg string)
	Prompt(label string)
}

// Killer is the destructive half of the monitor, kept off the read path.
type Killer interface {
	Terminate(pid int32) error
	Name(pid int32) (string, error)
}

// Clock abstracts time so loop boundaries are testable.
type Clock interface {
	Now() time.Time
	// Sleep waits for d or until ctx is cancelled; false means cancelled.
	Sleep(ctx context.Context, d time.Duration) bool
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// Options wires a Monitor together. Clock defaults to wall time.
type Options struct {
	Snapshots   SnapshotSource
	Stats       StatsSource
	Renderer    Renderer
	Actuator    Killer
	View        *View
	Input       io.Reader
	TopLimit    int
	LiveLimit   int
	LiveQuantum time.Duration
	Clock       Clock
}

// Monitor is the refresh loop around one ControlState. Strictly sequential:
// snapshot, view, render, and the blocking command read all happen on one
// goroutine; the state is only touched between cycles, so no locking.
type Monitor struct {
	snapshots SnapshotSource
	stats     StatsSource
	render    Renderer
	killer    Killer
	view      *View
	state     ControlState
	topLimit  int
	liveLimit int
	quantum   time.Duration
	clock     Clock
	lines     <-chan string
}

func New(opts Options) *Monitor {
	clock := opts.Clock
	if clock == nil {
		clock = realClock{}
	}
	quantum := opts.LiveQuantum
	if quantum <= 0 {
		quantum = 500 * time.Millisecond
	}
	return &Monitor{
		snapshots: opts.Snapshots,
		stats:     opts.Stats,
		render:    opts.Renderer,
		killer:    opts.Actuator,
		view:      opts.View,
		state:     DefaultControlState(),
		topLimit:  opts.TopLimit,
		liveLimit: opts.LiveLimit,
		quantum:   quantum,
		clock:     clock,
		lines:     readLines(opts.Input),
	}
}

// readLines feeds stdin lines into a channel so the loop can select between
// user input and cancellation. The channel closes on EOF or read failure,
// which the loop treats as an implicit quit.
func readLines(r io.Reader) <-chan string {
	ch := make(chan string)
	if r == nil {
		close(ch)
		return ch
	}
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			ch <- scanner.Text()
		}
	}()
	return ch
}

// RunInteractive drives the render/await-command/apply cycle until quit,
// input EOF, or cancellation.
func (m *Monitor) RunInteractive(ctx context.Context) error {
	for {
		m.renderCycle()
		m.render.Prompt("Command")

		select {
		case <-ctx.Done():
			m.render.Notice("Interrupted, shutting down")
			return nil
		case line, ok := <-m.lines:
			if !ok {
				m.render.Notice("Goodbye!")
				return nil
			}
			if quit := m.apply(ctx, strings.ToLower(strings.TrimSpace(line))); quit {
				m.render.Notice("Goodbye!")
				return nil
			}
		}
	}
}

// RunLive observes with fixed default state until duration elapses or the
// context is cancelled. No command input is read.
func (m *Monitor) RunLive(ctx context.Context, duration time.Duration) error {
	start := m.clock.Now()
	state := DefaultControlState()

	for m.clock.Now().Sub(start) < duration {
		select {
		case <-ctx.Done():
			m.render.Notice("Live monitoring stopped")
			return nil
		default:
		}

		snap := m.snapshot()
		stats, _ := m.stats.Stats()
		view := m.view.Build(snap, state, m.liveLimit)
		m.render.Compact(view, stats, m.clock.Now().Sub(start))

		if !m.clock.Sleep(ctx, m.quantum) {
			m.render.Notice("Live monitoring stopped")
			return nil
		}
	}

	m.render.Notice("Live monitoring finished")
	return nil
}

// renderCycle does one query-build-draw pass for interactive mode.
func (m *Monitor) renderCycle() {
	snap := m.snapshot()
	stats, _ := m.stats.Stats()
	view := m.view.Build(snap, m.state, m.topLimit)
	m.render.Dashboard(view, stats, m.state)
}

// snapshot fetches processes, tolerating a failed enumeration by rendering
// an empty table instead of aborting the cycle.
func (m *Monitor) snapshot() []models.ProcessRecord {
	snap, err := m.snapshots.Snapshot()
	if err != nil {
		m.render.Warning(fmt.Sprintf("Process listing failed: %v", err))
		return nil
	}
	return snap
}

// apply runs one command against the control state. Returns true on quit.
func (m *Monitor) apply(ctx context.Context, cmd string) bool {
	switch cmd {
	case "q":
		return true
	case "c":
		m.state.SetSort(SortCPU)
	case "m":
		m.state.SetSort(SortMemory)
	case "n":
		m.state.SetSort(SortName)
	case "p":
		m.state.SetSort(SortPID)
	case "r":
		m.state.ToggleReverse()
	case "u":
		m.state.ToggleOwnerOnly()
		if m.state.OwnerOnly {
			m.render.Notice("User processes only: on")
		} else {
			m.render.Notice("User processes only: off")
		}
	case "f":
		return m.promptFilter(ctx)
	case "k":
		return m.promptKill(ctx)
	case "":
		// ignore empty input
	default:
		m.render.Warning("Unknown command: " + cmd)
	}
	return false
}

// promptFilter reads a filter string; empty clears it.
func (m *Monitor) promptFilter(ctx context.Context) bool {
	m.render.Prompt("Enter filter (empty to clear)")
	text, ok := m.readLine(ctx)
	if !ok {
		return true
	}
	m.state.SetFilter(strings.TrimSpace(text))
	if m.state.NameFilter != "" {
		m.render.Notice("Filtering by: " + m.state.NameFilter)
	} else {
		m.render.Notice("Filter cleared")
	}
	return false
}

// promptKill asks for a pid, confirms, and invokes the actuator. Every
// failure is a one-line notice; the loop always survives.
func (m *Monitor) promptKill(ctx context.Context) bool {
	m.render.Prompt("Enter PID to kill")
	input, ok := m.readLine(ctx)
	if !ok {
		return true
	}

	pid, err := ParsePID(input)
	if err != nil {
		m.render.Warning("Invalid PID")
		return false
	}

	name, err := m.killer.Name(pid)
	if err != nil {
		m.render.Warning(fmt.Sprintf("Process %d not found", pid))
		return false
	}

	m.render.Notice(fmt.Sprintf("Process: %s (PID: %d)", name, pid))
	m.render.Prompt("Are you sure you want to kill this process? [y/N]")
	answer, ok := m.readLine(ctx)
	if !ok {
		return true
	}
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		m.render.Notice("Operation cancelled")
		return false
	}

	switch err := m.killer.Terminate(pid); err {
	case nil:
		m.render.Notice(fmt.Sprintf("Process %d terminated", pid))
	case ErrNotFound:
		m.render.Warning(fmt.Sprintf("Process %d not found", pid))
	case ErrAccessDenied:
		m.render.Warning(fmt.Sprintf("Access denied to kill process %d", pid))
	case ErrInvalidPID:
		m.render.Warning("Invalid PID")
	default:
		m.render.Warning(fmt.Sprintf("Error killing process: %v", err))
	}
	return false
}

// readLine waits for one more input line; false means quit (EOF or cancel).
func (m *Monitor) readLine(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-m.lines:
		if !ok {
			return "", false
		}
		return line, true
	}
}
