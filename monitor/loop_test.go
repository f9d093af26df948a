package monitor_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termtools/models"
	"termtools/monitor"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}
	c.now = c.now.Add(d)
	return true
}

type stubSnapshots struct {
	records []models.ProcessRecord
	err     error
}

func (s stubSnapshots) Snapshot() ([]models.ProcessRecord, error) { return s.records, s.err }

type stubStats struct{}

func (stubStats) Stats() (models.SystemStats, error) {
	return models.SystemStats{ProcessCount: 3}, nil
}

// recordingRenderer captures every draw call for assertions. All calls
// arrive on the loop goroutine, so no locking.
type recordingRenderer struct {
	dashboards []monitor.ControlState
	views      [][]models.ProcessRecord
	compacts   int
	notices    []string
	warnings   []string
}

func (r *recordingRenderer) Dashboard(view []models.ProcessRecord, stats models.SystemStats, state monitor.ControlState) {
	r.dashboards = append(r.dashboards, state)
	r.views = append(r.views, view)
}

func (r *recordingRenderer) Compact(view []models.ProcessRecord, stats models.SystemStats, elapsed time.Duration) {
	r.compacts++
}

func (r *recordingRenderer) Notice(msg string)  { r.notices = append(r.notices, msg) }
func (r *recordingRenderer) Warning(msg string) { r.warnings = append(r.warnings, msg) }
func (r *recordingRenderer) Prompt(string)      {}

type fakeKiller struct {
	nameErr error
	termErr error
	killed  []int32
}

func (k *fakeKiller) Name(pid int32) (string, error) {
	if k.nameErr != nil {
		return "", k.nameErr
	}
	return "someproc", nil
}

func (k *fakeKiller) Terminate(pid int32) error {
	if k.termErr != nil {
		return k.termErr
	}
	k.killed = append(k.killed, pid)
	return nil
}

func newTestMonitor(input string, killer monitor.Killer) (*monitor.Monitor, *recordingRenderer) {
	render := &recordingRenderer{}
	if killer == nil {
		killer = &fakeKiller{}
	}
	m := monitor.New(monitor.Options{
		Snapshots:   stubSnapshots{records: sampleSnapshot()},
		Stats:       stubStats{},
		Renderer:    render,
		Actuator:    killer,
		View:        monitor.NewViewForUser("alice"),
		Input:       strings.NewReader(input),
		TopLimit:    20,
		LiveLimit:   10,
		LiveQuantum: 500 * time.Millisecond,
		Clock:       &fakeClock{},
	})
	return m, render
}

func TestLiveModeCycleCount(t *testing.T) {
	// duration 2s, quantum 0.5s: cycles at 0.0, 0.5, 1.0, 1.5 and no fifth.
	m, render := newTestMonitor("", nil)

	err := m.RunLive(context.Background(), 2*time.Second)

	require.NoError(t, err)
	assert.Equal(t, 4, render.compacts)
}

func TestLiveModeCancellation(t *testing.T) {
	m, render := newTestMonitor("", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.RunLive(ctx, time.Minute)

	require.NoError(t, err)
	assert.Zero(t, render.compacts)
	assert.Contains(t, render.notices, "Live monitoring stopped")
}

func TestInteractiveQuit(t *testing.T) {
	m, render := newTestMonitor("q\n", nil)

	err := m.RunInteractive(context.Background())

	require.NoError(t, err)
	assert.Len(t, render.dashboards, 1)
	assert.Contains(t, render.notices, "Goodbye!")
}

func TestInteractiveEOFIsImplicitQuit(t *testing.T) {
	m, render := newTestMonitor("", nil)

	err := m.RunInteractive(context.Background())

	require.NoError(t, err)
	assert.Len(t, render.dashboards, 1)
	assert.Contains(t, render.notices, "Goodbye!")
}

func TestInteractiveSortCommands(t *testing.T) {
	m, render := newTestMonitor("n\nr\nq\n", nil)

	err := m.RunInteractive(context.Background())

	require.NoError(t, err)
	require.Len(t, render.dashboards, 3)

	// first cycle renders the defaults
	assert.Equal(t, monitor.SortCPU, render.dashboards[0].SortKey)
	assert.True(t, render.dashboards[0].SortDescending)

	// after 'n': name ascending
	assert.Equal(t, monitor.SortName, render.dashboards[1].SortKey)
	assert.False(t, render.dashboards[1].SortDescending)

	// after 'r': reversed
	assert.True(t, render.dashboards[2].SortDescending)
}

func TestInteractiveUnknownCommandWarnsWithoutMutation(t *testing.T) {
	m, render := newTestMonitor("z\nq\n", nil)

	err := m.RunInteractive(context.Background())

	require.NoError(t, err)
	require.Len(t, render.dashboards, 2)
	assert.Equal(t, render.dashboards[0], render.dashboards[1])
	assert.Contains(t, render.warnings, "Unknown command: z")
}

func TestInteractiveFilterPrompt(t *testing.T) {
	m, render := newTestMonitor("f\nbash\nq\n", nil)

	err := m.RunInteractive(context.Background())

	require.NoError(t, err)
	require.Len(t, render.dashboards, 2)
	assert.Equal(t, "bash", render.dashboards[1].NameFilter)
	assert.Contains(t, render.notices, "Filtering by: bash")
}

func TestInteractiveKillNotFoundKeepsLoopAlive(t *testing.T) {
	killer := &fakeKiller{nameErr: monitor.ErrNotFound}
	m, render := newTestMonitor("k\n9999\nq\n", killer)

	err := m.RunInteractive(context.Background())

	require.NoError(t, err)
	assert.Contains(t, render.warnings, "Process 9999 not found")
	assert.Empty(t, killer.killed)
	// loop continued to the next cycle after the failure
	assert.Len(t, render.dashboards, 2)
}

func TestInteractiveKillConfirmedTerminates(t *testing.T) {
	killer := &fakeKiller{}
	m, render := newTestMonitor("k\n42\ny\nq\n", killer)

	err := m.RunInteractive(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int32{42}, killer.killed)
	assert.Contains(t, render.notices, "Process 42 terminated")
}

func TestInteractiveKillDeclinedDoesNothing(t *testing.T) {
	killer := &fakeKiller{}
	m, render := newTestMonitor("k\n42\nn\nq\n", killer)

	err := m.RunInteractive(context.Background())

	require.NoError(t, err)
	assert.Empty(t, killer.killed)
	assert.Contains(t, render.notices, "Operation cancelled")
}

func TestInteractiveKillInvalidPID(t *testing.T) {
	killer := &fakeKiller{}
	m, render := newTestMonitor("k\nabc\nq\n", killer)

	err := m.RunInteractive(context.Background())

	require.NoError(t, err)
	assert.Empty(t, killer.killed)
	assert.Contains(t, render.warnings, "Invalid PID")
}

func TestInteractiveKillAccessDenied(t *testing.T) {
	killer := &fakeKiller{termErr: monitor.ErrAccessDenied}
	m, render := newTestMonitor("k\n1\ny\nq\n", killer)

	err := m.RunInteractive(context.Background())

	require.NoError(t, err)
	assert.Contains(t, render.warnings, "Access denied to kill process 1")
}

func TestInteractiveSurvivesSnapshotFailure(t *testing.T) {
	render := &recordingRenderer{}
	m := monitor.New(monitor.Options{
		Snapshots: stubSnapshots{err: errors.New("proc unavailable")},
		Stats:     stubStats{},
		Renderer:  render,
		Actuator:  &fakeKiller{},
		View:      monitor.NewViewForUser("alice"),
		Input:     strings.NewReader("q\n"),
		TopLimit:  20,
		LiveLimit: 10,
		Clock:     &fakeClock{},
	})

	err := m.RunInteractive(context.Background())

	require.NoError(t, err)
	require.Len(t, render.views, 1)
	assert.Empty(t, render.views[0])
	require.NotEmpty(t, render.warnings)
	assert.Contains(t, render.warnings[0], "Process listing failed")
}
