package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"termtools/models"
	"termtools/monitor"
)

func testStats() models.SystemStats {
	return models.SystemStats{
		CPUPercent:    12.5,
		MemoryPercent: 40,
		MemoryUsed:    4 << 30,
		MemoryTotal:   16 << 30,
		ProcessCount:  123,
		BootTime:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestDashboardContainsProcessRows(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	view := []models.ProcessRecord{
		{PID: 42, Name: "bash", Owner: "alice", CPUPercent: 1.5, Status: models.StatusRunning},
	}
	r.Dashboard(view, testStats(), monitor.DefaultControlState())

	out := buf.String()
	assert.Contains(t, out, "bash")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "Sort: cpu")
	assert.Contains(t, out, "Running Processes")
}

func TestCompactShowsElapsed(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Compact(nil, testStats(), 3*time.Second)

	assert.Contains(t, buf.String(), "TIME: 3s")
	assert.Contains(t, buf.String(), "PROC: 123")
}

func TestNoticeAndWarning(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Notice("all good")
	r.Warning("something broke")

	assert.Contains(t, buf.String(), "all good")
	assert.Contains(t, buf.String(), "something broke")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "longnam...", truncate("longname-overflowing", 10))
	assert.Equal(t, "ab", truncate("abc", 2))
}

func TestStatusBarReflectsState(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	state := monitor.ControlState{
		SortKey:        monitor.SortName,
		SortDescending: false,
		NameFilter:     "fox",
		OwnerOnly:      true,
	}
	r.Dashboard(nil, testStats(), state)

	out := buf.String()
	assert.Contains(t, out, "Sort: name")
	assert.Contains(t, out, "Filter: fox")
	assert.Contains(t, out, "User only: Yes")
}
