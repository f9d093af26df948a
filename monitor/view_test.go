package monitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termtools/models"
	"termtools/monitor"
)

func sampleSnapshot() []models.ProcessRecord {
	return []models.ProcessRecord{
		{PID: 1, Name: "a", Owner: "alice", CPUPercent: 5, MemoryPercent: 1, ResidentBytes: 100},
		{PID: 2, Name: "b", Owner: "bob", CPUPercent: 90, MemoryPercent: 3, ResidentBytes: 300},
		{PID: 3, Name: "c", Owner: "alice", CPUPercent: 50, MemoryPercent: 2, ResidentBytes: 200},
	}
}

func pids(records []models.ProcessRecord) []int32 {
	out := make([]int32, 0, len(records))
	for _, r := range records {
		out = append(out, r.PID)
	}
	return out
}

func TestBuildSortsByCPUDescendingAndCaps(t *testing.T) {
	v := monitor.NewViewForUser("alice")
	state := monitor.ControlState{SortKey: monitor.SortCPU, SortDescending: true}

	view := v.Build(sampleSnapshot(), state, 2)

	require.Len(t, view, 2)
	assert.Equal(t, []int32{2, 3}, pids(view))
}

func TestBuildSortsByNameAscending(t *testing.T) {
	v := monitor.NewViewForUser("alice")
	state := monitor.ControlState{SortKey: monitor.SortName, SortDescending: false}

	view := v.Build(sampleSnapshot(), state, 10)

	require.Len(t, view, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{view[0].Name, view[1].Name, view[2].Name})
}

func TestBuildNameFilterOverridesSort(t *testing.T) {
	v := monitor.NewViewForUser("alice")

	for _, key := range []monitor.SortKey{monitor.SortCPU, monitor.SortMemory, monitor.SortName, monitor.SortPID} {
		state := monitor.ControlState{SortKey: key, NameFilter: "b"}
		view := v.Build(sampleSnapshot(), state, 10)
		require.Len(t, view, 1, "sort key %v", key)
		assert.Equal(t, int32(2), view[0].PID)
	}
}

func TestBuildFilterIsCaseInsensitive(t *testing.T) {
	v := monitor.NewViewForUser("alice")
	snap := []models.ProcessRecord{
		{PID: 10, Name: "Firefox"},
		{PID: 11, Name: "bash"},
	}
	state := monitor.ControlState{NameFilter: "FIRE"}

	view := v.Build(snap, state, 10)

	require.Len(t, view, 1)
	assert.Equal(t, "Firefox", view[0].Name)
}

func TestBuildEmptyFilterEqualsNoFilter(t *testing.T) {
	v := monitor.NewViewForUser("alice")

	withFilter := monitor.ControlState{SortKey: monitor.SortPID, NameFilter: "a"}
	withFilter.SetFilter("")
	noFilter := monitor.ControlState{SortKey: monitor.SortPID}

	assert.Equal(t,
		v.Build(sampleSnapshot(), noFilter, 10),
		v.Build(sampleSnapshot(), withFilter, 10))
}

func TestBuildOwnerOnly(t *testing.T) {
	v := monitor.NewViewForUser("alice")
	state := monitor.ControlState{SortKey: monitor.SortPID, OwnerOnly: true}

	view := v.Build(sampleSnapshot(), state, 10)

	assert.Equal(t, []int32{1, 3}, pids(view))
}

func TestBuildOwnerOnlyMatchesSubstring(t *testing.T) {
	// DOMAIN\user style owners still match the bare username.
	v := monitor.NewViewForUser("alice")
	snap := []models.ProcessRecord{
		{PID: 1, Name: "x", Owner: `CORP\alice`},
		{PID: 2, Name: "y", Owner: "root"},
	}
	state := monitor.ControlState{SortKey: monitor.SortPID, OwnerOnly: true}

	view := v.Build(snap, state, 10)

	assert.Equal(t, []int32{1}, pids(view))
}

func TestBuildIsPure(t *testing.T) {
	v := monitor.NewViewForUser("alice")
	state := monitor.ControlState{SortKey: monitor.SortMemory, SortDescending: true, NameFilter: "a"}
	snap := sampleSnapshot()

	first := v.Build(snap, state, 10)
	second := v.Build(snap, state, 10)

	assert.Equal(t, first, second)
	// input snapshot order untouched
	assert.Equal(t, []int32{1, 2, 3}, pids(snap))
}

func TestBuildPIDDescendingIsExactReverse(t *testing.T) {
	v := monitor.NewViewForUser("alice")

	asc := v.Build(sampleSnapshot(), monitor.ControlState{SortKey: monitor.SortPID}, 10)
	desc := v.Build(sampleSnapshot(), monitor.ControlState{SortKey: monitor.SortPID, SortDescending: true}, 10)

	require.Equal(t, len(asc), len(desc))
	for i := range asc {
		assert.Equal(t, asc[i].PID, desc[len(desc)-1-i].PID)
	}
}

func TestBuildStableOnTies(t *testing.T) {
	v := monitor.NewViewForUser("alice")
	snap := []models.ProcessRecord{
		{PID: 7, Name: "x", CPUPercent: 10},
		{PID: 8, Name: "y", CPUPercent: 10},
		{PID: 9, Name: "z", CPUPercent: 10},
	}

	// Equal keys keep snapshot order in both directions.
	for _, desc := range []bool{false, true} {
		state := monitor.ControlState{SortKey: monitor.SortCPU, SortDescending: desc}
		view := v.Build(snap, state, 10)
		assert.Equal(t, []int32{7, 8, 9}, pids(view), "descending=%v", desc)
	}
}

func TestBuildMemorySortsByResidentBytes(t *testing.T) {
	v := monitor.NewViewForUser("alice")
	// MemoryPercent deliberately disagrees with ResidentBytes
	snap := []models.ProcessRecord{
		{PID: 1, Name: "small", MemoryPercent: 90, ResidentBytes: 10},
		{PID: 2, Name: "big", MemoryPercent: 1, ResidentBytes: 1 << 30},
	}
	state := monitor.ControlState{SortKey: monitor.SortMemory, SortDescending: true}

	view := v.Build(snap, state, 10)

	assert.Equal(t, []int32{2, 1}, pids(view))
}

func TestBuildLimitLargerThanSnapshot(t *testing.T) {
	v := monitor.NewViewForUser("alice")
	view := v.Build(sampleSnapshot(), monitor.DefaultControlState(), 100)
	assert.Len(t, view, 3)
}
