package monitor

import (
	"os/user"
	"sort"
	"strings"

	"termtools/models"
)

// View turns raw snapshots into the filtered, sorted, capped slice that gets
// rendered. It carries only the invoking user's name, resolved once at
// startup, for the owner-only filter.
type View struct {
	currentUser string
}

// NewView resolves the invoking user. Resolution failure leaves the name
// empty, which makes the owner-only filter a no-op.
func NewView() *View {
	name := ""
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	return &View{currentUser: name}
}

// NewViewForUser is the injectable constructor used by tests.
func NewViewForUser(username string) *View {
	return &View{currentUser: username}
}

// Build applies the state's filters, stable-sorts by the selected key, and
// truncates to limit. Pure: identical inputs give identical output. Ties
// keep snapshot order; the snapshot enumeration order itself is whatever
// the OS returned and is not stable across runs.
func (v *View) Build(snapshot []models.ProcessRecord, state ControlState, limit int) []models.ProcessRecord {
	filtered := make([]models.ProcessRecord, 0, len(snapshot))
	needle := strings.ToLower(state.NameFilter)

	for _, rec := range snapshot {
		if needle != "" && !strings.Contains(strings.ToLower(rec.Name), needle) {
			continue
		}
		// Substring match on owner, same as matching "user" inside
		// "DOMAIN\user" style names.
		if state.OwnerOnly && !strings.Contains(rec.Owner, v.currentUser) {
			continue
		}
		filtered = append(filtered, rec)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return less(filtered[i], filtered[j], state)
	})

	if limit >= 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

func less(a, b models.ProcessRecord, state ControlState) bool {
	var ahead bool
	switch state.SortKey {
	case SortCPU:
		if a.CPUPercent == b.CPUPercent {
			return false
		}
		ahead = a.CPUPercent < b.CPUPercent
	case SortMemory:
		if a.ResidentBytes == b.ResidentBytes {
			return false
		}
		ahead = a.ResidentBytes < b.ResidentBytes
	case SortName:
		if a.Name == b.Name {
			return false
		}
		ahead = a.Name < b.Name
	case SortPID:
		if a.PID == b.PID {
			return false
		}
		ahead = a.PID < b.PID
	default:
		return false
	}
	if state.SortDescending {
		return !ahead
	}
	return ahead
}
