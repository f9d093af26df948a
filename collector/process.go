package collector

import (
	"termtools/models"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessCollector enumerates running processes. Each call builds a fresh
// snapshot; nothing is cached between calls.
type ProcessCollector struct{}

func NewProcessCollector() *ProcessCollector {
	return &ProcessCollector{}
}

// Snapshot returns every process the caller is allowed to see. Processes
// that exit or deny access mid-enumeration are dropped, not surfaced as
// errors: a partial table beats a crashed cycle.
func (c *ProcessCollector) Snapshot() ([]models.ProcessRecord, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	records := make([]models.ProcessRecord, 0, len(procs))

	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}

		owner, err := p.Username()
		if err != nil || owner == "" {
			owner = "unknown"
		}

		cpu, err := p.CPUPercent()
		if err != nil {
			cpu = 0
		}

		memPct, err := p.MemoryPercent()
		if err != nil {
			memPct = 0
		}

		var rss uint64
		if memInfo, err := p.MemoryInfo(); err == nil && memInfo != nil {
			rss = memInfo.RSS
		}

		status := models.StatusUnknown
		if st, err := p.Status(); err == nil && len(st) > 0 {
			status = models.ParseStatus(st[0])
		}

		records = append(records, models.ProcessRecord{
			PID:           p.Pid,
			Name:          name,
			Owner:         owner,
			CPUPercent:    cpu,
			MemoryPercent: float64(memPct),
			ResidentBytes: rss,
			Status:        status,
		})
	}

	return records, nil
}
