package collector

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/hiromitsuiwata/ttop/model"
)

// ProcessCollector samples the process table. Handles are kept per
// PID across calls so CPU percentages cover the window since the
// previous sample instead of the whole process lifetime; a PID seen
// for the first time reports 0 until the next pass.
type ProcessCollector struct {
	handles map[int32]*process.Process
}

// NewProcessCollector creates a process collector with an empty
// handle cache.
func NewProcessCollector() *ProcessCollector {
	return &ProcessCollector{handles: make(map[int32]*process.Process)}
}

func (p *ProcessCollector) Name() string { return "process" }

func (p *ProcessCollector) Collect(snap *model.Snapshot) error {
	pids, err := process.Pids()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	seen := make(map[int32]bool, len(pids))
	procs := make([]model.Process, 0, len(pids))
	for _, pid := range pids {
		handle, ok := p.handles[pid]
		if !ok {
			handle, err = process.NewProcess(pid)
			if err != nil {
				continue // exited between listing and opening
			}
			p.handles[pid] = handle
		}
		seen[pid] = true

		name, err := handle.Name()
		if err != nil || name == "" {
			continue
		}
		cpuPct, err := handle.Percent(0)
		if err != nil {
			continue
		}
		var memKB uint64
		if mi, err := handle.MemoryInfo(); err == nil && mi != nil {
			memKB = mi.RSS / 1024
		}

		procs = append(procs, model.Process{
			PID:        pid,
			Name:       name,
			CPUPercent: cpuPct,
			MemoryKB:   memKB,
		})
	}

	// Drop handles for PIDs that disappeared.
	for pid := range p.handles {
		if !seen[pid] {
			delete(p.handles, pid)
		}
	}

	snap.Processes = procs
	return nil
}
