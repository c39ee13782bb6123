package model

import "time"

// Snapshot holds a point-in-time sample of host state.
// A snapshot is never mutated after the collectors return it; every
// refresh allocates a fresh one.
type Snapshot struct {
	Timestamp time.Time
	CPU       CPUMetrics
	Memory    MemoryMetrics
	Processes []Process
	Host      HostInfo
}

// CPUMetrics holds per-core usage plus static CPU identity.
type CPUMetrics struct {
	Cores []float64 // busy percent per core, 0-100 each
	Brand string    // model name, "Unknown" when the platform hides it
}

// TotalPercent returns usage summed across all cores, so a fully
// loaded 4-core machine reports 400.
func (c CPUMetrics) TotalPercent() float64 {
	var total float64
	for _, pct := range c.Cores {
		total += pct
	}
	return total
}

// MemoryMetrics holds memory and swap occupancy in whole megabytes.
// Used never exceeds Total.
type MemoryMetrics struct {
	TotalMB     uint64
	UsedMB      uint64
	SwapTotalMB uint64
	SwapUsedMB  uint64
}

// Process is one process table entry. PIDs are unique within a
// snapshot, and the slice keeps the order the platform enumerated
// them in.
type Process struct {
	PID        int32
	Name       string
	CPUPercent float64 // share of one core, 100 = one core fully busy
	MemoryKB   uint64  // resident set size
}

// HostInfo holds static host facts. Every field is independently
// optional; empty string means the fact could not be determined on
// this platform and is rendered as "Unknown".
type HostInfo struct {
	Architecture  string
	Uptime        string
	KernelVersion string
	OSVersion     string
	Hostname      string
	OpenFileLimit string
	ProductName   string
	VendorName    string
}
