package collector

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/hiromitsuiwata/ttop/model"
)

const bytesPerMB = 1024 * 1024

// MemoryCollector samples memory and swap occupancy in megabytes.
type MemoryCollector struct{}

func (m *MemoryCollector) Name() string { return "memory" }

func (m *MemoryCollector) Collect(snap *model.Snapshot) error {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("read memory info: %w", err)
	}

	swap, err := mem.SwapMemory()
	if err != nil {
		// hosts without swap configured report an error, not zeros
		swap = &mem.SwapMemoryStat{}
	}

	snap.Memory = model.MemoryMetrics{
		TotalMB:     vm.Total / bytesPerMB,
		UsedMB:      clampUsed(vm.Used/bytesPerMB, vm.Total/bytesPerMB),
		SwapTotalMB: swap.Total / bytesPerMB,
		SwapUsedMB:  clampUsed(swap.Used/bytesPerMB, swap.Total/bytesPerMB),
	}
	return nil
}

// clampUsed caps used at total; the underlying counters are sampled
// independently and can briefly disagree.
func clampUsed(used, total uint64) uint64 {
	if used > total {
		return total
	}
	return used
}
