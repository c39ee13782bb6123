package collector

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/hiromitsuiwata/ttop/model"
)

// CPUCollector samples per-core usage percentages and the CPU model
// name. Usage deltas are computed by the platform layer against its
// previous reading, so the first sample after startup covers the time
// since process start.
type CPUCollector struct {
	once  sync.Once
	brand string
}

func (c *CPUCollector) Name() string { return "cpu" }

func (c *CPUCollector) Collect(snap *model.Snapshot) error {
	percents, err := cpu.Percent(0, true)
	if err != nil {
		return fmt.Errorf("read cpu usage: %w", err)
	}

	snap.CPU.Cores = percents
	snap.CPU.Brand = c.modelName()
	return nil
}

// modelName resolves the CPU brand string once and caches it.
func (c *CPUCollector) modelName() string {
	c.once.Do(func() {
		c.brand = "Unknown"
		info, err := cpu.Info()
		if err != nil || len(info) == 0 {
			return
		}
		if name := strings.TrimSpace(info[0].ModelName); name != "" {
			c.brand = name
		}
	})
	return c.brand
}
