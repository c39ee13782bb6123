package collector

import (
	"fmt"

	"github.com/hiromitsuiwata/ttop/model"
)

// Collector is the interface for all metric collectors.
type Collector interface {
	Name() string
	Collect(snap *model.Snapshot) error
}

// Registry holds all registered collectors.
type Registry struct {
	collectors []Collector
}

// NewRegistry creates a registry with all default collectors.
func NewRegistry() *Registry {
	return &Registry{
		collectors: []Collector{
			&CPUCollector{},
			&MemoryCollector{},
			NewProcessCollector(),
			&HostCollector{},
		},
	}
}

// Add registers an additional collector.
func (r *Registry) Add(c Collector) {
	r.collectors = append(r.collectors, c)
}

// CollectAll runs every collector in order, populating the snapshot.
// The first failure aborts the pass: a snapshot is either complete or
// not produced at all.
func (r *Registry) CollectAll(snap *model.Snapshot) error {
	for _, c := range r.collectors {
		if err := c.Collect(snap); err != nil {
			return fmt.Errorf("%s: %w", c.Name(), err)
		}
	}
	return nil
}
