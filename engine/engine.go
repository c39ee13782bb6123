package engine

import (
	"sync"
	"time"

	"github.com/hiromitsuiwata/ttop/collector"
	"github.com/hiromitsuiwata/ttop/model"
)

// Engine orchestrates snapshot collection.
type Engine struct {
	registry *collector.Registry
	tickMu   sync.Mutex // serializes Refresh() calls to prevent concurrent collection
}

// New creates an engine with all default collectors registered.
func New() *Engine {
	return &Engine{registry: collector.NewRegistry()}
}

// Refresh performs one collection pass and returns the snapshot.
// The platform readers keep delta state between calls, so passes
// must not interleave; tickMu enforces that.
func (e *Engine) Refresh() (*model.Snapshot, error) {
	e.tickMu.Lock()
	defer e.tickMu.Unlock()

	snap := &model.Snapshot{Timestamp: time.Now()}
	if err := e.registry.CollectAll(snap); err != nil {
		return nil, err
	}
	return snap, nil
}
