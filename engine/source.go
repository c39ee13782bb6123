package engine

import "github.com/hiromitsuiwata/ttop/model"

// Source abstracts a producer of snapshots for the UI and the
// one-shot output modes.
type Source interface {
	Refresh() (*model.Snapshot, error)
}
