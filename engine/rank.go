package engine

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/hiromitsuiwata/ttop/model"
)

// ProcessRow is one pre-formatted row of the process table.
type ProcessRow struct {
	PID    string
	Name   string
	CPU    string
	Memory string
}

// RankTop returns the n busiest processes as formatted table rows,
// ordered by descending CPU usage. The sort is stable and compares
// full-precision percentages, so equal readings keep the order the
// platform enumerated them in.
func RankTop(procs []model.Process, n int) []ProcessRow {
	if n <= 0 {
		return nil
	}

	ranked := make([]model.Process, len(procs))
	copy(ranked, procs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CPUPercent > ranked[j].CPUPercent
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	rows := make([]ProcessRow, len(ranked))
	for i, p := range ranked {
		rows[i] = ProcessRow{
			PID:    strconv.Itoa(int(p.PID)),
			Name:   p.Name,
			CPU:    fmt.Sprintf("%.1f%%", p.CPUPercent),
			Memory: fmt.Sprintf("%.1f MB", float64(p.MemoryKB)/1024),
		}
	}
	return rows
}
