// Package report renders a snapshot as a plain-text report for
// non-interactive runs.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/hiromitsuiwata/ttop/engine"
	"github.com/hiromitsuiwata/ttop/model"
)

const bytesPerMB = 1024 * 1024

// Render formats one snapshot as an indented text report with the
// same sections the dashboard shows. Process rows are ranked the
// same way, truncated to topN.
func Render(snap *model.Snapshot, topN int) string {
	var sb strings.Builder

	cores := len(snap.CPU.Cores)
	sb.WriteString("CPU\n")
	sb.WriteString(fmt.Sprintf("  Usage:  %.1f%% / %d%% (%d cores)\n",
		snap.CPU.TotalPercent(), cores*100, cores))
	sb.WriteString(fmt.Sprintf("  Brand:  %s\n", snap.CPU.Brand))

	mem := snap.Memory
	sb.WriteString("\nMemory\n")
	sb.WriteString(fmt.Sprintf("  Memory: %s / %s\n",
		humanize.IBytes(mem.UsedMB*bytesPerMB), humanize.IBytes(mem.TotalMB*bytesPerMB)))
	sb.WriteString(fmt.Sprintf("  Swap:   %s / %s\n",
		humanize.IBytes(mem.SwapUsedMB*bytesPerMB), humanize.IBytes(mem.SwapTotalMB*bytesPerMB)))

	rows := engine.RankTop(snap.Processes, topN)
	sb.WriteString(fmt.Sprintf("\nProcesses (top %d of %s by CPU)\n",
		len(rows), humanize.Comma(int64(len(snap.Processes)))))
	sb.WriteString(fmt.Sprintf("  %-8s %-25s %-10s %-12s\n", "PID", "Name", "CPU", "Memory"))
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("  %-8s %-25s %-10s %-12s\n", row.PID, row.Name, row.CPU, row.Memory))
	}

	h := snap.Host
	sb.WriteString("\nHost\n")
	for _, f := range []struct{ label, value string }{
		{"Architecture", h.Architecture},
		{"Uptime", h.Uptime},
		{"Kernel Version", h.KernelVersion},
		{"OS Version", h.OSVersion},
		{"Hostname", h.Hostname},
		{"Open Files Limit", h.OpenFileLimit},
		{"Product Name", h.ProductName},
		{"Vendor Name", h.VendorName},
	} {
		val := f.value
		if val == "" {
			val = "Unknown"
		}
		sb.WriteString(fmt.Sprintf("  %-18s %s\n", f.label+":", val))
	}

	return strings.TrimRight(sb.String(), "\n")
}
