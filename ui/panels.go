package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hiromitsuiwata/ttop/engine"
	"github.com/hiromitsuiwata/ttop/model"
)

// Process table column widths.
const (
	colPID  = 8
	colName = 25
	colCPU  = 10
	colMem  = 12
)

// renderCPU renders the CPU band: aggregate usage over capacity,
// core count, and brand string.
func renderCPU(snap *model.Snapshot, r Rect) string {
	cores := len(snap.CPU.Cores)
	line := fmt.Sprintf("CPU Usage: %.1f%% / %.0f%%, Number of cores: %d, Brand: %s",
		snap.CPU.TotalPercent(), float64(cores*100), cores, snap.CPU.Brand)
	return boxTitled("CPU", []string{" " + cpuStyle.Render(line)}, r.W, r.H)
}

// renderMemory renders the memory band: used over total for memory
// and swap, in megabytes.
func renderMemory(snap *model.Snapshot, r Rect) string {
	mem := snap.Memory
	line := fmt.Sprintf("Memory: %d MB / %d MB, Swap: %d MB / %d MB",
		mem.UsedMB, mem.TotalMB, mem.SwapUsedMB, mem.SwapTotalMB)
	return boxTitled("Memory", []string{" " + memStyle.Render(line)}, r.W, r.H)
}

// renderProcesses renders the ranked process table. Rows beyond the
// band height are dropped by the box.
func renderProcesses(rows []engine.ProcessRow, r Rect) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, procHeaderStyle.Render(procLine("PID", "Name", "CPU", "Memory")))
	for _, row := range rows {
		lines = append(lines, procLine(row.PID, row.Name, row.CPU, row.Memory))
	}
	return boxTitled("Processes", lines, r.W, r.H)
}

func procLine(pid, name, cpu, mem string) string {
	return fmt.Sprintf(" %-*s %-*s %-*s %-*s",
		colPID, pid, colName, truncate(name, colName), colCPU, cpu, colMem, mem)
}

// renderHostInfo renders the static host facts band. Facts that
// could not be determined show as "Unknown".
func renderHostInfo(h model.HostInfo, r Rect) string {
	facts := []struct{ label, value string }{
		{"Architecture", h.Architecture},
		{"Uptime", h.Uptime},
		{"Kernel Version", h.KernelVersion},
		{"OS Version", h.OSVersion},
		{"Hostname", h.Hostname},
		{"Open Files Limit", h.OpenFileLimit},
		{"Product Name", h.ProductName},
		{"Vendor Name", h.VendorName},
	}

	lines := make([]string, len(facts))
	for i, f := range facts {
		val := f.value
		if val == "" {
			val = "Unknown"
		}
		lines[i] = " " + styledPad(labelStyle.Render(f.label+":"), 18) + valueStyle.Render(val)
	}
	return boxTitled("System", lines, r.W, r.H)
}

// ─── BOX DRAWING HELPERS ─────────────────────────────────────────────────────

// boxTitled renders content inside a rounded box of exactly w by h
// cells with the title embedded in the top border. Content lines
// beyond the interior are dropped, short lines padded.
func boxTitled(title string, lines []string, w, h int) string {
	if w < 2 || h < 1 {
		return ""
	}
	innerW := w - 2

	var sb strings.Builder
	sb.WriteString(boxTop(title, innerW))
	if h == 1 {
		return sb.String()
	}

	for i := 0; i < h-2; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		sb.WriteString("\n")
		sb.WriteString(borderStyle.Render("│"))
		sb.WriteString(padClip(line, innerW))
		sb.WriteString(borderStyle.Render("│"))
	}

	sb.WriteString("\n")
	sb.WriteString(borderStyle.Render("╰" + strings.Repeat("─", innerW) + "╯"))
	return sb.String()
}

// boxTop renders the top border with an optional embedded title:
// ╭─ Title ────╮. Falls back to a plain rule when the title does not
// fit.
func boxTop(title string, innerW int) string {
	if title == "" || innerW < len(title)+4 {
		return borderStyle.Render("╭" + strings.Repeat("─", innerW) + "╮")
	}
	fill := innerW - len(title) - 3
	return borderStyle.Render("╭─ ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat("─", fill)+"╮")
}

// padClip pads s with spaces to exactly w visual cells, truncating
// styled text when it is too wide. Accounts for ANSI escape codes,
// unlike fmt padding.
func padClip(s string, w int) string {
	visW := lipgloss.Width(s)
	if visW > w {
		s = lipgloss.NewStyle().MaxWidth(w).Render(s)
		visW = lipgloss.Width(s)
	}
	if visW < w {
		return s + strings.Repeat(" ", w-visW)
	}
	return s
}

// styledPad pads a styled string to the given visual width.
func styledPad(styled string, width int) string {
	visW := lipgloss.Width(styled)
	if visW >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-visW)
}

// truncate shortens s to maxLen characters with ellipsis if needed.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
