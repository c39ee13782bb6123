package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/hiromitsuiwata/ttop/engine"
	"github.com/hiromitsuiwata/ttop/model"
)

func TestRenderCPU(t *testing.T) {
	snap := &model.Snapshot{
		CPU: model.CPUMetrics{
			Cores: []float64{10, 20, 30, 40},
			Brand: "TestBrand 3000",
		},
	}

	out := renderCPU(snap, Rect{W: 80, H: 3})

	if !strings.Contains(out, "CPU Usage: 100.0% / 400%, Number of cores: 4, Brand: TestBrand 3000") {
		t.Errorf("cpu line not rendered as expected:\n%s", out)
	}
	if !strings.Contains(out, "╭─ CPU") {
		t.Errorf("missing titled top border:\n%s", out)
	}
}

func TestRenderMemory(t *testing.T) {
	snap := &model.Snapshot{
		Memory: model.MemoryMetrics{
			TotalMB:     16384,
			UsedMB:      7820,
			SwapTotalMB: 2048,
			SwapUsedMB:  0,
		},
	}

	out := renderMemory(snap, Rect{W: 80, H: 3})

	if !strings.Contains(out, "Memory: 7820 MB / 16384 MB, Swap: 0 MB / 2048 MB") {
		t.Errorf("memory line not rendered as expected:\n%s", out)
	}
}

func TestRenderProcesses(t *testing.T) {
	rows := []engine.ProcessRow{
		{PID: "42", Name: "worker", CPU: "8.0%", Memory: "4.0 MB"},
		{PID: "1", Name: "init", CPU: "1.5%", Memory: "2.0 MB"},
	}

	out := renderProcesses(rows, Rect{W: 80, H: 6})

	for _, want := range []string{"PID", "Name", "CPU", "Memory", "worker", "init", "8.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("process table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderProcesses_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("a", 40)
	rows := []engine.ProcessRow{{PID: "7", Name: long, CPU: "0.0%", Memory: "0.0 MB"}}

	out := renderProcesses(rows, Rect{W: 80, H: 4})

	if strings.Contains(out, long) {
		t.Error("long name rendered without truncation")
	}
	if !strings.Contains(out, strings.Repeat("a", colName-3)+"...") {
		t.Errorf("name not truncated with ellipsis:\n%s", out)
	}
}

func TestRenderHostInfo_UnknownFacts(t *testing.T) {
	out := renderHostInfo(model.HostInfo{}, Rect{W: 60, H: 10})

	if got := strings.Count(out, "Unknown"); got != 8 {
		t.Errorf("got %d Unknown facts, want 8:\n%s", got, out)
	}
	for _, label := range []string{"Architecture:", "Uptime:", "Open Files Limit:", "Vendor Name:"} {
		if !strings.Contains(out, label) {
			t.Errorf("missing label %q", label)
		}
	}
}

func TestRenderHostInfo_KnownFact(t *testing.T) {
	out := renderHostInfo(model.HostInfo{Hostname: "web-1"}, Rect{W: 60, H: 10})

	if !strings.Contains(out, "web-1") {
		t.Errorf("hostname not rendered:\n%s", out)
	}
	if got := strings.Count(out, "Unknown"); got != 7 {
		t.Errorf("got %d Unknown facts, want 7", got)
	}
}

func TestBoxTitled_Dimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"regular box", 40, 5},
		{"border only", 10, 2},
		{"top border only", 40, 1},
		{"too narrow for title", 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := boxTitled("T", []string{"hello"}, tt.w, tt.h)
			lines := strings.Split(out, "\n")
			if len(lines) != tt.h {
				t.Fatalf("got %d lines, want %d", len(lines), tt.h)
			}
			for i, line := range lines {
				if got := lipgloss.Width(line); got != tt.w {
					t.Errorf("line %d width = %d, want %d", i, got, tt.w)
				}
			}
		})
	}
}

func TestBoxTitled_DegenerateSizes(t *testing.T) {
	if out := boxTitled("T", nil, 1, 3); out != "" {
		t.Errorf("width 1 box = %q, want empty", out)
	}
	if out := boxTitled("T", nil, 40, 0); out != "" {
		t.Errorf("height 0 box = %q, want empty", out)
	}
}

func TestBoxTitled_ClipsExtraLines(t *testing.T) {
	lines := []string{"one", "two", "three", "four"}

	out := boxTitled("T", lines, 20, 4) // room for two content lines

	if !strings.Contains(out, "one") || !strings.Contains(out, "two") {
		t.Errorf("kept lines missing:\n%s", out)
	}
	if strings.Contains(out, "three") {
		t.Errorf("clipped line still rendered:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"short unchanged", "init", 25, "init"},
		{"exact unchanged", "abcde", 5, "abcde"},
		{"long gets ellipsis", "abcdefghij", 8, "abcde..."},
		{"tiny max cuts raw", "abcdef", 3, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadClip(t *testing.T) {
	if got := padClip("ab", 5); got != "ab   " {
		t.Errorf("padClip short = %q", got)
	}
	if got := lipgloss.Width(padClip("abcdefgh", 4)); got != 4 {
		t.Errorf("padClip wide width = %d, want 4", got)
	}
}
