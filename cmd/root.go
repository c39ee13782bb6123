package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/hiromitsuiwata/ttop/config"
	"github.com/hiromitsuiwata/ttop/engine"
	"github.com/hiromitsuiwata/ttop/model"
	"github.com/hiromitsuiwata/ttop/report"
	"github.com/hiromitsuiwata/ttop/ui"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

// tickInterval is the fixed refresh cadence of the dashboard.
const tickInterval = time.Second

func printUsage() {
	fmt.Fprintf(os.Stderr, `ttop v%s — live terminal system dashboard

Usage:
  ttop [OPTIONS]

Modes:
  (default)         Interactive TUI (bubbletea, fullscreen), 1s refresh
  -once             Print one plain-text report to stdout, then exit
  -json             Print one JSON snapshot to stdout, then exit
  -version          Print version and exit

Options:
  -profile NAME     Deployment profile: full, compact (default: full)

Profiles:
  full              CPU + memory strips, process table fills the rest (top 20)
  compact           Five-row process table plus a host facts band (top 5)

Keys:
  q / Ctrl+C        Quit

Examples:
  ttop                        Interactive dashboard
  ttop -profile compact       Shorter table, host facts band
  ttop -json | jq .Memory     Snapshot for scripts
  ttop -once                  Plain report (cron, CI logs)
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	var (
		profileName string
		jsonMode    bool
		onceMode    bool
		showVersion bool
	)

	flag.StringVar(&profileName, "profile", config.DefaultProfile, "Deployment profile (full, compact)")
	flag.BoolVar(&jsonMode, "json", false, "Output a single JSON snapshot and exit")
	flag.BoolVar(&onceMode, "once", false, "Output a single plain-text report and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("ttop v%s\n", Version)
		return nil
	}

	prof, err := config.ByName(profileName)
	if err != nil {
		return err
	}

	eng := engine.New()

	// -json mode: single snapshot to stdout
	if jsonMode {
		return runJSON(eng)
	}

	// -once mode: single plain-text report to stdout
	if onceMode {
		return runOnce(eng, prof)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal (use -json or -once for non-interactive output)")
	}

	// Normal TUI mode
	m := ui.NewModel(eng, prof, tickInterval)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(ui.Model); ok {
		return fm.Err()
	}
	return nil
}

// warm collects a throwaway snapshot and waits one interval so the
// second collection carries real CPU deltas.
func warm(eng *engine.Engine) (*model.Snapshot, error) {
	if _, err := eng.Refresh(); err != nil {
		return nil, err
	}
	time.Sleep(tickInterval)
	return eng.Refresh()
}

// runJSON outputs a single snapshot as JSON and exits.
func runJSON(eng *engine.Engine) error {
	snap, err := warm(eng)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// runOnce outputs a single plain-text report and exits.
func runOnce(eng *engine.Engine, prof config.Profile) error {
	snap, err := warm(eng)
	if err != nil {
		return err
	}

	fmt.Println(report.Render(snap, prof.TopN))
	return nil
}
