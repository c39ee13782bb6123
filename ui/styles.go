package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorYellow = lipgloss.Color("#F1FA8C")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")

	borderStyle     = lipgloss.NewStyle().Foreground(colorGray)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	cpuStyle        = lipgloss.NewStyle().Foreground(colorYellow)
	memStyle        = lipgloss.NewStyle().Foreground(colorCyan)
	procHeaderStyle = lipgloss.NewStyle().Foreground(colorGreen)
	labelStyle      = lipgloss.NewStyle().Foreground(colorGray)
	valueStyle      = lipgloss.NewStyle().Foreground(colorWhite)
)
