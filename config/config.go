package config

import (
	"fmt"
	"strings"
)

// PanelKind identifies one dashboard band.
type PanelKind int

const (
	PanelCPU PanelKind = iota
	PanelMemory
	PanelProcesses
	PanelHostInfo
)

func (k PanelKind) String() string {
	switch k {
	case PanelCPU:
		return "cpu"
	case PanelMemory:
		return "memory"
	case PanelProcesses:
		return "processes"
	case PanelHostInfo:
		return "hostinfo"
	}
	return "unknown"
}

// Band pairs a panel with its vertical size policy. A fixed band gets
// exactly Rows lines. A flexible band gets at least Rows, and the
// last flexible band absorbs whatever interior height is left over.
type Band struct {
	Kind  PanelKind
	Rows  int
	Fixed bool
}

// Profile is a deployment profile: which panels are stacked, how tall
// each band is, and how many processes the table ranks.
type Profile struct {
	Name  string
	TopN  int
	Bands []Band
}

// DefaultProfile is used when no -profile flag is given.
const DefaultProfile = "full"

// full spends all remaining height on the process table; compact
// holds the table at five rows and shows host facts below it.
var profiles = []Profile{
	{
		Name: "full",
		TopN: 20,
		Bands: []Band{
			{Kind: PanelCPU, Rows: 3, Fixed: true},
			{Kind: PanelMemory, Rows: 3, Fixed: true},
			{Kind: PanelProcesses, Rows: 10},
		},
	},
	{
		Name: "compact",
		TopN: 5,
		Bands: []Band{
			{Kind: PanelCPU, Rows: 3, Fixed: true},
			{Kind: PanelMemory, Rows: 3, Fixed: true},
			{Kind: PanelProcesses, Rows: 8},
			{Kind: PanelHostInfo},
		},
	},
}

// ByName returns the named profile.
func ByName(name string) (Profile, error) {
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("unknown profile %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Names lists the available profile names in declaration order.
func Names() []string {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return names
}
