package collector

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/sys/unix"

	"github.com/hiromitsuiwata/ttop/model"
	"github.com/hiromitsuiwata/ttop/util"
)

// HostCollector probes static host facts once and reuses them.
// Uptime is derived from the cached boot time on each call so it
// stays current without re-probing the platform.
type HostCollector struct {
	once     sync.Once
	cached   model.HostInfo
	bootTime time.Time
}

func (h *HostCollector) Name() string { return "host" }

func (h *HostCollector) Collect(snap *model.Snapshot) error {
	h.once.Do(h.probe)

	info := h.cached
	if !h.bootTime.IsZero() {
		info.Uptime = formatUptime(time.Since(h.bootTime))
	}
	snap.Host = info
	return nil
}

// probe gathers every fact best-effort; a fact that cannot be read
// stays empty and renders as "Unknown".
func (h *HostCollector) probe() {
	if info, err := host.Info(); err == nil {
		h.cached.Architecture = info.KernelArch
		h.cached.KernelVersion = info.KernelVersion
		h.cached.Hostname = info.Hostname
		if info.Platform != "" {
			h.cached.OSVersion = strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
		}
		if info.BootTime > 0 {
			h.bootTime = time.Unix(int64(info.BootTime), 0)
		}
	}
	if h.cached.Architecture == "" {
		h.cached.Architecture = runtime.GOARCH
	}

	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rl); err == nil {
		if rl.Cur == unix.RLIM_INFINITY {
			h.cached.OpenFileLimit = "unlimited"
		} else {
			h.cached.OpenFileLimit = strconv.FormatUint(uint64(rl.Cur), 10)
		}
	}

	h.cached.ProductName = readDMI("product_name")
	h.cached.VendorName = readDMI("sys_vendor")
}

// readDMI reads one firmware attribute from /sys. Empty on VMs
// without SMBIOS tables and on non-Linux hosts.
func readDMI(attr string) string {
	s, err := util.ReadFileString("/sys/class/dmi/id/" + attr)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// formatUptime renders a duration as "3d 4h 12m", dropping leading
// units that are zero.
func formatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return strconv.Itoa(days) + "d " + strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	default:
		return strconv.Itoa(mins) + "m"
	}
}
