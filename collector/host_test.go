package collector

import (
	"testing"
	"time"
)

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0m"},
		{"minutes only", 12 * time.Minute, "12m"},
		{"sub-minute rounds down", 45 * time.Second, "0m"},
		{"hours and minutes", 3*time.Hour + 5*time.Minute, "3h 5m"},
		{"days", 49*time.Hour + 12*time.Minute, "2d 1h 12m"},
		{"exact day", 24 * time.Hour, "1d 0h 0m"},
		{"negative clamps", -time.Minute, "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatUptime(tt.d); got != tt.want {
				t.Errorf("formatUptime(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
