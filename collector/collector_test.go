package collector

import (
	"errors"
	"strings"
	"testing"

	"github.com/hiromitsuiwata/ttop/model"
)

// stubCollector records whether it ran and optionally fails.
type stubCollector struct {
	name string
	err  error
	ran  bool
}

func (s *stubCollector) Name() string { return s.name }

func (s *stubCollector) Collect(snap *model.Snapshot) error {
	s.ran = true
	return s.err
}

func TestCollectAll_RunsAllInOrder(t *testing.T) {
	first := &stubCollector{name: "first"}
	second := &stubCollector{name: "second"}
	reg := &Registry{}
	reg.Add(first)
	reg.Add(second)

	if err := reg.CollectAll(&model.Snapshot{}); err != nil {
		t.Fatalf("CollectAll returned error: %v", err)
	}
	if !first.ran || !second.ran {
		t.Errorf("ran = (%v, %v); want both true", first.ran, second.ran)
	}
}

func TestCollectAll_FirstErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	failing := &stubCollector{name: "failing", err: boom}
	after := &stubCollector{name: "after"}
	reg := &Registry{}
	reg.Add(failing)
	reg.Add(after)

	err := reg.CollectAll(&model.Snapshot{})
	if err == nil {
		t.Fatal("CollectAll returned nil, want error")
	}
	if !errors.Is(err, boom) {
		t.Errorf("error %v does not wrap the collector failure", err)
	}
	if !strings.Contains(err.Error(), "failing") {
		t.Errorf("error %q does not name the failing collector", err)
	}
	if after.ran {
		t.Error("collector after the failure still ran")
	}
}
