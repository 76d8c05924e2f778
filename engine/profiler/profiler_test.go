package profiler_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/stimgrove/engine/profiler"
)

func TestSummaryAndDump(t *testing.T) {
	// before Init scopes are free and record nothing
	profiler.Start("ignored")()

	profiler.Init(8)
	for i := 0; i < 3; i++ {
		end := profiler.Start("test.scope")
		end()
	}

	var found *profiler.Stat
	for _, s := range profiler.Summary() {
		if s.Name == "ignored" {
			t.Errorf("scope started before Init was recorded")
		}
		if s.Name == "test.scope" {
			s := s
			found = &s
		}
	}
	if found == nil || found.Count != 3 {
		t.Fatalf("expected three test.scope spans, got %+v", found)
	}

	path := filepath.Join(t.TempDir(), "profile.json")
	if err := profiler.DumpSpeedscope(path); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("dump is not json: %v", err)
	}
}

func TestRingWraps(t *testing.T) {
	profiler.Init(4)
	for i := 0; i < 10; i++ {
		profiler.Start("wrap")()
	}
	for _, s := range profiler.Summary() {
		if s.Name == "wrap" && s.Count != 4 {
			t.Errorf("expected ring to hold 4 spans, got %d", s.Count)
		}
	}
}
