package input_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hubastard/stimgrove/engine/input"
)

func codes(evs []input.KeyEvent) []string {
	var out []string
	for _, e := range evs {
		out = append(out, e.Code)
	}
	return out
}

func TestConsumeDrainsWithoutFilter(t *testing.T) {
	var b input.Buffer
	b.Capture("KeyA", "a", 65, 1)
	b.Capture("Space", " ", 32, 2)
	b.Capture("Digit1", "1", 49, 3)

	got := b.Consume(nil, false)
	want := []input.KeyPress{{Name: "a"}, {Name: "space"}, {Name: "1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("first consume mismatch (-want +got):\n%s", diff)
	}

	if again := b.Consume(nil, false); len(again) != 0 {
		t.Errorf("second consume should be empty, got %v", again)
	}
	if b.Len() != 0 {
		t.Errorf("buffer should be empty, has %d events", b.Len())
	}
}

func TestConsumeKeepsUnmappedWithoutFilter(t *testing.T) {
	var b input.Buffer
	b.Capture("IntlYen", "¥", 0, 1)
	b.Capture("KeyB", "b", 66, 2)

	got := b.Consume(nil, false)
	if diff := cmp.Diff([]input.KeyPress{{Name: "b"}}, got); diff != "" {
		t.Errorf("consume mismatch (-want +got):\n%s", diff)
	}

	// the event without a legacy name is never returned but stays buffered
	if diff := cmp.Diff([]string{"IntlYen"}, codes(b.Events())); diff != "" {
		t.Errorf("retained mismatch (-want +got):\n%s", diff)
	}
	if again := b.Consume(nil, false); len(again) != 0 {
		t.Errorf("second consume should be empty, got %v", again)
	}

	b.Clear()
	if b.Len() != 0 {
		t.Errorf("clear should empty the buffer")
	}
}

func TestConsumeFilterRetainsUnmatchedInOrder(t *testing.T) {
	var b input.Buffer
	b.Capture("KeyF", "f", 70, 1)
	b.Capture("KeyX", "x", 88, 2)
	b.Capture("KeyJ", "j", 74, 3)
	b.Capture("KeyY", "y", 89, 4)
	b.Capture("Space", " ", 32, 5)
	b.Capture("KeyZ", "z", 90, 6)

	got := b.Consume([]string{"f", "Space", "j"}, false)
	want := []input.KeyPress{{Name: "f"}, {Name: "j"}, {Name: "space"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("consume mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"KeyX", "KeyY", "KeyZ"}, codes(b.Events())); diff != "" {
		t.Errorf("retained mismatch (-want +got):\n%s", diff)
	}
}

func TestConsumeFilterLegacyNumericFallback(t *testing.T) {
	var b input.Buffer

	// an event whose native code disagrees with the filter but whose legacy
	// numeric code matches
	b.Capture("IntlBackslash", "<", 190, 1)
	b.Capture("KeyQ", "q", 81, 2)

	got := b.Consume([]string{"period"}, true)
	want := []input.KeyPress{{Name: "period", Timestamp: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("consume mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"KeyQ"}, codes(b.Events())); diff != "" {
		t.Errorf("retained mismatch (-want +got):\n%s", diff)
	}
}

func TestCaptureResolvesMissingCode(t *testing.T) {
	var b input.Buffer
	b.Capture("", "Enter", 13, 1)
	evs := b.Events()
	if len(evs) != 1 || evs[0].Code != "Enter" {
		t.Fatalf("expected resolved Enter code, got %+v", evs)
	}
	got := b.Consume([]string{"return"}, false)
	if diff := cmp.Diff([]input.KeyPress{{Name: "return"}}, got); diff != "" {
		t.Errorf("consume mismatch (-want +got):\n%s", diff)
	}
}

func TestConsumeFilterWithoutLegacyNameRetains(t *testing.T) {
	var b input.Buffer
	b.Capture("IntlRo", "ro", 0, 1)

	// the filter matches but the matched entry has no legacy name
	if got := b.Consume([]string{"IntlRo"}, false); len(got) != 0 {
		t.Errorf("expected no results, got %v", got)
	}
	if b.Len() != 1 {
		t.Errorf("expected the event to remain buffered")
	}
}

func TestConsumeTimestampOrder(t *testing.T) {
	var b input.Buffer
	b.Capture("ArrowLeft", "ArrowLeft", 37, 0.25)
	b.Capture("ArrowRight", "ArrowRight", 39, 0.5)
	b.Capture("ArrowLeft", "ArrowLeft", 37, 0.75)

	got := b.Consume([]string{"left", "right"}, true)
	want := []input.KeyPress{
		{Name: "left", Timestamp: 0.25},
		{Name: "right", Timestamp: 0.5},
		{Name: "left", Timestamp: 0.75},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("consume mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyFilterMatchesNothing(t *testing.T) {
	var b input.Buffer
	b.Capture("KeyA", "a", 65, 1)
	if got := b.Consume([]string{}, false); len(got) != 0 {
		t.Errorf("expected no results for empty filter, got %v", got)
	}
	if b.Len() != 1 {
		t.Errorf("expected event to remain")
	}
}

func TestCaptureConsumeConcurrent(t *testing.T) {
	var b input.Buffer
	const n = 500

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			b.Capture("KeyA", "a", 65, float64(i))
		}
	}()

	total := 0
	for total < n {
		total += len(b.Consume([]string{"a"}, true))
	}
	wg.Wait()

	if total != n {
		t.Errorf("consumed %d events, want %d", total, n)
	}
	if b.Len() != 0 {
		t.Errorf("buffer should be empty")
	}
}
