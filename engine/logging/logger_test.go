package logging_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hubastard/stimgrove/engine/logging"
)

func TestLoggerTail(t *testing.T) {
	log := logging.New(100)
	w := &strings.Builder{}

	log.Write(w)
	if w.String() != "" {
		t.Fatalf("expected empty log, got %q", w.String())
	}

	log.Log("this is a test", logging.Data, 1.5, nil)
	log.Write(w)
	if got, want := w.String(), "1.5000 \tDATA \tthis is a test\n"; got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}

	w.Reset()
	log.Log("another test", logging.Exp, 2, "stim")

	// asking for too many entries is okay
	log.Tail(w, 100)
	want := "1.5000 \tDATA \tthis is a test\n2.0000 \tEXP \tanother test (stim)\n"
	if w.String() != want {
		t.Errorf("Tail(100) = %q, want %q", w.String(), want)
	}

	w.Reset()
	log.Tail(w, 1)
	if got, want := w.String(), "2.0000 \tEXP \tanother test (stim)\n"; got != want {
		t.Errorf("Tail(1) = %q, want %q", got, want)
	}

	w.Reset()
	log.Tail(w, 0)
	if w.String() != "" {
		t.Errorf("Tail(0) = %q, want empty", w.String())
	}
}

func TestLoggerThreshold(t *testing.T) {
	log := logging.New(10)
	log.SetLevel(logging.Warning)

	log.Log("debug", logging.Debug, 0, nil)
	log.Log("data", logging.Data, 0, nil)
	log.Log("warning", logging.Warning, 0, nil)
	log.Log("error", logging.Error, 0, nil)

	var got []string
	for _, e := range log.Entries() {
		got = append(got, e.Message)
	}
	if diff := cmp.Diff([]string{"warning", "error"}, got); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestLoggerMaxEntries(t *testing.T) {
	log := logging.New(3)
	for i := 0; i < 5; i++ {
		log.Log(string(rune('a'+i)), logging.Info, float64(i), nil)
	}
	e := log.Entries()
	if len(e) != 3 || e[0].Message != "c" || e[2].Message != "e" {
		t.Errorf("unexpected entries after overflow: %v", e)
	}
}

func TestLoggerClockStamp(t *testing.T) {
	log := logging.New(10)
	log.SetClock(func() float64 { return 42 })
	log.Warning("stamped")
	log.Logf(logging.Data, "key %s", "space")

	e := log.Entries()
	if len(e) != 2 {
		t.Fatalf("expected two entries, got %d", len(e))
	}
	if e[0].Time != 42 || e[0].Level != logging.Warning {
		t.Errorf("unexpected entry %+v", e[0])
	}
	if e[1].Message != "key space" {
		t.Errorf("Logf message = %q", e[1].Message)
	}
}

func TestEchoWithoutTerminal(t *testing.T) {
	log := logging.New(10)
	w := &strings.Builder{}
	log.SetEcho(w)
	log.Log("echoed\nmessage", logging.Info, 0, nil)
	if got, want := w.String(), "0.0000 \tINFO \techoed message\n"; got != want {
		t.Errorf("echo = %q, want %q", got, want)
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"data", "DATA", " Data "} {
		l, err := logging.ParseLevel(s)
		if err != nil || l != logging.Data {
			t.Errorf("ParseLevel(%q) = %v, %v", s, l, err)
		}
	}
	if _, err := logging.ParseLevel("verbose"); err == nil {
		t.Errorf("expected error for unknown level")
	}
}

func TestStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.db")

	st, err := logging.OpenStore(path, "session-1")
	if err != nil {
		t.Fatal(err)
	}
	log := logging.New(10)
	log.SetStore(st)
	log.Log("first", logging.Data, 1, nil)
	log.Log("second", logging.Exp, 2, "obj")
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}

	st, err = logging.OpenStore(path, "session-2")
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	entries, err := st.Entries("session-1")
	if err != nil {
		t.Fatal(err)
	}
	want := []logging.Entry{
		{Time: 1, Level: logging.Data, Message: "first"},
		{Time: 2, Level: logging.Exp, Message: "second", Object: "obj"},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("stored entries mismatch (-want +got):\n%s", diff)
	}

	sessions, err := st.Sessions()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"session-1", "session-2"}, sessions); diff != "" {
		t.Errorf("sessions mismatch (-want +got):\n%s", diff)
	}

	if _, err := st.Entries("missing"); err == nil {
		t.Errorf("expected error for missing session")
	}
}

func TestStoreAppendAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.db")
	st, err := logging.OpenStore(path, "s")
	if err != nil {
		t.Fatal(err)
	}
	log := logging.New(10)
	log.SetStore(st)
	log.Log("kept", logging.Data, 1, nil)
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}

	log.Log("dropped", logging.Data, 2, nil)
	if err := st.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if n := len(log.Entries()); n != 2 {
		t.Errorf("ring holds %d entries, want 2", n)
	}

	st, err = logging.OpenStore(path, "s")
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	entries, err := st.Entries("s")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Message != "kept" {
		t.Errorf("stored %+v", entries)
	}
}
