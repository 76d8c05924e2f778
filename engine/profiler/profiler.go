// Package profiler times named scopes of the frame cycle. It does nothing
// until Init is called, so scopes can stay in place in release runs.
package profiler

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Span is one completed scope.
type Span struct {
	Scope int
	Start int64 // ns since Init
	End   int64
}

type ring struct {
	mu    sync.Mutex
	base  time.Time
	spans []Span
	next  int
	full  bool
}

var (
	enabled atomic.Bool
	spans   ring

	scopeMu sync.Mutex
	scopes  []string
	scopeID = map[string]int{}
)

// Init enables profiling, keeping the most recent capacity spans.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	spans.mu.Lock()
	spans.base = time.Now()
	spans.spans = make([]Span, capacity)
	spans.next = 0
	spans.full = false
	spans.mu.Unlock()
	enabled.Store(true)
}

// Enabled reports whether Init has been called.
func Enabled() bool { return enabled.Load() }

// Start opens a scope and returns the function that closes it.
//
//	defer profiler.Start("frame.render")()
func Start(name string) func() {
	if !enabled.Load() {
		return func() {}
	}
	id := intern(name)
	start := time.Since(spans.base).Nanoseconds()
	return func() {
		end := time.Since(spans.base).Nanoseconds()
		spans.push(Span{Scope: id, Start: start, End: end})
	}
}

func intern(name string) int {
	scopeMu.Lock()
	defer scopeMu.Unlock()
	if id, ok := scopeID[name]; ok {
		return id
	}
	id := len(scopes)
	scopeID[name] = id
	scopes = append(scopes, name)
	return id
}

func (r *ring) push(s Span) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spans[r.next] = s
	r.next++
	if r.next == len(r.spans) {
		r.next = 0
		r.full = true
	}
}

// snapshot returns the held spans, oldest first.
func (r *ring) snapshot() []Span {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.full {
		return append([]Span(nil), r.spans[:r.next]...)
	}
	out := make([]Span, 0, len(r.spans))
	out = append(out, r.spans[r.next:]...)
	return append(out, r.spans[:r.next]...)
}

// Stat summarises the spans of one scope.
type Stat struct {
	Name  string
	Count int
	Mean  time.Duration
	Max   time.Duration
}

// Summary returns per-scope statistics, sorted by name.
func Summary() []Stat {
	evs := spans.snapshot()

	scopeMu.Lock()
	names := append([]string(nil), scopes...)
	scopeMu.Unlock()

	total := make([]time.Duration, len(names))
	stats := make([]Stat, len(names))
	for _, s := range evs {
		d := time.Duration(s.End - s.Start)
		st := &stats[s.Scope]
		st.Count++
		total[s.Scope] += d
		if d > st.Max {
			st.Max = d
		}
	}

	out := make([]Stat, 0, len(names))
	for i, st := range stats {
		if st.Count == 0 {
			continue
		}
		st.Name = names[i]
		st.Mean = total[i] / time.Duration(st.Count)
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// WriteSummary prints Summary as a table.
func WriteSummary(w io.Writer) {
	for _, s := range Summary() {
		fmt.Fprintf(w, "%-20s n=%-8d mean=%-12v max=%v\n", s.Name, s.Count, s.Mean, s.Max)
	}
}

// speedscope evented profile format
type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"`
	At    int64  `json:"at"`
	Frame int    `json:"frame"`
}

// DumpSpeedscope writes the held spans as a speedscope file. Frame scopes do
// not nest, so every span becomes one open and one close event.
func DumpSpeedscope(path string) error {
	evs := spans.snapshot()
	if len(evs) == 0 {
		return fmt.Errorf("profiler: no spans to dump")
	}

	scopeMu.Lock()
	frames := make([]ssFrame, len(scopes))
	for i, n := range scopes {
		frames[i] = ssFrame{Name: n}
	}
	scopeMu.Unlock()

	base := evs[0].Start
	out := make([]ssEvent, 0, len(evs)*2)
	var end int64
	for _, s := range evs {
		out = append(out,
			ssEvent{Type: "O", At: (s.Start - base) / 1000, Frame: s.Scope},
			ssEvent{Type: "C", At: (s.End - base) / 1000, Frame: s.Scope},
		)
		if e := (s.End - base) / 1000; e > end {
			end = e
		}
	}

	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "frame cycle",
			Unit:     "microseconds",
			EndValue: end,
			Events:   out,
		}},
		Exporter: "stimgrove-profiler",
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(f).Encode(&doc); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
