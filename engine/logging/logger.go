// Package logging records experiment log entries. Entries carry a time in
// seconds on the process-wide monotonic clock and a level. The frame loop
// stamps messages scheduled for a flip with the flip time; everything else
// is stamped when it is logged.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/hubastard/stimgrove/engine/clock"
	"github.com/mattn/go-isatty"
)

// Sink accepts fully timestamped log entries.
type Sink interface {
	Log(msg string, level Level, t float64, obj any)
}

// Entry is a single line in the log.
type Entry struct {
	Time    float64 `json:"t"`
	Level   Level   `json:"level"`
	Message string  `json:"msg"`
	Object  string  `json:"obj,omitempty"`
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%.4f \t%s \t%s", e.Time, e.Level, e.Message))
	if e.Object != "" {
		s.WriteString(fmt.Sprintf(" (%s)", e.Object))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger keeps a bounded list of recent entries, optionally echoing them to
// a writer and persisting them to a Store.
type Logger struct {
	mu         sync.Mutex
	threshold  Level
	maxEntries int
	entries    []Entry
	echo       io.Writer
	color      bool
	store      *Store
	now        clock.Source
}

// maximum number of entries kept in memory when none is given.
const defaultMaxEntries = 1024

// New creates a logger that accepts every level and keeps maxEntries
// entries in memory.
func New(maxEntries int) *Logger {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &Logger{
		threshold:  Debug,
		maxEntries: maxEntries,
		now:        clock.Monotonic,
	}
}

// SetLevel drops entries less important than level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.threshold = level
}

// SetClock changes the source used to stamp entries logged without an
// explicit time.
func (l *Logger) SetClock(now clock.Source) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// SetEcho prints every accepted entry to output. Output to a terminal is
// coloured by level. A nil writer stops the echo.
func (l *Logger) SetEcho(output io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.echo = output
	l.color = false
	if f, ok := output.(*os.File); ok {
		l.color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}

// SetStore persists every accepted entry. The logger does not close the
// store.
func (l *Logger) SetStore(s *Store) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.store = s
}

// Log implements the Sink interface.
func (l *Logger) Log(msg string, level Level, t float64, obj any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.threshold {
		return
	}

	e := Entry{
		Time:    t,
		Level:   level,
		Message: strings.ReplaceAll(msg, "\n", " "),
	}
	if obj != nil {
		e.Object = fmt.Sprint(obj)
	}

	l.entries = append(l.entries, e)
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}

	if l.echo != nil {
		if l.color {
			io.WriteString(l.echo, pen(level)+e.String()+normalPen)
		} else {
			io.WriteString(l.echo, e.String())
		}
	}

	if l.store != nil {
		l.store.Append(e)
	}
}

// Logf stamps a formatted message with the current time.
func (l *Logger) Logf(level Level, format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...), level, l.stamp(), nil)
}

func (l *Logger) stamp() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.now()
}

func (l *Logger) Debug(msg string)    { l.Log(msg, Debug, l.stamp(), nil) }
func (l *Logger) Info(msg string)     { l.Log(msg, Info, l.stamp(), nil) }
func (l *Logger) Exp(msg string)      { l.Log(msg, Exp, l.stamp(), nil) }
func (l *Logger) Data(msg string)     { l.Log(msg, Data, l.stamp(), nil) }
func (l *Logger) Warning(msg string)  { l.Log(msg, Warning, l.stamp(), nil) }
func (l *Logger) Error(msg string)    { l.Log(msg, Error, l.stamp(), nil) }
func (l *Logger) Critical(msg string) { l.Log(msg, Critical, l.stamp(), nil) }

// Clear all entries held in memory.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

// Entries returns a copy of the entries held in memory.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	c := make([]Entry, len(l.entries))
	copy(c, l.entries)
	return c
}

// Write every entry held in memory to output.
func (l *Logger) Write(output io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
}

// Tail writes the last number entries to output.
func (l *Logger) Tail(output io.Writer, number int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if number > len(l.entries) {
		number = len(l.entries)
	}
	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}
