package logging

import (
	"fmt"
	"strings"
)

// Level orders log entries by importance. Higher is more important.
type Level int

const (
	Debug    Level = 10
	Info     Level = 20
	Exp      Level = 22
	Data     Level = 25
	Warning  Level = 30
	Error    Level = 40
	Critical Level = 50
)

var levelNames = map[Level]string{
	Debug:    "DEBUG",
	Info:     "INFO",
	Exp:      "EXP",
	Data:     "DATA",
	Warning:  "WARNING",
	Error:    "ERROR",
	Critical: "CRITICAL",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("LEVEL%d", int(l))
}

// ParseLevel accepts level names in any case.
func ParseLevel(s string) (Level, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	for l, n := range levelNames {
		if n == u {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// MarshalText allows levels to appear by name in config files.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	v, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
