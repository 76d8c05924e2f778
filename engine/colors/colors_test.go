package colors_test

import (
	"testing"

	"github.com/hubastard/stimgrove/engine/colors"
)

func TestParse(t *testing.T) {
	tests := map[string]colors.Color{
		"white":     colors.White,
		" Grey ":    colors.Gray,
		"#ff0000":   colors.Red,
		"#00ff0080": {0, 1, 0, float32(0x80) / 255},
	}
	for in, want := range tests {
		got, err := colors.Parse(in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q) = %v, want %v", in, got, want)
		}
	}

	for _, in := range []string{"", "#ff", "#gg0000", "mauve"} {
		if _, err := colors.Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	b, err := colors.Cyan.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "#00ffffff" {
		t.Errorf("MarshalText() = %q", b)
	}
	var c colors.Color
	if err := c.UnmarshalText(b); err != nil || c != colors.Cyan {
		t.Errorf("UnmarshalText(%q) = %v, %v", b, c, err)
	}
}
