package platform

import (
	"strconv"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// physical key as browsers report it: the standard code and the legacy
// numeric code.
type physKey struct {
	code    string
	keyCode int
}

var keymap = map[glfw.Key]physKey{
	glfw.KeySpace:        {"Space", 32},
	glfw.KeyApostrophe:   {"Quote", 222},
	glfw.KeyComma:        {"Comma", 188},
	glfw.KeyMinus:        {"Minus", 189},
	glfw.KeyPeriod:       {"Period", 190},
	glfw.KeySlash:        {"Slash", 191},
	glfw.KeySemicolon:    {"Semicolon", 186},
	glfw.KeyEqual:        {"Equal", 187},
	glfw.KeyLeftBracket:  {"BracketLeft", 219},
	glfw.KeyBackslash:    {"Backslash", 220},
	glfw.KeyRightBracket: {"BracketRight", 221},
	glfw.KeyGraveAccent:  {"Backquote", 192},

	glfw.KeyEscape:      {"Escape", 27},
	glfw.KeyEnter:       {"Enter", 13},
	glfw.KeyTab:         {"Tab", 9},
	glfw.KeyBackspace:   {"Backspace", 8},
	glfw.KeyInsert:      {"Insert", 45},
	glfw.KeyDelete:      {"Delete", 46},
	glfw.KeyRight:       {"ArrowRight", 39},
	glfw.KeyLeft:        {"ArrowLeft", 37},
	glfw.KeyDown:        {"ArrowDown", 40},
	glfw.KeyUp:          {"ArrowUp", 38},
	glfw.KeyPageUp:      {"PageUp", 33},
	glfw.KeyPageDown:    {"PageDown", 34},
	glfw.KeyHome:        {"Home", 36},
	glfw.KeyEnd:         {"End", 35},
	glfw.KeyCapsLock:    {"CapsLock", 20},
	glfw.KeyScrollLock:  {"ScrollLock", 145},
	glfw.KeyNumLock:     {"NumLock", 144},
	glfw.KeyPrintScreen: {"PrintScreen", 44},
	glfw.KeyPause:       {"Pause", 19},

	glfw.KeyKPDecimal:  {"NumpadDecimal", 110},
	glfw.KeyKPDivide:   {"NumpadDivide", 111},
	glfw.KeyKPMultiply: {"NumpadMultiply", 106},
	glfw.KeyKPSubtract: {"NumpadSubtract", 109},
	glfw.KeyKPAdd:      {"NumpadAdd", 107},
	glfw.KeyKPEnter:    {"NumpadEnter", 13},
	glfw.KeyKPEqual:    {"NumpadEqual", 12},

	glfw.KeyLeftShift:    {"ShiftLeft", 16},
	glfw.KeyLeftControl:  {"ControlLeft", 17},
	glfw.KeyLeftAlt:      {"AltLeft", 18},
	glfw.KeyLeftSuper:    {"MetaLeft", 91},
	glfw.KeyRightShift:   {"ShiftRight", 16},
	glfw.KeyRightControl: {"ControlRight", 17},
	glfw.KeyRightAlt:     {"AltRight", 18},
	glfw.KeyRightSuper:   {"MetaRight", 92},
	glfw.KeyMenu:         {"ContextMenu", 93},
}

func init() {
	for i := 0; i < 26; i++ {
		keymap[glfw.KeyA+glfw.Key(i)] = physKey{"Key" + string(rune('A'+i)), 65 + i}
	}
	for i := 0; i < 10; i++ {
		d := string(rune('0' + i))
		keymap[glfw.Key0+glfw.Key(i)] = physKey{"Digit" + d, 48 + i}
		keymap[glfw.KeyKP0+glfw.Key(i)] = physKey{"Numpad" + d, 96 + i}
	}
	for i := 0; i < 15; i++ {
		keymap[glfw.KeyF1+glfw.Key(i)] = physKey{"F" + strconv.Itoa(i+1), 112 + i}
	}
}

// translateKey returns the standard code, a display label and the legacy
// numeric code of a key. ok is false for keys without a standard code.
func translateKey(k glfw.Key, scancode int) (code, label string, keyCode int, ok bool) {
	p, ok := keymap[k]
	if !ok {
		return "", "", 0, false
	}
	label = glfw.GetKeyName(k, scancode)
	if label == "" {
		label = p.code
	}
	return p.code, label, p.keyCode, true
}
