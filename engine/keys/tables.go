package keys

// legacyEntry pairs a legacy (pyglet) key name with its standard (w3c) code.
type legacyEntry struct {
	name string
	code string
}

// legacyTable is ordered. Several legacy names share a code; the reverse
// table is built by walking this slice so the later name wins.
var legacyTable = []legacyEntry{
	{"grave", "Backquote"},
	{"quoteleft", "Backquote"},
	{"backslash", "Backslash"},
	{"backspace", "Backspace"},
	{"bracketleft", "BracketLeft"},
	{"bracketright", "BracketRight"},
	{"comma", "Comma"},
	{"0", "Digit0"},
	{"1", "Digit1"},
	{"2", "Digit2"},
	{"3", "Digit3"},
	{"4", "Digit4"},
	{"5", "Digit5"},
	{"6", "Digit6"},
	{"7", "Digit7"},
	{"8", "Digit8"},
	{"9", "Digit9"},
	{"equal", "Equal"},
	{"a", "KeyA"},
	{"b", "KeyB"},
	{"c", "KeyC"},
	{"d", "KeyD"},
	{"e", "KeyE"},
	{"f", "KeyF"},
	{"g", "KeyG"},
	{"h", "KeyH"},
	{"i", "KeyI"},
	{"j", "KeyJ"},
	{"k", "KeyK"},
	{"l", "KeyL"},
	{"m", "KeyM"},
	{"n", "KeyN"},
	{"o", "KeyO"},
	{"p", "KeyP"},
	{"q", "KeyQ"},
	{"r", "KeyR"},
	{"s", "KeyS"},
	{"t", "KeyT"},
	{"u", "KeyU"},
	{"v", "KeyV"},
	{"w", "KeyW"},
	{"x", "KeyX"},
	{"y", "KeyY"},
	{"z", "KeyZ"},
	{"minus", "Minus"},
	{"period", "Period"},
	{"apostrophe", "Quote"},
	{"quoteright", "Quote"},
	{"semicolon", "Semicolon"},
	{"slash", "Slash"},

	{"lalt", "AltLeft"},
	{"ralt", "AltRight"},
	{"capslock", "CapsLock"},
	{"lctrl", "ControlLeft"},
	{"rctrl", "ControlRight"},
	{"lshift", "ShiftLeft"},
	{"rshift", "ShiftRight"},
	{"lwindows", "MetaLeft"},
	{"rwindows", "MetaRight"},
	{"menu", "ContextMenu"},
	{"enter", "Enter"},
	{"return", "Enter"},
	{"space", "Space"},
	{"tab", "Tab"},

	{"delete", "Delete"},
	{"end", "End"},
	{"help", "Help"},
	{"home", "Home"},
	{"insert", "Insert"},
	{"pagedown", "PageDown"},
	{"pageup", "PageUp"},

	{"down", "ArrowDown"},
	{"left", "ArrowLeft"},
	{"right", "ArrowRight"},
	{"up", "ArrowUp"},

	{"numlock", "NumLock"},
	{"num_0", "Numpad0"},
	{"num_1", "Numpad1"},
	{"num_2", "Numpad2"},
	{"num_3", "Numpad3"},
	{"num_4", "Numpad4"},
	{"num_5", "Numpad5"},
	{"num_6", "Numpad6"},
	{"num_7", "Numpad7"},
	{"num_8", "Numpad8"},
	{"num_9", "Numpad9"},
	{"num_add", "NumpadAdd"},
	{"num_decimal", "NumpadDecimal"},
	{"num_divide", "NumpadDivide"},
	{"num_enter", "NumpadEnter"},
	{"num_equal", "NumpadEqual"},
	{"num_multiply", "NumpadMultiply"},
	{"num_subtract", "NumpadSubtract"},

	{"escape", "Escape"},
	{"f1", "F1"},
	{"f2", "F2"},
	{"f3", "F3"},
	{"f4", "F4"},
	{"f5", "F5"},
	{"f6", "F6"},
	{"f7", "F7"},
	{"f8", "F8"},
	{"f9", "F9"},
	{"f10", "F10"},
	{"f11", "F11"},
	{"f12", "F12"},
	{"f13", "F13"},
	{"f14", "F14"},
	{"f15", "F15"},
	{"printscreen", "PrintScreen"},
	{"scrolllock", "ScrollLock"},
	{"pause", "Pause"},
}

// keyCodeTable maps legacy numeric key codes (KeyboardEvent.keyCode) to
// standard codes. It only covers the codes that are stable across layouts.
var keyCodeTable = map[int]string{
	8:  "Backspace",
	9:  "Tab",
	13: "Enter",
	16: "ShiftLeft",
	17: "ControlLeft",
	18: "AltLeft",
	19: "Pause",
	20: "CapsLock",
	27: "Escape",
	32: "Space",
	33: "PageUp",
	34: "PageDown",
	35: "End",
	36: "Home",
	37: "ArrowLeft",
	38: "ArrowUp",
	39: "ArrowRight",
	40: "ArrowDown",
	45: "Insert",
	46: "Delete",

	48: "Digit0",
	49: "Digit1",
	50: "Digit2",
	51: "Digit3",
	52: "Digit4",
	53: "Digit5",
	54: "Digit6",
	55: "Digit7",
	56: "Digit8",
	57: "Digit9",

	// firefox
	59:  "Semicolon",
	61:  "Equal",
	173: "Minus",

	65: "KeyA",
	66: "KeyB",
	67: "KeyC",
	68: "KeyD",
	69: "KeyE",
	70: "KeyF",
	71: "KeyG",
	72: "KeyH",
	73: "KeyI",
	74: "KeyJ",
	75: "KeyK",
	76: "KeyL",
	77: "KeyM",
	78: "KeyN",
	79: "KeyO",
	80: "KeyP",
	81: "KeyQ",
	82: "KeyR",
	83: "KeyS",
	84: "KeyT",
	85: "KeyU",
	86: "KeyV",
	87: "KeyW",
	88: "KeyX",
	89: "KeyY",
	90: "KeyZ",

	91: "MetaLeft",
	92: "MetaRight",
	93: "ContextMenu",

	96:  "Numpad0",
	97:  "Numpad1",
	98:  "Numpad2",
	99:  "Numpad3",
	100: "Numpad4",
	101: "Numpad5",
	102: "Numpad6",
	103: "Numpad7",
	104: "Numpad8",
	105: "Numpad9",
	106: "NumpadMultiply",
	107: "NumpadAdd",
	109: "NumpadSubtract",
	110: "NumpadDecimal",
	111: "NumpadDivide",

	112: "F1",
	113: "F2",
	114: "F3",
	115: "F4",
	116: "F5",
	117: "F6",
	118: "F7",
	119: "F8",
	120: "F9",
	121: "F10",
	122: "F11",
	123: "F12",
	124: "F13",
	125: "F14",
	126: "F15",

	144: "NumLock",
	145: "ScrollLock",

	186: "Semicolon",
	187: "Equal",
	188: "Comma",
	189: "Minus",
	190: "Period",
	191: "Slash",
	192: "Backquote",
	219: "BracketLeft",
	220: "Backslash",
	221: "BracketRight",
	222: "Quote",
}
