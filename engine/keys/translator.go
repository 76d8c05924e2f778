// Package keys translates between the legacy cross-platform key names used
// by experiment scripts ("space", "num_1", "quoteright") and the standard
// per-physical-key codes delivered by modern input sources ("Space",
// "Numpad1", "Quote").
//
// All lookups are best-effort. Unknown names are passed through unchanged
// and unknown codes resolve to false; nothing in this package fails.
package keys

import "sort"

var (
	legacyToStandard = make(map[string]string, len(legacyTable))
	standardToLegacy = make(map[string]string, len(legacyTable))
)

func init() {
	for _, e := range legacyTable {
		legacyToStandard[e.name] = e.code
		standardToLegacy[e.code] = e.name
	}
}

// ToStandardCodes returns one standard code per input name, in order. Names
// missing from the legacy table are assumed to already be standard codes.
func ToStandardCodes(names []string) []string {
	codes := make([]string, len(names))
	for i, n := range names {
		if c, ok := legacyToStandard[n]; ok {
			codes[i] = c
		} else {
			codes[i] = n
		}
	}
	return codes
}

// ToStandardCode is the single name form of ToStandardCodes.
func ToStandardCode(name string) string {
	if c, ok := legacyToStandard[name]; ok {
		return c
	}
	return name
}

// ToLegacyName returns the legacy name for a standard code. Where several
// legacy names share a code the one listed last in the legacy table is
// returned.
func ToLegacyName(code string) (string, bool) {
	n, ok := standardToLegacy[code]
	return n, ok
}

// LegacyNumericToStandard maps a legacy numeric key code to a standard code.
func LegacyNumericToStandard(keyCode int) (string, bool) {
	c, ok := keyCodeTable[keyCode]
	return c, ok
}

// Names returns every legacy name, sorted.
func Names() []string {
	names := make([]string, 0, len(legacyToStandard))
	for n := range legacyToStandard {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IsKnown reports whether name is either a legacy name or a standard code
// present in the tables.
func IsKnown(name string) bool {
	if _, ok := legacyToStandard[name]; ok {
		return true
	}
	_, ok := standardToLegacy[name]
	return ok
}
