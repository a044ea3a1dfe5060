package listens

import (
	"strconv"
	"strings"
)

// Marker is a named substring whose presence indicates a character-encoding
// conversion error in the source text.
type Marker struct {
	Name    string
	Pattern string
}

// builtinMarkers is the fixed set of known corruption markers. It is a narrow
// heuristic, not an encoding validator: other encoding damage passes through.
//
// Skipping beats repairing here. These strings show up when UTF-8 bytes were
// misread as Latin-1/Windows-1252 somewhere upstream, and U+0018 (the Cancel
// control character) only ever appeared in records that were mangled beyond
// recovery.
var builtinMarkers = []Marker{
	{Name: "misdecoded-e-acute", Pattern: "Ã©"},   // "é" re-read as two Latin-1 characters, "Ã©"
	{Name: "mojibake-punctuation", Pattern: "â€"}, // prefix of a mis-decoded dash/quote class, "â€"
	{Name: "cancel-control", Pattern: "\x18"},               // U+0018 Cancel
}

// Filter rejects candidate output lines containing a corruption marker.
type Filter struct {
	markers []Marker
}

// NewFilter builds a filter from the built-in markers plus any extra patterns
// from configuration. Extras never replace the built-in set.
func NewFilter(extra ...string) *Filter {
	markers := make([]Marker, len(builtinMarkers), len(builtinMarkers)+len(extra))
	copy(markers, builtinMarkers)
	for _, pattern := range extra {
		if pattern == "" {
			continue
		}
		markers = append(markers, Marker{
			Name:    "configured-" + strconv.Quote(pattern),
			Pattern: pattern,
		})
	}
	return &Filter{markers: markers}
}

// Match reports the first marker found in the candidate line. The whole
// tab-joined line is searched, matching the timestamp and all three name
// fields at once.
func (f *Filter) Match(line string) (Marker, bool) {
	for _, m := range f.markers {
		if strings.Contains(line, m.Pattern) {
			return m, true
		}
	}
	return Marker{}, false
}

// Markers returns the active marker set, built-ins first.
func (f *Filter) Markers() []Marker {
	return f.markers
}
