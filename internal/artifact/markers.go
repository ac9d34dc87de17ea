// Package artifact builds the marker-delimited code artifact the generator
// prints: wrapping of provider output and the deterministic fallback.
package artifact

import "strings"

const (
	StartMarker = "###CODE_START###"
	EndMarker   = "###CODE_END###"
)

// HasMarkers reports whether text already carries both markers.
func HasMarkers(text string) bool {
	return strings.Contains(text, StartMarker) && strings.Contains(text, EndMarker)
}

func Wrap(text string) string {
	return StartMarker + "\n" + text + "\n" + EndMarker
}

// Normalize returns provider output ready for emission: verbatim when it is
// already marked, wrapped otherwise. The content itself is never inspected.
func Normalize(text string) string {
	if HasMarkers(text) {
		return text
	}
	return Wrap(text)
}

// stripMarkers repeats until nothing changes: removing one marker can join
// its neighbours into another.
func stripMarkers(text string) string {
	for {
		stripped := markerStripper.Replace(text)
		if stripped == text {
			return text
		}
		text = stripped
	}
}

var markerStripper = strings.NewReplacer(StartMarker, "", EndMarker, "")
