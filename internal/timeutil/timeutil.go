// Package timeutil provides time formatting utilities for cue tracks.
package timeutil

import "fmt"

// FormatTimestamp converts seconds to the HH:MM:SS.mmm format used by
// WebVTT timing lines.
//
// Milliseconds are truncated, not rounded, so a cue boundary never lands
// past the sample it addresses.
//
// Example:
//
//	FormatTimestamp(0)       // "00:00:00.000"
//	FormatTimestamp(0.5)     // "00:00:00.500"
//	FormatTimestamp(90)      // "00:01:30.000"
//	FormatTimestamp(3661.25) // "01:01:01.250"
//	FormatTimestamp(1.9999)  // "00:00:01.999"
func FormatTimestamp(seconds float64) string {
	whole := int(seconds)
	ms := int((seconds - float64(whole)) * 1000)
	s := whole % 60
	m := (whole / 60) % 60
	h := whole / 3600
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}
