// Package vtt writes the WebVTT cue track that maps playback time ranges
// onto sprite sheet tiles.
//
// Each cue covers one sample: it starts at the sample's timestamp, ends at
// the next sample's timestamp, and points at the sample's tile through a
// media-fragment rectangle. The last cue has no successor, so it is closed
// one second after its start.
package vtt

import (
	"fmt"
	"os"
	"strings"

	"spritegen/grid"
	"spritegen/internal/timeutil"
)

// Cue is one (time range, rectangle) pair of the track.
type Cue struct {
	Start float64
	End   float64
	X     int
	Y     int
	W     int
	H     int
}

// Cues builds the cue sequence for the given sample timestamps. The
// returned slice always has exactly one cue per timestamp, and each cue's
// End equals the following cue's Start.
func Cues(timestamps []float64, columns, tileWidth, tileHeight int) []Cue {
	cues := make([]Cue, len(timestamps))
	for i, ts := range timestamps {
		end := ts + 1
		if i+1 < len(timestamps) {
			end = timestamps[i+1]
		}
		x, y := grid.Offset(i, columns, tileWidth, tileHeight)
		cues[i] = Cue{Start: ts, End: end, X: x, Y: y, W: tileWidth, H: tileHeight}
	}
	return cues
}

// Render serializes the cue track. spriteName is the sprite sheet's file
// name relative to the cue file.
func Render(cues []Cue, spriteName string) string {
	lines := []string{"WEBVTT", ""}
	for _, cue := range cues {
		lines = append(lines,
			fmt.Sprintf("%s --> %s", timeutil.FormatTimestamp(cue.Start), timeutil.FormatTimestamp(cue.End)),
			fmt.Sprintf("%s#xywh=%d,%d,%d,%d", spriteName, cue.X, cue.Y, cue.W, cue.H),
			"")
	}
	return strings.Join(lines, "\n")
}

// Write builds the cue track for the sample timestamps and writes it to
// path. The write failure of the underlying file is the only error mode.
func Write(path string, timestamps []float64, columns, tileWidth, tileHeight int, spriteName string) error {
	content := Render(Cues(timestamps, columns, tileWidth, tileHeight), spriteName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write cue track: %w", err)
	}
	return nil
}
