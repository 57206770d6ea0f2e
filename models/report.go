package models

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Report summarizes the processing of a single video: how many frames went
// into the sprite sheet, the size of the sheet on disk, and wall-clock time.
type Report struct {
	Input        string        `json:"input"`
	FrameCount   int           `json:"frame_count"`
	OutputSizeMB float64       `json:"output_size_mb"`
	Elapsed      time.Duration `json:"elapsed"`
}

// Stem returns the input file's base name without its extension, which is
// the base name of both output artifacts.
func (r *Report) Stem() string {
	base := filepath.Base(r.Input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// String formats the report as the one-line per-video summary.
//
// Example: "movie: 600 frames, 4.2MB, 31.7s"
func (r *Report) String() string {
	return fmt.Sprintf("%s: %d frames, %.1fMB, %.1fs",
		r.Stem(), r.FrameCount, r.OutputSizeMB, r.Elapsed.Seconds())
}

// ProgressCallback is a function that receives frame-extraction progress
// updates. It is best-effort: implementations must not block and have no
// influence on scheduling.
type ProgressCallback func(completed, total int)
