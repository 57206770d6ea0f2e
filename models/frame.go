// Package models provides core data structures for the sprite generator.
package models

import (
	"fmt"
	"strings"
)

// Frame represents one sample point of a video: the still image taken at
// Timestamp seconds into the source, occupying grid slot Index of the
// sprite sheet.
//
// Frames are created by the assembler from the sampled timestamp list and
// processed independently, so extraction can run in parallel. Index is the
// logical position in the row-major tile grid and must never be inferred
// from completion order.
//
// Use NewFrame to create a validated Frame instance.
type Frame struct {
	Index      uint    `json:"index"`
	Timestamp  float64 `json:"timestamp"`
	SourcePath string  `json:"source_path"`
}

// NewFrame creates a new Frame with validation.
//
// Returns an error if the frame parameters are invalid:
//   - SourcePath cannot be empty or whitespace-only
//   - Timestamp must be non-negative
//
// Example:
//
//	frame, err := models.NewFrame(3, 15.0, "/path/to/video.mp4")
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewFrame(index uint, timestamp float64, sourcePath string) (*Frame, error) {
	f := &Frame{
		Index:      index,
		Timestamp:  timestamp,
		SourcePath: sourcePath,
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid frame: %w", err)
	}
	return f, nil
}

// Validate checks if the Frame has valid data.
//
// Returns an error if:
//   - SourcePath is empty or whitespace-only
//   - Timestamp is negative
func (f *Frame) Validate() error {
	if strings.TrimSpace(f.SourcePath) == "" {
		return fmt.Errorf("source_path cannot be empty")
	}

	if f.Timestamp < 0 {
		return fmt.Errorf("timestamp cannot be negative")
	}

	return nil
}
