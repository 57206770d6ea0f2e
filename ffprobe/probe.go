// Package ffprobe obtains the playback duration of media files using the
// ffprobe command-line tool.
package ffprobe

import (
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// ProbeError indicates that a video's duration could not be obtained:
// either ffprobe exited non-zero or its output was not a finite
// non-negative number.
type ProbeError struct {
	Path string
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("duration probe failed for %s: %v", e.Path, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// Probe returns the total playback duration of the media file in seconds.
//
// It executes ffprobe synchronously and parses its single-line textual
// output. There is no retry: any failure is returned as a *ProbeError.
//
// Example:
//
//	duration, err := ffprobe.Probe("/path/to/video.mp4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Duration: %.2f seconds\n", duration)
func Probe(sourcePath string) (float64, error) {
	if sourcePath == "" {
		return 0, &ProbeError{Path: sourcePath, Err: fmt.Errorf("source path cannot be empty")}
	}

	// -v error: suppress everything but real errors
	// -show_entries format=duration: only the duration field
	// -of default=noprint_wrappers=1:nokey=1: bare value, no section headers
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		sourcePath,
	}

	cmd := exec.Command("ffprobe", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return 0, &ProbeError{Path: sourcePath, Err: fmt.Errorf("ffprobe failed: %w (stderr: %s)", err, strings.TrimSpace(string(exitErr.Stderr)))}
		}
		return 0, &ProbeError{Path: sourcePath, Err: fmt.Errorf("ffprobe failed: %w", err)}
	}

	duration, err := parseDuration(string(output))
	if err != nil {
		return 0, &ProbeError{Path: sourcePath, Err: err}
	}
	return duration, nil
}

// parseDuration parses ffprobe's textual output as a finite non-negative
// number of seconds.
func parseDuration(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("ffprobe returned no duration")
	}

	duration, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration %q: %w", trimmed, err)
	}

	if math.IsNaN(duration) || math.IsInf(duration, 0) {
		return 0, fmt.Errorf("duration %q is not finite", trimmed)
	}
	if duration < 0 {
		return 0, fmt.Errorf("duration %q is negative", trimmed)
	}

	return duration, nil
}
