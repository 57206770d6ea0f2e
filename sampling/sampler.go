// Package sampling converts a probed video duration into the ordered list
// of timestamps at which sprite frames are taken.
package sampling

// MinFirstSample is the earliest allowed sample timestamp in seconds. The
// very first frame of a video is frequently blank or black, so sampling
// never starts before this offset.
const MinFirstSample = 0.5

// Timestamps returns the sample timestamps for a video of the given
// duration, one every interval seconds.
//
// The sequence is strictly increasing, starts at MinFirstSample or later,
// and is never empty: inputs that would produce no samples (zero or
// negative duration, duration shorter than one interval step) yield the
// single-element sequence [MinFirstSample].
//
// interval is in whole seconds and must be positive; non-positive values
// fall back to the single-element sequence as well.
func Timestamps(duration float64, interval int) []float64 {
	if duration <= 0 || interval < 1 {
		return []float64{MinFirstSample}
	}

	var timestamps []float64
	for t := 0.0; t < duration; t += float64(interval) {
		if t < MinFirstSample {
			timestamps = append(timestamps, MinFirstSample)
		} else {
			timestamps = append(timestamps, t)
		}
	}

	if len(timestamps) == 0 {
		return []float64{MinFirstSample}
	}
	return timestamps
}
