package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Format is the output image format of the sprite sheet.
type Format string

const (
	FormatWebP Format = "webp" // libwebp, quality 0-100 passed through
	FormatJPEG Format = "jpeg" // mjpeg, quality remapped to q-scale 2-31
	FormatPNG  Format = "png"  // lossless, quality ignored
)

// compressionLevel is the fixed encoder effort for webp and png output.
const compressionLevel = "6"

// ParseFormat parses a user-supplied format name. "jpg" and "jpeg" are
// both accepted for JPEG output.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "webp":
		return FormatWebP, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("invalid image format %q (use webp, jpg or png)", s)
	}
}

// Extension returns the file extension used for sprite sheets in this format.
func (f Format) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

// JPEGQScale maps a 1-100 quality value onto the mjpeg encoder's native
// q-scale, where lower numbers mean higher visual quality. The result is
// always within [2, 31] and decreases as quality increases.
func JPEGQScale(quality int) int {
	q := 32 - quality*30/100
	if q < 2 {
		q = 2
	}
	if q > 31 {
		q = 31
	}
	return q
}

// EncoderArgs returns the FFmpeg encoder arguments for the given format and
// quality. Both sprite composition strategies go through this single
// mapping, so their encoder settings can never diverge.
func EncoderArgs(format Format, quality int) []string {
	switch format {
	case FormatWebP:
		return []string{"-c:v", "libwebp", "-quality", strconv.Itoa(quality), "-compression_level", compressionLevel}
	case FormatJPEG:
		return []string{"-c:v", "mjpeg", "-q:v", strconv.Itoa(JPEGQScale(quality))}
	default:
		return []string{"-c:v", "png", "-compression_level", compressionLevel}
	}
}
