// Package extract builds single-frame extraction commands for the streaming
// strategy: one FFmpeg invocation per sample timestamp, writing one scaled
// still image into the assembly's temporary work area.
package extract

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"spritegen/command"
	"spritegen/models"
)

// FramePattern is the sequential-read input pattern the tiling pass uses to
// consume extracted frames.
const FramePattern = "frame_%05d.jpg"

// FrameFileName returns the file name for the frame at the given sample
// index. The zero-padded index makes lexical filename order identical to
// logical sample order, so frames extracted concurrently are still tiled
// in the right sequence.
func FrameFileName(index uint) string {
	return fmt.Sprintf(FramePattern, index)
}

// ExtractBuilder implements single still-frame extraction at one timestamp.
//
// Extracted frames are always encoded as mjpeg regardless of the final
// sheet format; the sheet encoding happens in the tiling pass.
type ExtractBuilder struct {
	frame      *models.Frame
	outputPath string

	tileWidth  int
	tileHeight int
	quality    int
}

// NewExtractBuilder creates a new frame extraction command builder.
func NewExtractBuilder(frame *models.Frame, outputPath string) *ExtractBuilder {
	return &ExtractBuilder{
		frame:      frame,
		outputPath: outputPath,
		tileWidth:  320,
		tileHeight: 180,
		quality:    85,
	}
}

// SetTileSize sets the pixel dimensions the frame is scaled to.
func (e *ExtractBuilder) SetTileSize(width, height int) *ExtractBuilder {
	e.tileWidth = width
	e.tileHeight = height
	return e
}

// SetQuality sets the image quality (1-100) applied to the intermediate frame.
func (e *ExtractBuilder) SetQuality(quality int) *ExtractBuilder {
	e.quality = quality
	return e
}

// BuildArgs constructs the FFmpeg arguments for frame extraction.
// Seeking (-ss) before the input keeps extraction fast on long videos.
func (e *ExtractBuilder) BuildArgs() []string {
	return []string{
		"-y",
		"-ss", strconv.FormatFloat(e.frame.Timestamp, 'f', -1, 64),
		"-i", e.frame.SourcePath,
		"-frames:v", "1",
		"-vf", fmt.Sprintf("scale=%d:%d:flags=lanczos", e.tileWidth, e.tileHeight),
		"-c:v", "mjpeg",
		"-q:v", strconv.Itoa(command.JPEGQScale(e.quality)),
		e.outputPath,
		"-hide_banner", "-loglevel", "error",
	}
}

// Run executes the extraction command.
func (e *ExtractBuilder) Run() error {
	cmd := exec.Command("ffmpeg", e.BuildArgs()...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg frame extraction at %.3fs failed: %w\nOutput: %s",
			e.frame.Timestamp, err, string(output))
	}
	return nil
}

// DryRun returns the command that would be executed without running it.
func (e *ExtractBuilder) DryRun() (string, error) {
	return "ffmpeg " + strings.Join(e.BuildArgs(), " "), nil
}

// GetTaskType returns the task type identifier.
func (e *ExtractBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeExtract
}

// GetInputPath returns the input file path.
func (e *ExtractBuilder) GetInputPath() string {
	return e.frame.SourcePath
}

// GetOutputPath returns the output file path.
func (e *ExtractBuilder) GetOutputPath() string {
	return e.outputPath
}
