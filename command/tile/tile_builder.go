// Package tile builds the composition command of the streaming strategy:
// one FFmpeg invocation that reads the sequentially-numbered extracted
// frames in index order and tiles them into the sprite sheet.
package tile

import (
	"fmt"
	"os/exec"
	"strings"

	"spritegen/command"
	"spritegen/grid"
)

// TileBuilder implements sprite sheet composition from an extracted frame
// sequence.
type TileBuilder struct {
	patternPath string
	outputPath  string

	frameCount int
	columns    int

	format  command.Format
	quality int
}

// NewTileBuilder creates a new tiling command builder. patternPath is the
// printf-style sequence pattern of the extracted frames, e.g.
// "/tmp/work/frame_%05d.jpg".
func NewTileBuilder(patternPath, outputPath string) *TileBuilder {
	return &TileBuilder{
		patternPath: patternPath,
		outputPath:  outputPath,
		columns:     10,
		format:      command.FormatWebP,
		quality:     85,
	}
}

// SetFrameCount sets the number of frames in the sequence.
func (t *TileBuilder) SetFrameCount(count int) *TileBuilder {
	t.frameCount = count
	return t
}

// SetColumns sets the number of grid columns.
func (t *TileBuilder) SetColumns(columns int) *TileBuilder {
	t.columns = columns
	return t
}

// SetFormat sets the output image format.
func (t *TileBuilder) SetFormat(format command.Format) *TileBuilder {
	t.format = format
	return t
}

// SetQuality sets the output image quality (1-100).
func (t *TileBuilder) SetQuality(quality int) *TileBuilder {
	t.quality = quality
	return t
}

// BuildArgs constructs the FFmpeg arguments for tiling the frame sequence.
// The frames were already scaled during extraction, so the only filter left
// is the grid itself.
func (t *TileBuilder) BuildArgs() []string {
	rows := grid.Rows(t.frameCount, t.columns)

	args := []string{
		"-y",
		"-framerate", "1",
		"-i", t.patternPath,
		"-filter_complex", fmt.Sprintf("tile=%dx%d", t.columns, rows),
	}
	args = append(args, command.EncoderArgs(t.format, t.quality)...)
	args = append(args, t.outputPath, "-hide_banner", "-loglevel", "error")
	return args
}

// Run executes the tiling command.
func (t *TileBuilder) Run() error {
	cmd := exec.Command("ffmpeg", t.BuildArgs()...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg tiling failed: %w\nOutput: %s", err, string(output))
	}
	return nil
}

// DryRun returns the command that would be executed without running it.
func (t *TileBuilder) DryRun() (string, error) {
	return "ffmpeg " + strings.Join(t.BuildArgs(), " "), nil
}

// GetTaskType returns the task type identifier.
func (t *TileBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeTile
}

// GetInputPath returns the frame sequence pattern path.
func (t *TileBuilder) GetInputPath() string {
	return t.patternPath
}

// GetOutputPath returns the output file path.
func (t *TileBuilder) GetOutputPath() string {
	return t.outputPath
}
