// Package compose builds the single-pass sprite composition command: one
// FFmpeg invocation that selects the sample frames by timestamp, scales
// them, and tiles them into the sheet in a single filter graph.
package compose

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"spritegen/command"
	"spritegen/grid"
)

// MaxTimestamps is the largest sample count the single-pass strategy
// accepts. The select expression grows with every timestamp, and past this
// point the invocation becomes slower than per-frame extraction; the
// assembler switches to the streaming strategy instead.
const MaxTimestamps = 50

// ComposeBuilder implements single-pass sprite sheet composition.
type ComposeBuilder struct {
	sourcePath string
	outputPath string

	timestamps []float64

	// Grid geometry
	tileWidth  int
	tileHeight int
	columns    int

	// Output encoding
	format  command.Format
	quality int

	threads int
}

// NewComposeBuilder creates a new single-pass composition command builder.
func NewComposeBuilder(sourcePath, outputPath string) *ComposeBuilder {
	return &ComposeBuilder{
		sourcePath: sourcePath,
		outputPath: outputPath,
		tileWidth:  320,
		tileHeight: 180,
		columns:    10,
		format:     command.FormatWebP,
		quality:    85,
	}
}

// SetTimestamps sets the sample timestamps to select from the source stream.
func (c *ComposeBuilder) SetTimestamps(timestamps []float64) *ComposeBuilder {
	c.timestamps = timestamps
	return c
}

// SetTileSize sets the pixel dimensions of each tile.
func (c *ComposeBuilder) SetTileSize(width, height int) *ComposeBuilder {
	c.tileWidth = width
	c.tileHeight = height
	return c
}

// SetColumns sets the number of grid columns.
func (c *ComposeBuilder) SetColumns(columns int) *ComposeBuilder {
	c.columns = columns
	return c
}

// SetFormat sets the output image format.
func (c *ComposeBuilder) SetFormat(format command.Format) *ComposeBuilder {
	c.format = format
	return c
}

// SetQuality sets the output image quality (1-100).
func (c *ComposeBuilder) SetQuality(quality int) *ComposeBuilder {
	c.quality = quality
	return c
}

// SetThreads sets the FFmpeg thread count (0 = encoder default).
func (c *ComposeBuilder) SetThreads(threads int) *ComposeBuilder {
	c.threads = threads
	return c
}

// BuildArgs constructs the FFmpeg arguments for single-pass composition.
//
// The filter graph selects exactly the sample timestamps, scales every
// frame with lanczos resampling, and tiles them row-major. At most
// MaxTimestamps frames are selected.
func (c *ComposeBuilder) BuildArgs() []string {
	args := []string{"-y", "-i", c.sourcePath}

	args = append(args, "-filter_complex", c.buildFilterChain())
	args = append(args, command.EncoderArgs(c.format, c.quality)...)

	if c.threads > 0 {
		args = append(args, "-threads", strconv.Itoa(c.threads))
	}

	args = append(args, c.outputPath, "-hide_banner", "-loglevel", "error")
	return args
}

// buildFilterChain constructs the select/scale/tile filter graph.
func (c *ComposeBuilder) buildFilterChain() string {
	timestamps := c.timestamps
	if len(timestamps) > MaxTimestamps {
		timestamps = timestamps[:MaxTimestamps]
	}

	selects := make([]string, 0, len(timestamps))
	for _, ts := range timestamps {
		selects = append(selects, fmt.Sprintf("eq(t,%s)", strconv.FormatFloat(ts, 'f', -1, 64)))
	}

	rows := grid.Rows(len(timestamps), c.columns)
	return fmt.Sprintf("select='%s',scale=%d:%d:flags=lanczos,tile=%dx%d",
		strings.Join(selects, "+"), c.tileWidth, c.tileHeight, c.columns, rows)
}

// Run executes the composition command.
func (c *ComposeBuilder) Run() error {
	cmd := exec.Command("ffmpeg", c.BuildArgs()...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg composition failed: %w\nOutput: %s", err, string(output))
	}
	return nil
}

// DryRun returns the command that would be executed without running it.
func (c *ComposeBuilder) DryRun() (string, error) {
	return "ffmpeg " + strings.Join(c.BuildArgs(), " "), nil
}

// GetTaskType returns the task type identifier.
func (c *ComposeBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeCompose
}

// GetInputPath returns the input file path.
func (c *ComposeBuilder) GetInputPath() string {
	return c.sourcePath
}

// GetOutputPath returns the output file path.
func (c *ComposeBuilder) GetOutputPath() string {
	return c.outputPath
}
