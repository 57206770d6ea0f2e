// Package command provides the core Command interface and the shared image
// encoder selection used when building FFmpeg invocations.
//
// All specialized builders (Compose, Extract, Tile) implement the Command
// interface, allowing the worker pool and the assembler to run tasks
// agnostically.
package command

// TaskType represents the type of media task.
type TaskType string

const (
	TaskTypeCompose TaskType = "compose" // Single-pass sprite composition from the source video
	TaskTypeExtract TaskType = "extract" // Single still-frame extraction at one timestamp
	TaskTypeTile    TaskType = "tile"    // Tiling of a pre-extracted frame sequence
)

// Command represents an FFmpeg command that can be built, executed, or previewed.
//
// All specialized builders (ComposeBuilder, ExtractBuilder, TileBuilder)
// implement this interface, enabling a unified execution path: the worker
// pool and the assembler hand every invocation to an ffmpeg.Runner, which
// can be substituted in tests.
//
// Example usage:
//
//	frame, _ := models.NewFrame(0, 0.5, "input.mp4")
//	cmd := extract.NewExtractBuilder(frame, "frame_00000.jpg").
//		SetTileSize(320, 180).
//		SetQuality(85)
//
//	// Preview the command
//	cmd.DryRun()
//
//	// Execute the command
//	cmd.Run()
type Command interface {
	// BuildArgs constructs and returns the FFmpeg command arguments as a slice.
	// The returned slice is suitable for exec.Command("ffmpeg", args...).
	//
	// Example return value:
	//   ["-y", "-ss", "0.5", "-i", "input.mp4", "-frames:v", "1", ..., "frame_00000.jpg"]
	BuildArgs() []string

	// Run executes the FFmpeg command using exec.Command.
	// It captures output for error reporting and blocks until the command
	// completes.
	//
	// Returns an error if the command fails to execute or returns a non-zero
	// exit code.
	Run() error

	// DryRun returns the FFmpeg command as a string without executing it.
	// Useful for debugging, logging, or generating scripts.
	DryRun() (string, error)

	// GetTaskType returns the type of task (compose, extract, tile).
	// Used for logging and task-specific handling.
	GetTaskType() TaskType

	// GetInputPath returns the primary input path for this command.
	// Used for validation, logging, and error messages.
	GetInputPath() string

	// GetOutputPath returns the output file path for this command.
	// Used for result tracking and file management.
	GetOutputPath() string
}
