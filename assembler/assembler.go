// Package assembler produces the sprite sheet for one video.
//
// Two strategies exist. The single-pass strategy issues one composition
// command that selects, scales, and tiles every sample frame together; it
// is only viable for small sample counts. The streaming strategy extracts
// every frame individually through a bounded worker pool and then tiles
// the extracted sequence in a second pass; it is the fallback for large
// sample counts or a failed single-pass attempt.
package assembler

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"spritegen/command"
	"spritegen/command/compose"
	"spritegen/command/extract"
	"spritegen/command/tile"
	"spritegen/ffmpeg"
	"spritegen/models"
	"spritegen/orchestrator"
)

// SinglePassLimit is the largest sample count for which the single-pass
// strategy is attempted.
const SinglePassLimit = compose.MaxTimestamps

// Options holds the sprite sheet parameters for one assembly.
type Options struct {
	TileWidth  int
	TileHeight int
	Columns    int
	Format     command.Format
	Quality    int
}

// ExtractionError indicates that extracting one frame failed during the
// streaming strategy. A single extraction failure is fatal to the whole
// assembly; no partial sprite is produced.
type ExtractionError struct {
	Index     uint
	Timestamp float64
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("frame %d (t=%.3fs) extraction failed: %v", e.Index, e.Timestamp, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// AssemblyError indicates that sprite composition failed after every
// applicable strategy was attempted.
type AssemblyError struct {
	Input string
	Err   error
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("sprite assembly failed for %s: %v", e.Input, e.Err)
}

func (e *AssemblyError) Unwrap() error {
	return e.Err
}

// Assembler orchestrates sprite sheet composition for one video at a time.
type Assembler struct {
	runner  ffmpeg.Runner
	workers int

	log        *zap.Logger
	onProgress models.ProgressCallback
}

// New creates an Assembler. workers is the available processing capacity;
// it is clamped into the pool bounds at the point of use.
func New(runner ffmpeg.Runner, workers int) *Assembler {
	return &Assembler{
		runner:  runner,
		workers: workers,
		log:     zap.NewNop(),
	}
}

// SetLogger sets the logger used for strategy decisions.
func (a *Assembler) SetLogger(log *zap.Logger) *Assembler {
	a.log = log
	return a
}

// SetProgressCallback sets a best-effort callback receiving the count of
// frames extracted so far during the streaming strategy.
func (a *Assembler) SetProgressCallback(callback models.ProgressCallback) *Assembler {
	a.onProgress = callback
	return a
}

// Assemble produces the sprite sheet at outputPath from the given sample
// timestamps.
//
// The single-pass strategy is attempted only when the sample count is
// within SinglePassLimit. A failed single-pass attempt is not retried;
// control falls through to the streaming strategy, exactly as if the
// count had been too large. If the streaming strategy also fails, no
// sprite is written and an *AssemblyError is returned.
func (a *Assembler) Assemble(sourcePath string, timestamps []float64, opts Options, outputPath string) error {
	if len(timestamps) == 0 {
		return &AssemblyError{Input: sourcePath, Err: fmt.Errorf("no sample timestamps")}
	}

	if len(timestamps) <= SinglePassLimit {
		err := a.singlePass(sourcePath, timestamps, opts, outputPath)
		if err == nil {
			return nil
		}
		a.log.Debug("single-pass composition failed, falling back to streaming",
			zap.String("input", sourcePath),
			zap.Error(err))
	}

	if err := a.streaming(sourcePath, timestamps, opts, outputPath); err != nil {
		return &AssemblyError{Input: sourcePath, Err: err}
	}
	return nil
}

// singlePass runs the one-shot select/scale/tile composition.
func (a *Assembler) singlePass(sourcePath string, timestamps []float64, opts Options, outputPath string) error {
	builder := compose.NewComposeBuilder(sourcePath, outputPath).
		SetTimestamps(timestamps).
		SetTileSize(opts.TileWidth, opts.TileHeight).
		SetColumns(opts.Columns).
		SetFormat(opts.Format).
		SetQuality(opts.Quality).
		SetThreads(orchestrator.Workers(a.workers))

	return a.runner.Run(builder)
}

// streaming extracts every frame into a scoped temporary directory through
// the worker pool, then tiles the sequence. The directory is always
// released before returning, success or failure.
func (a *Assembler) streaming(sourcePath string, timestamps []float64, opts Options, outputPath string) error {
	tmpDir, err := os.MkdirTemp("", "spritegen-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	pool := orchestrator.NewPool(orchestrator.Workers(a.workers), a.runner)
	for i, ts := range timestamps {
		frame, err := models.NewFrame(uint(i), ts, sourcePath)
		if err != nil {
			return err
		}

		builder := extract.NewExtractBuilder(frame, filepath.Join(tmpDir, extract.FrameFileName(uint(i)))).
			SetTileSize(opts.TileWidth, opts.TileHeight).
			SetQuality(opts.Quality)

		task := &orchestrator.Task{
			ID:      fmt.Sprintf("extract_%05d", i),
			Index:   uint(i),
			Command: builder,
		}
		if err := pool.AddTask(task); err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}
	}

	if a.onProgress != nil {
		pool.SetProgressCallback(func(completed, total int, task *orchestrator.Task) {
			a.onProgress(completed, total)
		})
	}

	if _, err := pool.Execute(); err != nil {
		return a.extractionError(pool, timestamps, err)
	}

	builder := tile.NewTileBuilder(filepath.Join(tmpDir, extract.FramePattern), outputPath).
		SetFrameCount(len(timestamps)).
		SetColumns(opts.Columns).
		SetFormat(opts.Format).
		SetQuality(opts.Quality)

	if err := a.runner.Run(builder); err != nil {
		return fmt.Errorf("tile composition failed: %w", err)
	}
	return nil
}

// extractionError wraps a pool failure as an *ExtractionError naming the
// first failed frame.
func (a *Assembler) extractionError(pool *orchestrator.Pool, timestamps []float64, err error) error {
	for _, task := range pool.Tasks() {
		if task.Status == orchestrator.TaskFailed {
			return &ExtractionError{
				Index:     task.Index,
				Timestamp: timestamps[task.Index],
				Err:       task.Error,
			}
		}
	}
	return err
}
