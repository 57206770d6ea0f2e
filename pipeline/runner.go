package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"spritegen/assembler"
	"spritegen/command"
	"spritegen/config"
	"spritegen/ffmpeg"
	"spritegen/ffprobe"
	"spritegen/models"
	"spritegen/sampling"
	"spritegen/vtt"
)

// Prober reports the duration of a media file in seconds.
type Prober interface {
	Probe(sourcePath string) (float64, error)
}

// ProberFunc adapts a plain function to the Prober interface.
type ProberFunc func(sourcePath string) (float64, error)

func (f ProberFunc) Probe(sourcePath string) (float64, error) {
	return f(sourcePath)
}

// Result pairs one input video with the outcome of processing it. Report is
// set on success, Err on failure, never both.
type Result struct {
	Input  string
	Report *models.Report
	Err    error
}

// Pipeline drives the full sprite generation flow for one or more videos:
// discovery, duration probing, frame sampling, sheet assembly and cue track
// writing.
type Pipeline struct {
	cfg    *config.Config
	log    *zap.Logger
	prober Prober
	asm    *assembler.Assembler
}

// New creates a Pipeline wired to the real ffprobe and ffmpeg binaries.
func New(cfg *config.Config, log *zap.Logger) *Pipeline {
	asm := assembler.New(&ffmpeg.ExecRunner{}, cfg.Workers).SetLogger(log)
	return &Pipeline{
		cfg:    cfg,
		log:    log,
		prober: ProberFunc(ffprobe.Probe),
		asm:    asm,
	}
}

// SetProber replaces the duration prober and returns the pipeline.
func (p *Pipeline) SetProber(prober Prober) *Pipeline {
	p.prober = prober
	return p
}

// SetAssembler replaces the sheet assembler and returns the pipeline.
func (p *Pipeline) SetAssembler(asm *assembler.Assembler) *Pipeline {
	p.asm = asm
	return p
}

// Process generates the sprite sheet and cue track for a single video and
// returns a summary of what was produced.
func (p *Pipeline) Process(input string) (*models.Report, error) {
	start := time.Now()

	duration, err := p.prober.Probe(input)
	if err != nil {
		return nil, err
	}

	timestamps := sampling.Timestamps(duration, p.cfg.Interval)
	p.log.Debug("sampled timestamps",
		zap.String("input", input),
		zap.Float64("duration", duration),
		zap.Int("count", len(timestamps)))

	if err := os.MkdirAll(p.cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	format, err := command.ParseFormat(p.cfg.Format)
	if err != nil {
		return nil, err
	}

	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	spriteName := fmt.Sprintf("%s_sprite.%s", stem, format.Extension())
	spritePath := filepath.Join(p.cfg.OutputDir, spriteName)
	trackPath := filepath.Join(p.cfg.OutputDir, stem+"_sprite.vtt")

	opts := assembler.Options{
		TileWidth:  p.cfg.TileWidth,
		TileHeight: p.cfg.TileHeight,
		Columns:    p.cfg.Columns,
		Format:     format,
		Quality:    p.cfg.Quality,
	}

	if p.cfg.Verbose {
		var bar *progressbar.ProgressBar
		p.asm.SetProgressCallback(func(completed, total int) {
			if bar == nil {
				bar = progressbar.Default(int64(total), "extracting "+base)
			}
			_ = bar.Set(completed)
		})
	}

	if err := p.asm.Assemble(input, timestamps, opts, spritePath); err != nil {
		return nil, err
	}

	if err := vtt.Write(trackPath, timestamps, p.cfg.Columns, p.cfg.TileWidth, p.cfg.TileHeight, spriteName); err != nil {
		return nil, err
	}

	var sizeMB float64
	if info, err := os.Stat(spritePath); err == nil {
		sizeMB = float64(info.Size()) / (1024 * 1024)
	}

	report := &models.Report{
		Input:        input,
		FrameCount:   len(timestamps),
		OutputSizeMB: sizeMB,
		Elapsed:      time.Since(start),
	}

	p.log.Info("sprite sheet generated",
		zap.String("input", input),
		zap.String("sprite", spritePath),
		zap.String("track", trackPath),
		zap.Int("frames", report.FrameCount),
		zap.Float64("size_mb", report.OutputSizeMB),
		zap.Duration("elapsed", report.Elapsed))

	return report, nil
}

// Run discovers the videos behind the input path and processes each one in
// turn. A failing video does not stop the batch unless strict mode is on;
// every video's outcome is captured in the returned slice.
func (p *Pipeline) Run(input string) ([]Result, error) {
	videos, err := Discover(input)
	if err != nil {
		return nil, err
	}

	p.log.Info("discovered videos", zap.Int("count", len(videos)))

	results := make([]Result, 0, len(videos))
	for _, video := range videos {
		report, err := p.Process(video)
		results = append(results, Result{Input: video, Report: report, Err: err})
		if err != nil {
			p.log.Error("processing failed", zap.String("input", video), zap.Error(err))
			if p.cfg.StrictMode {
				return results, fmt.Errorf("aborting after failure on %s: %w", video, err)
			}
		}
	}

	return results, nil
}
