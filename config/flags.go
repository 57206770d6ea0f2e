package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// MergeFromFlags parses command-line flags and overrides config values
func (c *Config) MergeFromFlags() error {
	// Define flags
	fs := flag.NewFlagSet("spritegen", flag.ContinueOnError)
	fs.Usage = printUsage

	// Required fields
	input := fs.String("input", "", "Input video file or directory (required)")
	outputDir := fs.String("output-dir", "", "Directory for generated sprites and cue tracks (required)")

	// Config file override (handled by LoadConfig before this function is called)
	_ = fs.String("config", "", "Path to config file (default: search standard locations)")

	// Format shortcuts
	webp := fs.Bool("webp", false, "Encode sprite sheets as WebP (default)")
	jpeg := fs.Bool("jpeg", false, "Encode sprite sheets as JPEG")
	png := fs.Bool("png", false, "Encode sprite sheets as lossless PNG")

	// Grid settings
	columns := fs.Int("columns", -1, "Tiles per sheet row (default: from config)")
	tileWidth := fs.Int("tile-width", -1, "Tile width in pixels (default: from config)")
	tileHeight := fs.Int("tile-height", -1, "Tile height in pixels (default: from config)")

	// Sampling settings
	interval := fs.Int("interval", -1, "Seconds between sampled frames (default: from config)")

	// Encoding settings
	format := fs.String("format", "", "Sheet format: webp, jpeg, png (default: from config)")
	quality := fs.Int("quality", -1, "Encoding quality 1-100 (default: from config)")

	// Execution settings
	workers := fs.Int("workers", -1, "Number of parallel workers (0 = auto-detect, default: from config)")

	// Behavioral flags
	strict := fs.Bool("strict", false, "Abort the batch when a video fails")
	noStrict := fs.Bool("no-strict", false, "Keep processing remaining videos on failure")
	verbose := fs.Bool("verbose", false, "Enable verbose logging")
	dryRun := fs.Bool("dry-run", false, "Show configuration without processing")

	// Parse flags
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	// Override with flag values (only if explicitly set)
	if *input != "" {
		c.Input = *input
	}
	if *outputDir != "" {
		c.OutputDir = *outputDir
	}

	// Handle format shortcuts
	if *webp {
		c.Format = "webp"
	} else if *jpeg {
		c.Format = "jpeg"
	} else if *png {
		c.Format = "png"
	} else if *format != "" {
		c.Format = *format
	}

	// Grid settings (only override if explicitly set, -1 means not set)
	if *columns > 0 {
		c.Columns = *columns
	}
	if *tileWidth > 0 {
		c.TileWidth = *tileWidth
	}
	if *tileHeight > 0 {
		c.TileHeight = *tileHeight
	}

	// Sampling settings
	if *interval > 0 {
		c.Interval = *interval
	}

	// Encoding settings
	if *quality > 0 {
		c.Quality = *quality
	}

	// Execution settings
	if *workers >= 0 {
		c.Workers = *workers
	}

	// Behavioral flags
	if *strict {
		c.StrictMode = true
	}
	if *noStrict {
		c.StrictMode = false
	}
	if *verbose {
		c.Verbose = true
	}
	if *dryRun {
		c.DryRun = true
	}

	return nil
}

// printUsage prints help text
func printUsage() {
	fmt.Fprintf(os.Stderr, `spritegen - Scrub-preview sprite sheets and WebVTT cue tracks

USAGE:
  spritegen -input PATH -output-dir DIR [OPTIONS]

REQUIRED FLAGS:
  -input string
        Input video file or directory of videos (required)
  -output-dir string
        Directory for generated sprites and cue tracks (required)

CONFIGURATION:
  -config string
        Path to config file (default: search ./spritegen.yaml, ~/.spritegen/config.yaml, /etc/spritegen/config.yaml)

SHEET FORMAT:
  --webp
        Encode sprite sheets as WebP (default)
  --jpeg
        Encode sprite sheets as JPEG
  --png
        Encode sprite sheets as lossless PNG
  -format string
        Sheet format: webp, jpeg, png

GRID SETTINGS:
  -columns int
        Tiles per sheet row (default: 10)
  -tile-width int
        Tile width in pixels (default: 320)
  -tile-height int
        Tile height in pixels (default: 180)

SAMPLING SETTINGS:
  -interval int
        Seconds between sampled frames (default: 5)

ENCODING SETTINGS:
  -quality int
        Encoding quality 1-100, higher = better (default: 85)

EXECUTION SETTINGS:
  -workers int
        Number of parallel extraction workers (0 = auto-detect CPU count) (default: 0)

BEHAVIORAL FLAGS:
  --strict
        Abort the batch when a video fails
  --no-strict
        Keep processing remaining videos on failure (default)
  --verbose
        Enable verbose logging and a frame-extraction progress bar
  --dry-run
        Show effective configuration without processing

EXAMPLES:
  # Single video with defaults
  spritegen -input movie.mp4 -output-dir previews/

  # Whole directory as JPEG, denser sampling
  spritegen -input videos/ -output-dir previews/ --jpeg -interval 2

  # Fixed worker count, abort on first failure
  spritegen -input videos/ -output-dir previews/ -workers 4 --strict

  # Show effective configuration
  spritegen -input movie.mp4 -output-dir previews/ --dry-run

CONFIGURATION FILES:
  Config files are searched in order:
    1. ./spritegen.yaml
    2. ~/.spritegen/config.yaml
    3. /etc/spritegen/config.yaml

  Priority: CLI flags > SPRITEGEN_* environment > Config file > Defaults

`)
}

// PrintConfig prints the effective configuration
func (c *Config) PrintConfig() {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("                 Effective Configuration                  ")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("Input:       %s\n", c.Input)
	fmt.Printf("Output Dir:  %s\n", c.OutputDir)
	fmt.Printf("Workers:     %d\n", c.Workers)

	fmt.Println("\nGrid Settings:")
	fmt.Printf("  Columns:     %d\n", c.Columns)
	fmt.Printf("  Tile Size:   %dx%d\n", c.TileWidth, c.TileHeight)
	fmt.Printf("  Interval:    %d seconds\n", c.Interval)

	fmt.Println("\nEncoding Settings:")
	fmt.Printf("  Format:      %s\n", strings.ToLower(c.Format))
	fmt.Printf("  Quality:     %d\n", c.Quality)

	fmt.Println("\nBehavioral Flags:")
	fmt.Printf("  Strict Mode: %v\n", c.StrictMode)
	fmt.Printf("  Verbose:     %v\n", c.Verbose)
	fmt.Println("═══════════════════════════════════════════════════════════")
}
