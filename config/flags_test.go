package config

import (
	"os"
	"testing"
)

func TestMergeFromFlags_RequiredFlags(t *testing.T) {
	os.Args = []string{"spritegen", "-input", "movie.mp4", "-output-dir", "previews"}

	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags(); err != nil {
		t.Fatalf("Expected no error with required flags, got: %v", err)
	}

	if cfg.Input != "movie.mp4" {
		t.Errorf("Expected input 'movie.mp4', got '%s'", cfg.Input)
	}
	if cfg.OutputDir != "previews" {
		t.Errorf("Expected output dir 'previews', got '%s'", cfg.OutputDir)
	}
}

func TestMergeFromFlags_MissingInput(t *testing.T) {
	// MergeFromFlags doesn't validate, but input should remain empty
	os.Args = []string{"spritegen", "-output-dir", "previews"}

	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Validation should fail
	if err := cfg.Validate(); err == nil {
		t.Fatal("Expected validation error for missing input, got nil")
	}
}

func TestMergeFromFlags_AllFlags(t *testing.T) {
	os.Args = []string{
		"spritegen",
		"-input", "videos",
		"-output-dir", "previews",
		"-columns", "8",
		"-tile-width", "256",
		"-tile-height", "144",
		"-interval", "2",
		"-format", "jpeg",
		"-quality", "70",
		"-workers", "12",
		"-strict",
		"-verbose",
	}

	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Input != "videos" {
		t.Errorf("Expected input 'videos', got '%s'", cfg.Input)
	}
	if cfg.OutputDir != "previews" {
		t.Errorf("Expected output dir 'previews', got '%s'", cfg.OutputDir)
	}
	if cfg.Columns != 8 {
		t.Errorf("Expected columns 8, got %d", cfg.Columns)
	}
	if cfg.TileWidth != 256 {
		t.Errorf("Expected tile width 256, got %d", cfg.TileWidth)
	}
	if cfg.TileHeight != 144 {
		t.Errorf("Expected tile height 144, got %d", cfg.TileHeight)
	}
	if cfg.Interval != 2 {
		t.Errorf("Expected interval 2, got %d", cfg.Interval)
	}
	if cfg.Format != "jpeg" {
		t.Errorf("Expected format 'jpeg', got '%s'", cfg.Format)
	}
	if cfg.Quality != 70 {
		t.Errorf("Expected quality 70, got %d", cfg.Quality)
	}
	if cfg.Workers != 12 {
		t.Errorf("Expected workers 12, got %d", cfg.Workers)
	}
	if !cfg.StrictMode {
		t.Error("Expected strict mode true, got false")
	}
	if !cfg.Verbose {
		t.Error("Expected verbose true, got false")
	}
}

func TestMergeFromFlags_FormatShortcuts(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "WebP",
			args:     []string{"spritegen", "-input", "movie.mp4", "-output-dir", "previews", "-webp"},
			expected: "webp",
		},
		{
			name:     "JPEG",
			args:     []string{"spritegen", "-input", "movie.mp4", "-output-dir", "previews", "-jpeg"},
			expected: "jpeg",
		},
		{
			name:     "PNG",
			args:     []string{"spritegen", "-input", "movie.mp4", "-output-dir", "previews", "-png"},
			expected: "png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := DefaultConfig()
			if err := cfg.MergeFromFlags(); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if cfg.Format != tt.expected {
				t.Errorf("Expected format '%s', got '%s'", tt.expected, cfg.Format)
			}
		})
	}
}

func TestMergeFromFlags_NoStrictOverridesConfig(t *testing.T) {
	os.Args = []string{"spritegen", "-input", "movie.mp4", "-output-dir", "previews", "-no-strict"}

	cfg := DefaultConfig()
	cfg.StrictMode = true // as if set from a config file

	if err := cfg.MergeFromFlags(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.StrictMode {
		t.Error("Expected -no-strict to disable strict mode")
	}
}

func TestMergeFromFlags_DryRun(t *testing.T) {
	os.Args = []string{"spritegen", "-input", "movie.mp4", "-output-dir", "previews", "-dry-run"}

	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !cfg.DryRun {
		t.Error("Expected dry-run true, got false")
	}
}

func TestMergeFromFlags_PartialOverride(t *testing.T) {
	os.Args = []string{
		"spritegen",
		"-input", "movie.mp4",
		"-output-dir", "previews",
		"-workers", "6",
	}

	cfg := DefaultConfig()
	originalFormat := cfg.Format // Should remain unchanged

	if err := cfg.MergeFromFlags(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Workers != 6 {
		t.Errorf("Expected workers 6, got %d", cfg.Workers)
	}
	if cfg.Format != originalFormat {
		t.Errorf("Format should not have changed, expected '%s', got '%s'", originalFormat, cfg.Format)
	}
}
