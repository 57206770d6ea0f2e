package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	content := `
input: /videos/movie.mp4
output_dir: /previews
columns: 8
tile_width: 256
tile_height: 144
interval: 2
format: jpeg
quality: 70
workers: 6
strict_mode: true
`
	path := filepath.Join(t.TempDir(), "spritegen.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}

	if cfg.Input != "/videos/movie.mp4" {
		t.Errorf("Expected input '/videos/movie.mp4', got '%s'", cfg.Input)
	}
	if cfg.OutputDir != "/previews" {
		t.Errorf("Expected output dir '/previews', got '%s'", cfg.OutputDir)
	}
	if cfg.Columns != 8 {
		t.Errorf("Expected 8 columns, got %d", cfg.Columns)
	}
	if cfg.TileWidth != 256 || cfg.TileHeight != 144 {
		t.Errorf("Expected 256x144 tiles, got %dx%d", cfg.TileWidth, cfg.TileHeight)
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
	if !cfg.StrictMode {
		t.Error("Expected strict mode true")
	}
}

func TestLoadConfigFile_PartialKeepsDefaults(t *testing.T) {
	content := `
input: /videos/movie.mp4
interval: 10
`
	path := filepath.Join(t.TempDir(), "spritegen.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}

	if cfg.Interval != 10 {
		t.Errorf("Expected interval 10, got %d", cfg.Interval)
	}
	// Untouched fields keep their defaults
	if cfg.Columns != 10 {
		t.Errorf("Expected default columns 10, got %d", cfg.Columns)
	}
	if cfg.Format != "webp" {
		t.Errorf("Expected default format 'webp', got '%s'", cfg.Format)
	}
}

func TestLoadConfigFile_MissingFile(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing config file, got nil")
	}
}

func TestLoadConfigFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("columns: [not a number"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := LoadConfigFile(path)
	if err == nil {
		t.Fatal("Expected error for invalid YAML, got nil")
	}
}

func TestSaveConfigFile_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = "/videos"
	cfg.OutputDir = "/previews"
	cfg.Columns = 12
	cfg.Format = "png"

	path := filepath.Join(t.TempDir(), "nested", "spritegen.yaml")
	if err := SaveConfigFile(cfg, path); err != nil {
		t.Fatalf("SaveConfigFile failed: %v", err)
	}

	loaded, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}

	if loaded.Input != cfg.Input {
		t.Errorf("Expected input '%s', got '%s'", cfg.Input, loaded.Input)
	}
	if loaded.Columns != cfg.Columns {
		t.Errorf("Expected columns %d, got %d", cfg.Columns, loaded.Columns)
	}
	if loaded.Format != cfg.Format {
		t.Errorf("Expected format '%s', got '%s'", cfg.Format, loaded.Format)
	}
}
