package config

// Config holds all sprite generation options
type Config struct {
	// Required fields
	Input     string `yaml:"input" env:"SPRITEGEN_INPUT"`
	OutputDir string `yaml:"output_dir" env:"SPRITEGEN_OUTPUT_DIR"`

	// Grid settings
	Columns    int `yaml:"columns" env:"SPRITEGEN_COLUMNS"`         // tiles per sheet row
	TileWidth  int `yaml:"tile_width" env:"SPRITEGEN_TILE_WIDTH"`   // pixels
	TileHeight int `yaml:"tile_height" env:"SPRITEGEN_TILE_HEIGHT"` // pixels

	// Sampling settings
	Interval int `yaml:"interval" env:"SPRITEGEN_INTERVAL"` // seconds between frames

	// Encoding settings
	Format  string `yaml:"format" env:"SPRITEGEN_FORMAT"`   // "webp", "jpeg", "png"
	Quality int    `yaml:"quality" env:"SPRITEGEN_QUALITY"` // 1-100, higher = better

	// Execution settings
	Workers int `yaml:"workers" env:"SPRITEGEN_WORKERS"` // 0 = auto-detect

	// Behavioral flags
	StrictMode bool `yaml:"strict_mode" env:"SPRITEGEN_STRICT"` // Abort the batch on the first failed video
	Verbose    bool `yaml:"verbose" env:"SPRITEGEN_VERBOSE"`    // Show detailed logs and progress
	DryRun     bool `yaml:"dry_run" env:"SPRITEGEN_DRY_RUN"`    // Show config without processing
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		// Required - must be provided by user
		Input:     "",
		OutputDir: "",

		// Grid defaults (10 columns of 320x180 tiles, a 16:9 preview size)
		Columns:    10,
		TileWidth:  320,
		TileHeight: 180,

		// One frame every 5 seconds
		Interval: 5,

		// Encoding defaults (WebP: small sheets at preview quality)
		Format:  "webp",
		Quality: 85,

		// Execution defaults
		Workers: 0, // Auto-detect CPU count

		// Behavioral defaults
		StrictMode: false, // Keep processing the remaining videos on failure
		Verbose:    false, // Quiet mode
		DryRun:     false, // Actually process
	}
}

// Copy creates a copy of the config
func (c *Config) Copy() *Config {
	copy := *c
	return &copy
}

// FormatValues returns valid output format values
func FormatValues() []string {
	return []string{"webp", "jpeg", "png"}
}
