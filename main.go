package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"spritegen/config"
	"spritegen/logging"
	"spritegen/pipeline"
)

func main() {
	// Step 1: Load configuration (CLI flags > environment > config file > defaults)
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Step 2: Handle dry-run mode
	if cfg.DryRun {
		fmt.Println("═══════════════════════════════════════════════════════════")
		fmt.Println("                      DRY RUN MODE")
		fmt.Println("═══════════════════════════════════════════════════════════")
		cfg.PrintConfig()
		fmt.Println("\n✓ Configuration is valid. No videos will be processed.")
		return
	}

	// Step 3: Set up structured logging
	logger, err := logging.NewLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Logger setup failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Step 4: Run the sprite generation pipeline
	startTime := time.Now()

	fmt.Println("╔════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                  SPRITEGEN - PIPELINE START                    ║")
	fmt.Println("╚════════════════════════════════════════════════════════════════╝")
	fmt.Printf("Input:      %s\n", cfg.Input)
	fmt.Printf("Output Dir: %s\n", cfg.OutputDir)
	fmt.Printf("Workers:    %d\n", cfg.Workers)
	fmt.Println()

	results, err := pipeline.New(cfg, logger).Run(cfg.Input)
	if err != nil {
		var notFound *pipeline.InputNotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "❌ %v\n", notFound)
			os.Exit(1)
		}
		if !cfg.StrictMode {
			fmt.Fprintf(os.Stderr, "\n❌ Pipeline error: %v\n", err)
			os.Exit(1)
		}
		// Strict mode aborts mid-batch; the partial results below still
		// show what was attempted before the failure.
		fmt.Fprintf(os.Stderr, "\n⚠️  %v\n", err)
	}

	// Step 5: Final report
	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}

	elapsed := time.Since(startTime)

	fmt.Println("═══════════════════════════════════════════════════════════")
	if failed == 0 {
		fmt.Println("                     ✅ SUCCESS!")
	} else {
		fmt.Printf("            ⚠️  %d of %d videos failed\n", failed, len(results))
	}
	fmt.Println("═══════════════════════════════════════════════════════════")
	for _, result := range results {
		if result.Err != nil {
			fmt.Printf("  ✗ %s: %v\n", result.Input, result.Err)
			continue
		}
		fmt.Printf("  ✓ %s\n", result.Report)
	}
	fmt.Printf("\n  Videos:      %d\n", len(results))
	fmt.Printf("  Total time:  %.2fs\n", elapsed.Seconds())
	fmt.Println("═══════════════════════════════════════════════════════════")

	if failed > 0 {
		os.Exit(1)
	}
}
