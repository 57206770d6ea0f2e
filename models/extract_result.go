package models

import (
	"fmt"
	"strings"
)

// ExtractResult represents the outcome of extracting a single frame.
//
// This structure is used to track both successful and failed extraction
// operations. It enforces logical consistency: successful results must
// have an output path and no error, while failed results must have an
// error and no output path.
//
// Use NewExtractResultSuccess or NewExtractResultFailure to create validated instances.
type ExtractResult struct {
	Index      uint   `json:"index"`
	OutputPath string `json:"output_path"`
	Success    bool   `json:"success"`
	Error      error  `json:"error"`
}

// NewExtractResultSuccess creates a successful ExtractResult with validation.
//
// Returns an error if outputPath is empty or whitespace-only.
//
// Example:
//
//	result, err := models.NewExtractResultSuccess(1, "/tmp/frames/frame_00001.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewExtractResultSuccess(index uint, outputPath string) (*ExtractResult, error) {
	er := &ExtractResult{
		Index:      index,
		OutputPath: outputPath,
		Success:    true,
		Error:      nil,
	}
	if err := er.Validate(); err != nil {
		return nil, fmt.Errorf("invalid extract result: %w", err)
	}
	return er, nil
}

// NewExtractResultFailure creates a failed ExtractResult with validation.
//
// The error parameter must not be nil.
func NewExtractResultFailure(index uint, extErr error) (*ExtractResult, error) {
	if extErr == nil {
		return nil, fmt.Errorf("invalid extract result: error cannot be nil for failed result")
	}
	er := &ExtractResult{
		Index:      index,
		OutputPath: "",
		Success:    false,
		Error:      extErr,
	}
	return er, nil
}

// Validate checks if the ExtractResult has consistent state.
//
// Returns an error if:
//   - Success is true but Error is not nil (inconsistent)
//   - Success is false but Error is nil (must have error reason)
//   - Success is true but OutputPath is empty (must have output)
//   - Success is false but OutputPath is set (shouldn't have output)
//
// This enforces the invariant that successful results have outputs and
// failed results have errors, making result processing more reliable.
func (er *ExtractResult) Validate() error {
	if er.Success && er.Error != nil {
		return fmt.Errorf("inconsistent state: Success is true but Error is not nil")
	}

	if !er.Success && er.Error == nil {
		return fmt.Errorf("failed result must have an error")
	}

	if er.Success {
		if strings.TrimSpace(er.OutputPath) == "" {
			return fmt.Errorf("output_path cannot be empty for successful result")
		}
	}

	if !er.Success && strings.TrimSpace(er.OutputPath) != "" {
		return fmt.Errorf("failed result should not have output_path")
	}

	return nil
}
