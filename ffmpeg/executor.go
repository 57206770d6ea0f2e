// Package ffmpeg provides the execution seam between built commands and the
// external media engine. Every invocation in the pipeline goes through a
// Runner, so tests can substitute the engine without spawning processes.
package ffmpeg

import "spritegen/command"

// Runner executes a built media command.
type Runner interface {
	Run(cmd command.Command) error
}

// ExecRunner runs commands against the real ffmpeg binary via the command's
// own Run method.
type ExecRunner struct{}

// Run executes the command, blocking until it completes.
func (ExecRunner) Run(cmd command.Command) error {
	return cmd.Run()
}

// RunnerFunc adapts a plain function to the Runner interface.
type RunnerFunc func(cmd command.Command) error

// Run calls f(cmd).
func (f RunnerFunc) Run(cmd command.Command) error {
	return f(cmd)
}
