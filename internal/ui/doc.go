// Package ui provides terminal UI components for the omni-cli CLI and the
// omni-monitor live dashboard.
//
// This package uses Bubble Tea and Lipgloss to render polished terminal
// output. Most commands follow a "run once and exit" pattern - they render
// output compellingly but don't require user interaction. omni-monitor is
// the exception: it runs Bubble Tea as a genuinely interactive program that
// redraws on every telemetry poll.
//
// # Architecture
//
// The UI package provides four main component types:
//
//   - Header: Command banner showing operation name and parameters
//   - Progress: Progress bar with step list showing real-time status
//   - Result: Success/failure boxes with styled information
//   - RawOutput: Raw protocol (XML request/response) box for verbose mode
//
// These components are orchestrated by the CommandRunner, which manages the
// header -> progress -> result flow for a single controller command.
//
// # Usage Pattern
//
// CLI commands use this package by:
//
//  1. Creating a CommandRunner with command metadata
//  2. Calling Run() with their operation function
//  3. The operation reports progress via a step callback
//  4. CommandRunner handles all UI rendering automatically
//
// Example:
//
//	runner := ui.NewCommandRunner(ui.CommandRunnerConfig{
//	    Title:   "Set Filter Speed",
//	    Command: "omni-cli equipment set-speed",
//	    Params:  map[string]string{"Controller": "192.168.1.50:10444", "Speed": "75%"},
//	    Verbose: verbose,
//	})
//
//	err := runner.Run(ctx, func(ctx context.Context, onStep ui.StepCallback) error {
//	    return client.SetFilterSpeed(ctx, poolID, equipmentID, 75)
//	})
//
// # Logging Integration
//
// This package expects logging to be controlled the same way as the rest of
// the module, via internal/logging. When the configured level suppresses
// info output, zap stays quiet so the curated UI output renders cleanly.
//
// # Verbose Mode
//
// When Verbose is set, CommandRunner shows a RawOutput box after the
// result holding whatever text was stored with SetRawOutput. The
// omni-cli commands store none, so on them --verbose shows no raw
// exchange.
package ui
