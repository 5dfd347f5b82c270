package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// CommandRunnerConfig holds configuration for a single CLI command
// execution against a controller.
type CommandRunnerConfig struct {
	Title      string            // Command title (e.g., "Set Filter Speed")
	Command    string            // Full command (e.g., "omni-cli equipment set-speed")
	Params     map[string]string // Parameters to display in header
	TotalSteps int               // Total number of steps (for progress), 0 for single-step commands
	StepNames  []string          // Names for each step
	Verbose    bool              // Whether to show the raw protocol exchange
	Output     io.Writer         // Output writer (default: os.Stdout)
}

// CommandRunner orchestrates the UI for a single controller command: it
// manages the header -> progress -> result flow and provides a callback
// for reporting progress through multi-step commands.
type CommandRunner struct {
	config    CommandRunnerConfig
	header    *Header
	progress  *Progress
	output    io.Writer
	rawOutput string
	startTime time.Time
	width     int
}

// NewCommandRunner creates a new runner for a single controller command.
func NewCommandRunner(config CommandRunnerConfig) *CommandRunner {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	width := GetTerminalWidth()

	header := NewHeader(config.Title, config.Command, config.Params)
	header.SetWidth(width)

	var progress *Progress
	if config.TotalSteps > 0 {
		progress = NewProgress("", config.TotalSteps)
		progress.SetWidth(width)
		if len(config.StepNames) > 0 {
			progress.SetStepNames(config.StepNames)
		}
	}

	return &CommandRunner{
		config:   config,
		header:   header,
		progress: progress,
		output:   config.Output,
		width:    width,
	}
}

// CommandOperation is the function signature for the actual controller
// call. The operation receives a StepCallback to report progress.
type CommandOperation func(ctx context.Context, onStep StepCallback) error

// Run executes the controller operation with UI updates: it displays the
// header, tracks progress, and shows the result.
func (r *CommandRunner) Run(ctx context.Context, operation CommandOperation) error {
	r.startTime = time.Now()

	_, _ = fmt.Fprintln(r.output, r.header.Render())
	_, _ = fmt.Fprintln(r.output)

	stepCallback := r.createStepCallback()

	err := operation(ctx, stepCallback)
	duration := time.Since(r.startTime)

	if err != nil {
		r.printFailure(err, duration)
	} else {
		r.printSuccess(duration)
	}

	return err
}

// RunWithResult executes the controller operation and allows custom result
// handling, returning the detail fields that were displayed.
func (r *CommandRunner) RunWithResult(ctx context.Context, operation func(ctx context.Context, onStep StepCallback) (map[string]string, error)) (map[string]string, error) {
	r.startTime = time.Now()

	_, _ = fmt.Fprintln(r.output, r.header.Render())
	_, _ = fmt.Fprintln(r.output)

	stepCallback := r.createStepCallback()

	details, err := operation(ctx, stepCallback)
	duration := time.Since(r.startTime)

	if err != nil {
		r.printFailure(err, duration)
	} else {
		r.printSuccessWithDetails(details, duration)
	}

	return details, err
}

// SetRawOutput stores the raw protocol exchange for verbose display.
func (r *CommandRunner) SetRawOutput(output string) {
	r.rawOutput = output
}

func (r *CommandRunner) createStepCallback() StepCallback {
	return func(stepNumber int, name string, status StepStatus, message string) {
		if r.progress == nil {
			return
		}

		if name != "" && stepNumber > 0 && stepNumber <= len(r.progress.Steps) {
			r.progress.Steps[stepNumber-1].Name = name
		}

		r.progress.UpdateStep(stepNumber, status, message)

		if status == StepComplete || status == StepFailed || status == StepSkipped {
			step := r.progress.Steps[stepNumber-1]
			_, _ = fmt.Fprintln(r.output, r.progress.renderStepLine(step))
		} else if status == StepRunning {
			step := r.progress.Steps[stepNumber-1]
			_, _ = fmt.Fprint(r.output, r.progress.renderStepLine(step)+"\r")
		}
	}
}

func (r *CommandRunner) printSuccess(duration time.Duration) {
	_, _ = fmt.Fprintln(r.output)

	details := map[string]string{
		"Duration": duration.Round(time.Millisecond).String(),
	}

	result := NewSuccessResult(r.config.Title+" complete", details)
	result.SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())

	if r.config.Verbose && r.rawOutput != "" {
		_, _ = fmt.Fprintln(r.output)
		raw := NewRawOutput(r.rawOutput)
		raw.SetWidth(r.width)
		_, _ = fmt.Fprintln(r.output, raw.Render())
	}
}

func (r *CommandRunner) printSuccessWithDetails(details map[string]string, duration time.Duration) {
	_, _ = fmt.Fprintln(r.output)

	if details == nil {
		details = make(map[string]string)
	}
	details["Duration"] = duration.Round(time.Millisecond).String()

	result := NewSuccessResult(r.config.Title+" complete", details)
	result.SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())

	if r.config.Verbose && r.rawOutput != "" {
		_, _ = fmt.Fprintln(r.output)
		raw := NewRawOutput(r.rawOutput)
		raw.SetWidth(r.width)
		_, _ = fmt.Fprintln(r.output, raw.Render())
	}
}

func (r *CommandRunner) printFailure(err error, duration time.Duration) {
	_, _ = fmt.Fprintln(r.output)

	troubleshooting := []string{
		"Verify the controller is powered on and reachable on the network",
		"Check that the configured host and port match the controller's MSP interface",
		"Increase --timeout if the controller is slow to respond",
		"Set OMNILOGIC_LOG_LEVEL=debug to log protocol activity",
	}

	result := NewFailureResult(r.config.Title+" failed", err, troubleshooting)
	result.SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())

	if r.config.Verbose && r.rawOutput != "" {
		_, _ = fmt.Fprintln(r.output)
		raw := NewRawOutput(r.rawOutput)
		raw.SetWidth(r.width)
		_, _ = fmt.Fprintln(r.output, raw.Render())
	}
}

// --- Simple helper functions for commands that don't need a full CommandRunner ---

// PrintCommandHeader prints a styled command header.
func PrintCommandHeader(title, command string, params map[string]string) {
	width := GetTerminalWidth()
	header := NewHeader(title, command, params)
	header.SetWidth(width)
	fmt.Println(header.Render())
	fmt.Println()
}

// PrintSuccess prints a styled success result.
func PrintSuccess(title string, details map[string]string) {
	width := GetTerminalWidth()
	result := NewSuccessResult(title, details)
	result.SetWidth(width)
	fmt.Println()
	fmt.Println(result.Render())
}

// PrintFailure prints a styled failure result.
func PrintFailure(title string, err error, troubleshooting []string) {
	width := GetTerminalWidth()
	result := NewFailureResult(title, err, troubleshooting)
	result.SetWidth(width)
	fmt.Println()
	fmt.Println(result.Render())
}

// PrintWarning prints a styled warning result.
func PrintWarning(title string, details map[string]string) {
	width := GetTerminalWidth()
	result := NewWarningResult(title, details)
	result.SetWidth(width)
	fmt.Println()
	fmt.Println(result.Render())
}

// PrintRawOutput prints a styled raw protocol output box (for verbose mode).
func PrintRawOutput(output string) {
	width := GetTerminalWidth()
	raw := NewRawOutput(output)
	raw.SetWidth(width)
	fmt.Println()
	fmt.Println(raw.Render())
}

// PrintPleaseWait prints a styled "please wait" message for long-running
// operations. The message parameter should describe what's happening, e.g.,
// "Waiting for controller response". The duration hint helps set user
// expectations, e.g., "up to 10 seconds".
func PrintPleaseWait(message string, durationHint string) {
	style := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		PaddingLeft(2)

	hintStyle := lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	line := style.Render("… " + message)
	if durationHint != "" {
		line += " " + hintStyle.Render("("+durationHint+")")
	}
	line += style.Render("...")

	fmt.Println()
	fmt.Println(line)
	fmt.Println()
}
