package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RawOutput represents a box for displaying raw protocol output: the XML
// request/response bodies exchanged with a controller. Used in verbose mode
// to show exactly what went out on the wire and what came back.
type RawOutput struct {
	Title    string   // e.g., "Raw Output"
	Content  string   // The raw XML (or other wire text)
	Lines    []string // Parsed output lines (for filtering)
	Width    int      // Terminal width
	MaxLines int      // Maximum lines to display (0 = unlimited)
}

// NewRawOutput creates a new raw output box.
func NewRawOutput(content string) *RawOutput {
	return &RawOutput{
		Title:    "Raw Output",
		Content:  content,
		Lines:    strings.Split(content, "\n"),
		Width:    GetTerminalWidth(),
		MaxLines: 0,
	}
}

// SetWidth sets the terminal width for responsive rendering.
func (r *RawOutput) SetWidth(width int) *RawOutput {
	r.Width = width
	return r
}

// SetTitle sets a custom title for the box.
func (r *RawOutput) SetTitle(title string) *RawOutput {
	r.Title = title
	return r
}

// SetMaxLines limits the number of lines displayed.
func (r *RawOutput) SetMaxLines(max int) *RawOutput {
	r.MaxLines = max
	return r
}

// FilterLines filters the output to only show lines matching the given
// substrings. Useful for isolating a single element (e.g. "<Backyard") out
// of a full telemetry document.
func (r *RawOutput) FilterLines(patterns ...string) *RawOutput {
	var filtered []string
	for _, line := range r.Lines {
		for _, pattern := range patterns {
			if strings.Contains(line, pattern) {
				filtered = append(filtered, line)
				break
			}
		}
	}
	r.Lines = filtered
	r.Content = strings.Join(filtered, "\n")
	return r
}

// FilterPrefix filters to only lines starting with the given prefixes.
func (r *RawOutput) FilterPrefix(prefixes ...string) *RawOutput {
	var filtered []string
	for _, line := range r.Lines {
		for _, prefix := range prefixes {
			if strings.HasPrefix(strings.TrimSpace(line), prefix) {
				filtered = append(filtered, line)
				break
			}
		}
	}
	r.Lines = filtered
	r.Content = strings.Join(filtered, "\n")
	return r
}

// Render returns the styled raw output box as a string.
func (r *RawOutput) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	lines := r.Lines
	if r.MaxLines > 0 && len(lines) > r.MaxLines {
		lines = lines[:r.MaxLines]
		lines = append(lines, "... (output truncated)")
	}

	titleStyled := RawOutputTitleStyle.Render(r.Title)
	contentStyled := RawOutputContentStyle.Render(strings.Join(lines, "\n"))

	inner := lipgloss.JoinVertical(lipgloss.Left, titleStyled, "", contentStyled)

	boxWidth := width - 4
	if boxWidth < 40 {
		boxWidth = 40
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(boxWidth).
		Padding(0, 1).
		MarginLeft(2).
		Render(inner)
}

// String implements fmt.Stringer.
func (r *RawOutput) String() string {
	return r.Render()
}

// --- Convenience functions ---

// RenderRawOutput renders a raw output box with the given content.
func RenderRawOutput(content string) string {
	return NewRawOutput(content).Render()
}
