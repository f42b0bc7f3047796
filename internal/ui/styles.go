package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Layout constants - single source of truth for all viewport dimensions
const (
	MinViewportWidth  = 100
	MaxViewportWidth  = 140
	DefaultWidth      = 100 // Used when terminal size is unknown
	DefaultHeight     = 30
	DefaultTableRows  = 12 // one remote page fits without scrolling
	FooterBoxOverhead = 4  // footer box (3 lines) + spacing line
)

// Layout holds computed dimensions for the current terminal size
type Layout struct {
	ViewportWidth  int // clamped terminal width
	ViewportHeight int // terminal height as reported
	InnerWidth     int // exact width for content inside borders
	TableWidth     int // sum of column widths + separators
	TableHeight    int // visible data rows
}

// NewLayout creates a Layout from the terminal size, clamping the width
func NewLayout(terminalWidth, terminalHeight int) Layout {
	width := clamp(terminalWidth, MinViewportWidth, MaxViewportWidth)
	if terminalHeight <= 0 {
		terminalHeight = DefaultHeight
	}
	return Layout{
		ViewportWidth:  width,
		ViewportHeight: terminalHeight,
		InnerWidth:     width - 2, // minus border chars
		TableWidth:     width - 4, // minus border + padding
		TableHeight:    DefaultTableRows,
	}
}

// DefaultLayout returns a layout using the default dimensions
func DefaultLayout() Layout {
	return NewLayout(DefaultWidth, DefaultHeight)
}

// clamp restricts a value to the given range
func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Color palette - centralized color definitions
var (
	ColorBorder    = lipgloss.Color("33")  // blue
	ColorHighlight = lipgloss.Color("24")  // dark blue background
	ColorText      = lipgloss.Color("15")  // bright white
	ColorAccent    = lipgloss.Color("220") // yellow
	ColorMark      = lipgloss.Color("114") // green (selection marks)
	ColorError     = lipgloss.Color("196") // red
	ColorTextDim   = lipgloss.Color("241") // gray
	colorWhite     = lipgloss.Color("15")
)

// Common styles - reusable style definitions
var (
	// Border style for the main viewport box
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	// Title style for section headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	// Selected row style
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true)

	// Normal text style
	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Hint/help text style
	HintStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Italic(true)

	// Accent style for highlighted text (yellow)
	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// Mark style for selection indicators
	MarkStyle = lipgloss.NewStyle().
			Foreground(ColorMark).
			Bold(true)

	// Dim style for secondary text
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	// Status/error message style
	StatusMsgStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)

// NewBorderStyleWithColor returns a bordered style with the given border color
func NewBorderStyleWithColor(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color)
}

// ApplyTableStyles applies the standard table styling.
// The built-in selected style is kept neutral so whole-row highlighting
// stays consistent across every table in the app.
func ApplyTableStyles(t *table.Model) {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Bold(true).
		Foreground(ColorText).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorTextDim).
		BorderBottom(true)
	s.Selected = s.Selected.
		Foreground(ColorText).
		Background(ColorHighlight).
		Bold(true)
	t.SetStyles(s)
}

// NewAppSpinner creates the standard spinner used for network operations
func NewAppSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorAccent)
	return s
}

// =============================================================================
// Render Helpers
// =============================================================================

// RenderTitle renders bold title text
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderNormal renders normal white text
func RenderNormal(text string) string {
	return NormalStyle.Render(text)
}

// RenderDim renders dimmed secondary text
func RenderDim(text string) string {
	return DimStyle.Render(text)
}

// RenderError renders an error message
func RenderError(text string) string {
	return StatusMsgStyle.Render(text)
}

// PadContentToHeight pads content with newlines to fill the target height
func PadContentToHeight(content string, targetHeight int) string {
	lines := strings.Count(content, "\n")
	if lines < targetHeight {
		content += strings.Repeat("\n", targetHeight-lines)
	}
	return content
}

// BuildTwoBoxView constructs the standard two-box layout: a bordered main
// content area over a one-row bordered footer with centered help text.
func BuildTwoBoxView(content, helpText string, layout Layout) string {
	mainAvailableHeight := layout.ViewportHeight - FooterBoxOverhead - 2
	if mainAvailableHeight < 10 {
		mainAvailableHeight = 10
	}

	content = PadContentToHeight(content, mainAvailableHeight)

	var result strings.Builder

	mainBordered := BorderStyle.
		Width(layout.InnerWidth).
		Height(mainAvailableHeight).
		Render(content)
	result.WriteString(mainBordered)
	result.WriteString("\n")

	footer := CenterTextPadded(HintStyle.Render(helpText), layout.InnerWidth, lipgloss.Width(helpText))
	footerBordered := NewBorderStyleWithColor(colorWhite).
		Width(layout.InnerWidth).
		Height(1).
		Render(footer)
	result.WriteString(footerBordered)

	return result.String()
}

// CenterTextPadded centers pre-rendered text of the given visible width and
// pads both sides to fill the full width.
func CenterTextPadded(text string, width, textWidth int) string {
	if textWidth >= width {
		return text
	}
	leftPad := (width - textWidth) / 2
	rightPad := width - textWidth - leftPad
	return strings.Repeat(" ", leftPad) + text + strings.Repeat(" ", rightPad)
}

// NewAppTheme creates a huh theme matching the app's style guide
func NewAppTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)
	t.Blurred.Title = t.Focused.Title

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	t.Blurred.Description = t.Focused.Description

	t.Focused.Base = lipgloss.NewStyle().
		Foreground(ColorText)
	t.Blurred.Base = t.Focused.Base

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBorder).
		Bold(true).
		Padding(0, 1)

	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(ColorBorder)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(ColorBorder)

	return t
}
