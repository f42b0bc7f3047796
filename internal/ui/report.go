package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	successStyle := lipgloss.NewStyle().
		Foreground(ColorMark).
		Bold(true)
	fmt.Println(successStyle.Render(message))
}

// PrintError prints an error message
func PrintError(message string) {
	errorStyle := lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
	fmt.Println(errorStyle.Render("Error: " + message))
}
