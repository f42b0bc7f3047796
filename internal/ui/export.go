package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"artdeck/internal/models"
)

// ExportSelectionToMarkdown writes the given artworks to a timestamped
// markdown file in the working directory and returns the filename.
func ExportSelectionToMarkdown(artworks []models.Artwork) (string, error) {
	timestamp := time.Now().Format("2006-01-02")
	filename := fmt.Sprintf("artdeck-selection-%s.md", timestamp)

	var sb strings.Builder

	sb.WriteString("# Selected Artworks\n\n")
	sb.WriteString(fmt.Sprintf("**Count:** %d\n", len(artworks)))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	sb.WriteString("| # | ID | Title | Artist | Origin | Dates | Inscriptions |\n")
	sb.WriteString("|---|----|-------|--------|--------|-------|--------------|\n")

	for i, a := range artworks {
		sb.WriteString(fmt.Sprintf("| %d | %d | %s | %s | %s | %s | %s |\n",
			i+1, a.ID,
			escapeMarkdownCell(a.Title),
			escapeMarkdownCell(a.ArtistDisplay),
			escapeMarkdownCell(a.PlaceOfOrigin),
			a.DateRange(),
			escapeMarkdownCell(a.Inscriptions)))
	}

	if err := os.WriteFile(filename, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write markdown file: %w", err)
	}

	return filename, nil
}

// escapeMarkdownCell keeps pipes and newlines from breaking the table
func escapeMarkdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
