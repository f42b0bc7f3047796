package ui

import (
	"os"
	"strings"
	"testing"

	"artdeck/internal/models"
)

func TestExportSelectionToMarkdown(t *testing.T) {
	t.Chdir(t.TempDir())

	artworks := []models.Artwork{
		{ID: 1, Title: "Plain Title", ArtistDisplay: "Someone", PlaceOfOrigin: "France", DateStart: 1900, DateEnd: 1910},
		{ID: 2, Title: "Pipe | Title", ArtistDisplay: "Else", Inscriptions: "line one\nline two"},
	}

	filename, err := ExportSelectionToMarkdown(artworks)
	if err != nil {
		t.Fatalf("ExportSelectionToMarkdown failed: %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "**Count:** 2") {
		t.Error("export missing count line")
	}
	if !strings.Contains(content, "Plain Title") {
		t.Error("export missing first artwork")
	}
	if !strings.Contains(content, `Pipe \| Title`) {
		t.Error("pipe character not escaped in cell")
	}
	if strings.Contains(content, "line one\nline two") {
		t.Error("newline not flattened in cell")
	}
}
