package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"artdeck/internal/api"
	"artdeck/internal/db"
	"artdeck/internal/pager"
	"artdeck/internal/selection"
	"artdeck/internal/ui"
)

const defaultDBPath = "artdeck.db"

func main() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	apiBase := flag.String("api", "", "Base URL of the artworks API (default: Art Institute of Chicago)")
	dbPath := flag.String("db", "", "Path to SQLite database for saved selections")
	startPage := flag.Int("page", 1, "Page to open on startup")
	flag.Parse()

	baseURL := *apiBase
	if baseURL == "" {
		baseURL = os.Getenv("ARTDECK_API_BASE")
	}

	path := *dbPath
	if path == "" {
		path = os.Getenv("ARTDECK_DB")
	}
	if path == "" {
		path = defaultDBPath
	}

	database, err := db.New(path)
	if err != nil {
		ui.PrintError(fmt.Sprintf("Failed to initialize database: %v", err))
		os.Exit(1)
	}
	defer database.Close()

	client := api.NewClientWithLogging(baseURL, path)
	pages := pager.New(client, api.PageSize)
	if *startPage > 1 {
		pages.CurrentPage = *startPage
	}
	store := selection.New()

	if err := ui.RunBrowse(client, pages, store, database, nil); err != nil {
		ui.PrintError(fmt.Sprintf("Browser failed: %v", err))
		os.Exit(1)
	}
}
