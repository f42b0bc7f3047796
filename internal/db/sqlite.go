package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"artdeck/internal/models"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// SelectionSummary describes one saved selection without its entries.
type SelectionSummary struct {
	Name    string
	Count   int
	SavedAt string
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.Exec(createSelectionsTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create selections schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// SaveSelection stores a named snapshot of the given artworks, replacing any
// earlier snapshot with the same name. Order is preserved.
func (db *DB) SaveSelection(name string, artworks []models.Artwork) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(deleteSelection, name); err != nil {
		return fmt.Errorf("failed to clear previous snapshot: %w", err)
	}

	stmt, err := tx.Prepare(insertSelectionEntry)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	savedAt := time.Now().Format("2006-01-02T15:04:05Z")
	for i, a := range artworks {
		_, err := stmt.Exec(
			name,
			i,
			a.ID,
			a.Title,
			a.PlaceOfOrigin,
			a.ArtistDisplay,
			a.Inscriptions,
			a.DateStart,
			a.DateEnd,
			savedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert selection entry: %w", err)
		}
	}

	return tx.Commit()
}

// GetSelection returns the artworks of a saved selection in saved order.
func (db *DB) GetSelection(name string) ([]models.Artwork, error) {
	rows, err := db.conn.Query(selectSelectionArtworks, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query selection: %w", err)
	}
	defer rows.Close()

	var artworks []models.Artwork
	for rows.Next() {
		var a models.Artwork
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.PlaceOfOrigin,
			&a.ArtistDisplay,
			&a.Inscriptions,
			&a.DateStart,
			&a.DateEnd,
		); err != nil {
			return nil, fmt.Errorf("failed to scan selection row: %w", err)
		}
		artworks = append(artworks, a)
	}
	return artworks, rows.Err()
}

// ListSelections returns summaries of all saved selections, newest first.
func (db *DB) ListSelections() ([]SelectionSummary, error) {
	rows, err := db.conn.Query(selectSelectionSummaries)
	if err != nil {
		return nil, fmt.Errorf("failed to query selections: %w", err)
	}
	defer rows.Close()

	var summaries []SelectionSummary
	for rows.Next() {
		var s SelectionSummary
		if err := rows.Scan(&s.Name, &s.Count, &s.SavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan selection summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
