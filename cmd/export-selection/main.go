package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"artdeck/internal/db"
)

func main() {
	dbPath := flag.String("db", "artdeck.db", "Path to SQLite database")
	name := flag.String("name", "", "Name of the saved selection to export")
	outputPath := flag.String("output", "selection.csv", "Output CSV file")
	list := flag.Bool("list", false, "List saved selections and exit")
	flag.Parse()

	database, err := db.New(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if *list {
		summaries, err := database.ListSelections()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list selections: %v\n", err)
			os.Exit(1)
		}
		if len(summaries) == 0 {
			fmt.Println("No saved selections.")
			return
		}
		for _, s := range summaries {
			fmt.Printf("%s\t%d artworks\t%s\n", s.Name, s.Count, s.SavedAt)
		}
		return
	}

	if *name == "" {
		fmt.Fprintln(os.Stderr, "Missing -name (use -list to see saved selections)")
		os.Exit(1)
	}

	artworks, err := database.GetSelection(*name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load selection: %v\n", err)
		os.Exit(1)
	}
	if len(artworks) == 0 {
		fmt.Fprintf(os.Stderr, "No selection named %q\n", *name)
		os.Exit(1)
	}

	f, err := os.Create(*outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"id", "title", "artist_display", "place_of_origin", "inscriptions", "date_start", "date_end"}
	if err := w.Write(header); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write header: %v\n", err)
		os.Exit(1)
	}

	count := 0
	for _, a := range artworks {
		row := []string{
			strconv.Itoa(a.ID),
			a.Title,
			a.ArtistDisplay,
			a.PlaceOfOrigin,
			a.Inscriptions,
			strconv.Itoa(a.DateStart),
			strconv.Itoa(a.DateEnd),
		}
		if err := w.Write(row); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write row: %v\n", err)
			continue
		}
		count++
	}

	fmt.Printf("Exported %d artworks to %s\n", count, *outputPath)
}
