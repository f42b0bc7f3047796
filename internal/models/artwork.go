package models

import "strconv"

// Artwork represents a single artwork record from the Art Institute of
// Chicago public API. The ID is the stable identity key; everything else
// is display metadata and is treated as immutable once fetched.
type Artwork struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	PlaceOfOrigin string `json:"place_of_origin"`
	ArtistDisplay string `json:"artist_display"`
	Inscriptions  string `json:"inscriptions"`
	DateStart     int    `json:"date_start"`
	DateEnd       int    `json:"date_end"`
}

// DateRange formats the start/end years for display.
// A zero range renders as "-" rather than "0-0".
func (a Artwork) DateRange() string {
	if a.DateStart == 0 && a.DateEnd == 0 {
		return "-"
	}
	if a.DateStart == a.DateEnd {
		return strconv.Itoa(a.DateStart)
	}
	return strconv.Itoa(a.DateStart) + "-" + strconv.Itoa(a.DateEnd)
}
