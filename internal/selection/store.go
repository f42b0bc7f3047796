package selection

// Package selection holds the cross-page selection set. Entries survive
// page navigation; only Replace discards them.

import "artdeck/internal/models"

// Store maps artwork identity to the selected artwork while remembering
// insertion order, so the selection reads back deterministically.
type Store struct {
	order []int
	byID  map[int]models.Artwork
}

// New creates an empty selection store.
func New() *Store {
	return &Store{
		byID: make(map[int]models.Artwork),
	}
}

// Merge inserts the given artworks into the selection, keyed by ID.
// An artwork that is already selected keeps its insertion position but its
// attributes are overwritten with the latest fetched copy (last-write-wins).
func (s *Store) Merge(artworks []models.Artwork) {
	for _, a := range artworks {
		if _, ok := s.byID[a.ID]; !ok {
			s.order = append(s.order, a.ID)
		}
		s.byID[a.ID] = a
	}
}

// Replace discards the prior selection entirely and installs exactly the
// given artworks. Used when the user edits the selection directly through
// the table (toggling rows), which reports the full replacement set.
func (s *Store) Replace(artworks []models.Artwork) {
	s.order = s.order[:0]
	s.byID = make(map[int]models.Artwork, len(artworks))
	s.Merge(artworks)
}

// All returns the current selection in insertion order.
func (s *Store) All() []models.Artwork {
	out := make([]models.Artwork, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Has reports whether the artwork with the given ID is selected.
func (s *Store) Has(id int) bool {
	_, ok := s.byID[id]
	return ok
}

// Len returns the number of selected artworks.
func (s *Store) Len() int {
	return len(s.order)
}
