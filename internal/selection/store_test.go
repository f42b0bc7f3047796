package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artdeck/internal/models"
)

func artwork(id int, title string) models.Artwork {
	return models.Artwork{ID: id, Title: title}
}

func ids(artworks []models.Artwork) []int {
	out := make([]int, len(artworks))
	for i, a := range artworks {
		out[i] = a.ID
	}
	return out
}

func TestMergePreservesInsertionOrder(t *testing.T) {
	s := New()
	s.Merge([]models.Artwork{artwork(3, "c"), artwork(1, "a")})
	s.Merge([]models.Artwork{artwork(2, "b")})

	assert.Equal(t, []int{3, 1, 2}, ids(s.All()))
	assert.Equal(t, 3, s.Len())
}

func TestMergeIdempotent(t *testing.T) {
	s := New()
	batch := []models.Artwork{artwork(1, "a"), artwork(2, "b")}

	s.Merge(batch)
	s.Merge(batch)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int{1, 2}, ids(s.All()))
}

func TestMergeOverwritesKeepingPosition(t *testing.T) {
	s := New()
	s.Merge([]models.Artwork{artwork(1, "old title"), artwork(2, "b")})
	s.Merge([]models.Artwork{artwork(1, "new title")})

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID, "re-merged artwork keeps its position")
	assert.Equal(t, "new title", all[0].Title, "last-write-wins on attributes")
}

func TestReplace(t *testing.T) {
	s := New()
	s.Merge([]models.Artwork{artwork(1, "a"), artwork(2, "b"), artwork(3, "c")})

	replacement := []models.Artwork{artwork(9, "z"), artwork(2, "b")}
	s.Replace(replacement)

	assert.Equal(t, []int{9, 2}, ids(s.All()))
	assert.False(t, s.Has(1))
	assert.False(t, s.Has(3))
	assert.True(t, s.Has(9))
}

func TestReplaceWithEmptyClears(t *testing.T) {
	s := New()
	s.Merge([]models.Artwork{artwork(1, "a")})

	s.Replace(nil)

	assert.Zero(t, s.Len())
	assert.Empty(t, s.All())
	assert.False(t, s.Has(1))
}

func TestSelectionSurvivesIndependentOfLoadedPage(t *testing.T) {
	// The store never learns about page navigation; this just pins down
	// that reads are stable snapshots of what was merged.
	s := New()
	s.Merge([]models.Artwork{artwork(5, "e"), artwork(6, "f")})

	first := s.All()
	second := s.All()
	assert.Equal(t, first, second)

	// Mutating a returned slice must not corrupt the store.
	first[0] = artwork(99, "intruder")
	assert.Equal(t, []int{5, 6}, ids(s.All()))
}
