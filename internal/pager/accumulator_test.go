package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artdeck/internal/api"
	"artdeck/internal/models"
)

// loadPageOne is a test helper returning the first page of the fake
// collection the way a browsing session would have it loaded.
func loadPageOne(t *testing.T, f *fakeFetcher) []models.Artwork {
	t.Helper()
	page, err := f.FetchPage(1)
	require.NoError(t, err)
	f.calls = nil // only count fetches made by Accumulate itself
	return page.Artworks
}

func TestAccumulateFastPath(t *testing.T) {
	f := newFakeFetcher(30, 12)
	loaded := loadPageOne(t, f)

	got, err := Accumulate(f, 5, loaded, 1, 12, 30)
	require.NoError(t, err)

	require.Len(t, got, 5)
	for i, a := range got {
		assert.Equal(t, i+1, a.ID)
	}
	assert.Empty(t, f.calls, "a request within the loaded page must not fetch")
}

func TestAccumulateFastPathExactPage(t *testing.T) {
	f := newFakeFetcher(30, 12)
	loaded := loadPageOne(t, f)

	got, err := Accumulate(f, 12, loaded, 1, 12, 30)
	require.NoError(t, err)
	assert.Len(t, got, 12)
	assert.Empty(t, f.calls)
}

func TestAccumulateZeroRequested(t *testing.T) {
	f := newFakeFetcher(30, 12)
	loaded := loadPageOne(t, f)

	got, err := Accumulate(f, 0, loaded, 1, 12, 30)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, f.calls)
}

func TestAccumulateSpansOnePage(t *testing.T) {
	// pageSize=12, total=30, page 1 loaded: ensure(20) fetches page 2 only
	f := newFakeFetcher(30, 12)
	loaded := loadPageOne(t, f)

	got, err := Accumulate(f, 20, loaded, 1, 12, 30)
	require.NoError(t, err)

	require.Len(t, got, 20)
	for i, a := range got {
		assert.Equal(t, i+1, a.ID, "records must stay in collection order")
	}
	assert.Equal(t, []int{2}, f.calls)
}

func TestAccumulateSpansToExhaustion(t *testing.T) {
	// total=30: ensure(30) from page 1 fetches pages 2 and 3, returns all 30
	f := newFakeFetcher(30, 12)
	loaded := loadPageOne(t, f)

	got, err := Accumulate(f, 30, loaded, 1, 12, 30)
	require.NoError(t, err)

	require.Len(t, got, 30)
	assert.Equal(t, []int{2, 3}, f.calls)
}

func TestAccumulateClampsToTotal(t *testing.T) {
	// ensure(40) with total=30 returns 30, fetching the same two pages and
	// never requesting a nonexistent page 4
	f := newFakeFetcher(30, 12)
	loaded := loadPageOne(t, f)

	got, err := Accumulate(f, 40, loaded, 1, 12, 30)
	require.NoError(t, err)

	require.Len(t, got, 30)
	assert.Equal(t, []int{2, 3}, f.calls)
}

func TestAccumulateFromMiddlePage(t *testing.T) {
	f := newFakeFetcher(60, 12)
	page, err := f.FetchPage(3)
	require.NoError(t, err)
	f.calls = nil

	got, err := Accumulate(f, 20, page.Artworks, 3, 12, 60)
	require.NoError(t, err)

	require.Len(t, got, 20)
	assert.Equal(t, 25, got[0].ID, "accumulation starts at the loaded page")
	assert.Equal(t, []int{4}, f.calls)
}

func TestAccumulateFetchFailureReturnsNothing(t *testing.T) {
	f := newFakeFetcher(60, 12)
	loaded := loadPageOne(t, f)
	f.fail[3] = api.ErrNetwork

	got, err := Accumulate(f, 30, loaded, 1, 12, 60)
	require.ErrorIs(t, err, api.ErrNetwork)
	assert.Nil(t, got, "no partial accumulation may leak to callers")
	assert.Equal(t, []int{2, 3}, f.calls, "the loop stops at the failing page")
}

func TestAccumulateIgnoresMidLoopTotals(t *testing.T) {
	// The fake reports its total on every page response; Accumulate must
	// work off the snapshot it was handed, not the replies.
	f := newFakeFetcher(30, 12)
	loaded := loadPageOne(t, f)

	// Caller snapshot claims 24 records even though the fake now says 30.
	got, err := Accumulate(f, 30, loaded, 1, 12, 24)
	require.NoError(t, err)

	assert.Len(t, got, 24)
	assert.Equal(t, []int{2}, f.calls, "page bound derives from the snapshot total")
}

func TestAccumulateEmptyLoadedPage(t *testing.T) {
	f := newFakeFetcher(30, 12)

	got, err := Accumulate(f, 18, nil, 0, 12, 30)
	require.NoError(t, err)

	require.Len(t, got, 18)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, []int{1, 2}, f.calls)
}
