package pager

import "artdeck/internal/models"

// Accumulate collects the first requested records of the collection,
// starting from the already-loaded page and fetching further pages through
// f until enough have been gathered. Pages are fetched strictly in
// increasing order, one at a time, so the result preserves the remote
// source's natural ordering.
//
// The total is snapshotted at entry and never re-read from intermediate
// responses; a fluctuating remote total therefore cannot turn the loop
// infinite. The last page to ever request is ceil(total/pageSize).
//
// Returns min(requested, total) records. Any fetch failure aborts the whole
// call with no partial result — callers must not merge anything on error.
func Accumulate(f Fetcher, requested int, loaded []models.Artwork, currentPage, pageSize, total int) ([]models.Artwork, error) {
	if requested <= 0 {
		return []models.Artwork{}, nil
	}

	// Fast path: the loaded page already covers the request.
	if requested <= len(loaded) {
		out := make([]models.Artwork, requested)
		copy(out, loaded)
		return out, nil
	}

	lastPage := 0
	if total > 0 {
		lastPage = (total + pageSize - 1) / pageSize
	}

	buf := make([]models.Artwork, len(loaded), requested)
	copy(buf, loaded)

	for next := currentPage + 1; len(buf) < requested && next <= lastPage; next++ {
		page, err := f.FetchPage(next)
		if err != nil {
			return nil, err
		}
		buf = append(buf, page.Artworks...)
	}

	if len(buf) > requested {
		buf = buf[:requested]
	}
	return buf, nil
}
