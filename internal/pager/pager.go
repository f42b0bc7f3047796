package pager

// Package pager owns the pagination state of a browsing session: which page
// is current, which records are loaded, and the total the remote source last
// reported. Fetching is delegated through the Fetcher interface so the TUI
// and tests can drive it without a live endpoint.

import (
	"fmt"

	"artdeck/internal/api"
	"artdeck/internal/models"
)

// Fetcher fetches a single page of artworks. *api.Client satisfies this.
type Fetcher interface {
	FetchPage(page int) (*api.ArtworksPage, error)
}

// Pager tracks the currently loaded page of the collection.
// All fields describe the last successful fetch; a failed navigation
// leaves every one of them untouched.
type Pager struct {
	fetcher Fetcher

	PageSize       int
	CurrentPage    int // 1-based
	FirstRowOffset int // (CurrentPage-1) * PageSize
	Loaded         []models.Artwork
	Total          int
}

// New creates a Pager positioned on page 1 with nothing loaded yet.
func New(fetcher Fetcher, pageSize int) *Pager {
	return &Pager{
		fetcher:     fetcher,
		PageSize:    pageSize,
		CurrentPage: 1,
	}
}

// GoToPage fetches the target page and, on success, replaces the loaded
// page, the total, and the current position in one step. There is no local
// upper bound: an out-of-range page yields whatever the remote source
// answers (an empty page), which is accepted as-is.
func (p *Pager) GoToPage(target int) error {
	if target < 1 {
		return fmt.Errorf("page number must be >= 1, got %d", target)
	}

	res, err := p.fetcher.FetchPage(target)
	if err != nil {
		return err
	}

	p.CurrentPage = target
	p.FirstRowOffset = (target - 1) * p.PageSize
	p.Loaded = res.Artworks
	p.Total = res.Total
	return nil
}

// GoToOffset translates an absolute row offset (as reported by a page-link
// click) into a page number and navigates there.
func (p *Pager) GoToOffset(rowOffset, pageSize int) error {
	if rowOffset < 0 {
		rowOffset = 0
	}
	return p.GoToPage(rowOffset/pageSize + 1)
}

// Apply installs an already-fetched page. The TUI fetches in a background
// command and applies the result on the update loop, so navigation stays a
// single atomic state change there too.
func (p *Pager) Apply(res *api.ArtworksPage) {
	p.CurrentPage = res.Page
	p.FirstRowOffset = (res.Page - 1) * p.PageSize
	p.Loaded = res.Artworks
	p.Total = res.Total
}

// PageCount returns the number of pages the last reported total implies.
func (p *Pager) PageCount() int {
	if p.Total <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}
