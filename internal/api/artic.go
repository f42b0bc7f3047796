package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"artdeck/internal/models"
)

const (
	// DefaultBaseURL is the Art Institute of Chicago public API root.
	DefaultBaseURL = "https://api.artic.edu/api/v1"

	// PageSize is fixed by the remote source; the local pagination math
	// assumes the two never diverge.
	PageSize = 12

	userAgent = "artdeck/1.0"

	// artworkFields trims the response to the attributes we display.
	artworkFields = "id,title,place_of_origin,artist_display,inscriptions,date_start,date_end"
)

// Error kinds surfaced by FetchPage. Callers classify with errors.Is;
// nothing here retries — that is a caller-level policy.
var (
	// ErrNetwork covers transport failures and non-OK statuses.
	ErrNetwork = errors.New("network failure")

	// ErrDecode covers responses that do not match the expected shape.
	ErrDecode = errors.New("malformed response")
)

// ArtworksPage is one page of the remote collection plus the total record
// count the source reported alongside it.
type ArtworksPage struct {
	Page     int
	Artworks []models.Artwork
	Total    int
}

// Client is an Art Institute of Chicago API client
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *log.Logger
}

// NewClient creates a new API client with a 30 second timeout.
// An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// NewClientWithLogging creates a client that logs API traffic to api.log
// next to the given database file.
func NewClientWithLogging(baseURL, dbPath string) *Client {
	logFile := filepath.Join(filepath.Dir(dbPath), "api.log")

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Fall back to a client without file logging
		return NewClient(baseURL, nil)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "API",
	})

	return NewClient(baseURL, logger)
}

// FetchPage fetches a single page of artworks plus the reported total.
// Page numbers are 1-based; out-of-range pages are passed through as-is
// and the remote source answers with an empty page.
func (c *Client) FetchPage(page int) (*ArtworksPage, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(PageSize))
	params.Set("fields", artworkFields)

	reqURL := fmt.Sprintf("%s/artworks?%s", c.baseURL, params.Encode())

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	if c.logger != nil {
		c.logger.Info("GET", "endpoint", reqURL)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("Request failed", "url", reqURL, "error", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if c.logger != nil {
			c.logger.Error("Unexpected status", "url", reqURL, "status", resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrNetwork, resp.StatusCode)
	}

	var body artworksResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if body.Data == nil || body.Pagination == nil {
		return nil, fmt.Errorf("%w: missing data array or pagination total", ErrDecode)
	}

	if c.logger != nil {
		c.logger.Debug("Page fetched", "page", page, "records", len(body.Data), "total", body.Pagination.Total)
	}

	return &ArtworksPage{
		Page:     page,
		Artworks: body.Data,
		Total:    body.Pagination.Total,
	}, nil
}

// artworksResponse is the wire shape; only data and pagination.total are
// relied upon.
type artworksResponse struct {
	Data       []models.Artwork `json:"data"`
	Pagination *struct {
		Total int `json:"total"`
	} `json:"pagination"`
}
