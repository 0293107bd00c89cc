package results

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/colinlord/ironman-results/internal/event"
	"github.com/colinlord/ironman-results/internal/jsontree"
	"github.com/colinlord/ironman-results/internal/scraper"
)

const (
	// DefaultAPIBase is the public results API serving athlete data for
	// every subevent, keyed by wtc_eventid.
	DefaultAPIBase = "https://labs-v2.competitor.com"
	Timeout        = 30 * time.Second
)

var (
	// ErrBadStatus reports a non-success HTTP response from the results API.
	ErrBadStatus = errors.New("unexpected status code")

	// ErrMissingResults reports an API response without the expected
	// resultsJson.value list.
	ErrMissingResults = errors.New("results payload missing resultsJson.value")
)

// Client fetches raw athlete records from the results API
type Client struct {
	client  *http.Client
	apiBase string
}

// NewClient creates a results API client. An empty apiBase selects
// DefaultAPIBase.
func NewClient(apiBase string) *Client {
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}
	return &Client{
		client: &http.Client{
			Timeout: Timeout,
		},
		apiBase: apiBase,
	}
}

// Fetch returns the raw athlete records for one subevent. An empty slice
// with a nil error means the API holds no results for that year.
func (c *Client) Fetch(sub event.SubEvent) ([]any, error) {
	u := fmt.Sprintf("%s/api/results?wtc_eventid=%s", c.apiBase, url.QueryEscape(sub.ID))

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", scraper.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading results body: %w", err)
	}

	doc, err := jsontree.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("parsing results JSON: %w", err)
	}

	records, ok := jsontree.List(doc, "resultsJson", "value")
	if !ok {
		return nil, ErrMissingResults
	}

	return records, nil
}
