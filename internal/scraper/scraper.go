package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/colinlord/ironman-results/internal/jsontree"
)

const (
	// UserAgent is a browser-like identification header; the race pages
	// reject obviously non-browser clients.
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	Timeout   = 30 * time.Second

	dataScriptSelector = `script#__NEXT_DATA__[type="application/json"]`
)

var (
	// ErrBadStatus reports a non-success HTTP response for the race page.
	ErrBadStatus = errors.New("unexpected status code")

	// ErrNoEmbeddedData reports that the fetched page contains no
	// __NEXT_DATA__ script block.
	ErrNoEmbeddedData = errors.New("no embedded __NEXT_DATA__ script found in page")
)

// Scraper handles fetching a race page and extracting its embedded JSON
type Scraper struct {
	client *http.Client
}

// New creates a new Scraper instance
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// LoadPage fetches the race page at url and returns the embedded JSON
// document as a generic tree.
func (s *Scraper) LoadPage(url string) (any, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	return s.parsePage(resp.Body)
}

// parsePage extracts the embedded JSON blob from HTML
func (s *Scraper) parsePage(r io.Reader) (any, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	script := doc.Find(dataScriptSelector).First()
	if script.Length() == 0 {
		return nil, ErrNoEmbeddedData
	}

	// JSON syntax errors surface unwrapped so callers can tell malformed
	// embedded data apart from a missing script block.
	return jsontree.Decode([]byte(script.Text()))
}
