// Package suggest fetches raw autocomplete suggestions from the upstream
// suggest endpoint and caches them per (query, region) pair.
package suggest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultEndpoint is the public suggest endpoint queried for completions.
const DefaultEndpoint = "https://suggestqueries.google.com/complete/search"

// DefaultTimeout bounds a single suggest request.
const DefaultTimeout = 4 * time.Second

// Fetcher is the interface the expander consumes. Implementations return
// suggestions for one query, or an empty slice when nothing is available.
// A failed request and a request with zero suggestions are indistinguishable
// on purpose; the pipeline degrades rather than aborts.
type Fetcher interface {
	Fetch(ctx context.Context, query, region string) []string
}

// Client issues single best-effort requests against the suggest endpoint.
// It is stateless and safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// ClientOption adjusts a Client during construction.
type ClientOption func(*Client)

// WithEndpoint overrides the upstream endpoint, mainly for tests.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a suggest client with the default endpoint and timeout.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		endpoint:   DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch requests suggestions for query in the given region.
// The upstream response is a JSON array whose second element holds the
// suggestion strings; those are returned verbatim, untrimmed and unfolded.
// Every failure mode collapses to an empty slice: transport errors,
// non-2xx statuses, timeouts and malformed bodies all look the same to
// callers. One outbound call per invocation, no retries.
func (c *Client) Fetch(ctx context.Context, query, region string) []string {
	params := url.Values{}
	params.Set("client", "firefox")
	params.Set("q", query)
	params.Set("gl", region)
	params.Set("hl", "en")

	reqURL := c.endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		log.Warnf("Building suggest request for %q: %v", query, err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debugf("Suggest request failed for %q: %v", query, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debugf("Suggest request for %q returned status %d", query, resp.StatusCode)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debugf("Reading suggest response for %q: %v", query, err)
		return nil
	}
	return parseSuggestBody(body, query)
}

// parseSuggestBody extracts the suggestion list from a firefox-client
// response: ["<query>", ["s1", "s2", ...], ...]. Anything else is malformed
// and yields nil.
func parseSuggestBody(body []byte, query string) []string {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Debugf("Malformed suggest response for %q: %v", query, err)
		return nil
	}
	if len(payload) < 2 {
		log.Debugf("Suggest response for %q has no suggestion element", query)
		return nil
	}

	var suggestions []string
	if err := json.Unmarshal(payload[1], &suggestions); err != nil {
		log.Debugf("Suggest response for %q has non-string suggestions: %v", query, err)
		return nil
	}
	return suggestions
}
