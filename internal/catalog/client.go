// Package catalog is a client for the remote product catalog API.
//
// The API is read-only from this application's point of view: a paginated
// product listing and a single-product lookup by slug. Failures are surfaced
// as typed errors whose messages double as user-facing text; there is no
// retry, caching, or timeout policy beyond the underlying transport's.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

// StatusError indicates a non-2xx response from the catalog API. Its message
// is suitable for direct display to the user.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return e.Message
}

// Params holds query parameters for a catalog request. Array values are
// flattened with comma-joined encoding, matching the API's convention.
type Params map[string][]string

// Set replaces the values for key.
func (p Params) Set(key string, values ...string) {
	p[key] = values
}

// SetPage sets the page cursor.
func (p Params) SetPage(page int) {
	p["page"] = []string{strconv.Itoa(page)}
}

// encode flattens params into a raw query string: values are comma-joined
// and left unencoded, keys are emitted in sorted order for stable URLs.
func (p Params) encode() string {
	if len(p) == 0 {
		return ""
	}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strings.Join(p[k], ","))
	}
	return b.String()
}

// Client issues requests against the product catalog API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to install an
// instrumented transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// NewClient creates a catalog client for the given API base URL, e.g.
// "https://pawlus.twinepos.dev/api/online/v1".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListProducts fetches one page of the product listing.
func (c *Client) ListProducts(ctx context.Context, params Params) (*ProductList, error) {
	var list ProductList
	if err := c.get(ctx, c.url("/products", params), "failed to fetch products", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetProductBySlug fetches a single product by its URL key.
func (c *Client) GetProductBySlug(ctx context.Context, slug string, params Params) (*Product, error) {
	var p Product
	if err := c.get(ctx, c.url("/products/"+slug, params), "failed to fetch product", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) url(path string, params Params) string {
	u := c.baseURL + path
	if q := params.encode(); q != "" {
		u += "?" + q
	}
	return u
}

// get performs the request and decodes a JSON body into out. Non-2xx
// responses become a *StatusError carrying userMsg.
func (c *Client) get(ctx context.Context, url, userMsg string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, userMsg)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("%s: unexpected status %d", userMsg, resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}
