package controller

import (
	"context"
	"sync"

	"github.com/walleyjs/threls-task/internal/catalog"
)

// ProductList drives the paginated product listing screen. The page cursor
// starts at 1; the total page count comes from the listing response meta
// and falls back to 1 when absent.
type ProductList struct {
	catalog Catalog

	mu         sync.Mutex
	page       int
	totalPages int
	products   []catalog.Product
	loading    bool
	errMsg     string

	// gen guards against a stale fetch applying its result after a newer
	// load or Close superseded it.
	gen    uint64
	cancel context.CancelFunc
}

// NewProductList creates the controller; call Load to fetch the first page.
func NewProductList(c Catalog) *ProductList {
	return &ProductList{
		catalog:    c,
		page:       1,
		totalPages: 1,
	}
}

// Load fetches the current page. Used for the initial load and for the
// manual retry affordance shown on fetch errors.
func (c *ProductList) Load(ctx context.Context) error {
	c.mu.Lock()
	page := c.page
	c.mu.Unlock()
	return c.LoadPage(ctx, page)
}

// Retry re-runs the failed fetch of the current page.
func (c *ProductList) Retry(ctx context.Context) error {
	return c.Load(ctx)
}

// LoadPage fetches the given page and replaces the listing state. Pages
// below 1 clamp to 1. Any previous in-flight fetch is cancelled and its
// late result discarded.
func (c *ProductList) LoadPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.gen++
	gen := c.gen
	if c.cancel != nil {
		c.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	params := catalog.Params{}
	params.SetPage(page)
	list, err := c.catalog.ListProducts(fetchCtx, params)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// Superseded by a newer load or Close; drop the result.
		return nil
	}
	c.loading = false
	c.cancel = nil

	if err != nil {
		c.errMsg = userMessage(err, "Failed to fetch products")
		return err
	}

	c.page = page
	c.products = list.Data
	if tp := list.Meta.Pagination.TotalPages; tp > 0 {
		c.totalPages = tp
	} else {
		c.totalPages = 1
	}
	return nil
}

// NextPage advances the cursor, clamped at the last page.
func (c *ProductList) NextPage(ctx context.Context) error {
	c.mu.Lock()
	page, total := c.page, c.totalPages
	c.mu.Unlock()
	if page >= total {
		return nil
	}
	return c.LoadPage(ctx, page+1)
}

// PrevPage moves the cursor back, clamped at the first page.
func (c *ProductList) PrevPage(ctx context.Context) error {
	c.mu.Lock()
	page := c.page
	c.mu.Unlock()
	if page <= 1 {
		return nil
	}
	return c.LoadPage(ctx, page-1)
}

// Products returns the currently loaded page of products.
func (c *ProductList) Products() []catalog.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.products
}

// Page returns the current page cursor.
func (c *ProductList) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// TotalPages returns the page count reported by the listing.
func (c *ProductList) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages
}

// Loading reports whether a fetch is in progress.
func (c *ProductList) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the user-facing error message of the last failed fetch, or
// empty after a success.
func (c *ProductList) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Close cancels any in-flight fetch. A fetch resolving after Close does not
// mutate controller state.
func (c *ProductList) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
