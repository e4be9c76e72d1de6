package controller

import (
	"context"
	"strings"
	"sync"

	"github.com/go-faster/errors"

	"github.com/walleyjs/threls-task/internal/cart"
	"github.com/walleyjs/threls-task/internal/catalog"
)

// Variant option dimensions the detail screen lets the user pick.
const (
	optionColor = "color"
	optionSize  = "size"
)

// ErrMissingSlug is returned by Load when no product slug was supplied.
var ErrMissingSlug = errors.New("product slug is missing")

// ProductDetail drives the product detail screen: it loads a product by
// slug, tracks the selected color/size options and quantity, resolves the
// matching variant, and adds the selection to the cart.
type ProductDetail struct {
	catalog Catalog

	mu              sync.Mutex
	product         *catalog.Product
	selectedVariant *catalog.ProductVariant
	selectedColor   string
	selectedSize    string
	quantity        int
	loading         bool
	errMsg          string

	gen    uint64
	cancel context.CancelFunc
}

// NewProductDetail creates the controller with quantity 1 and nothing
// loaded.
func NewProductDetail(c Catalog) *ProductDetail {
	return &ProductDetail{
		catalog:  c,
		quantity: 1,
	}
}

// Load fetches the product and selects its first variant, seeding the
// color/size selection from that variant's options.
func (c *ProductDetail) Load(ctx context.Context, slug string) error {
	if slug == "" {
		c.mu.Lock()
		c.errMsg = userMessage(ErrMissingSlug, "")
		c.mu.Unlock()
		return ErrMissingSlug
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

	p, err := c.catalog.GetProductBySlug(fetchCtx, slug, catalog.Params{})
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil
	}
	c.loading = false
	c.cancel = nil

	if err != nil {
		c.errMsg = userMessage(err, "Failed to load product details")
		return err
	}

	c.product = p
	c.selectedVariant = nil
	c.selectedColor = ""
	c.selectedSize = ""
	c.quantity = 1
	if len(p.ProductVariants) > 0 {
		first := &p.ProductVariants[0]
		c.selectedVariant = first
		c.selectedColor = optionValue(*first, optionColor)
		c.selectedSize = optionValue(*first, optionSize)
	}
	return nil
}

// SelectColor picks a color option and re-resolves the matching variant.
func (c *ProductDetail) SelectColor(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedColor = value
	c.resolveVariantLocked()
}

// SelectSize picks a size option and re-resolves the matching variant.
func (c *ProductDetail) SelectSize(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedSize = value
	c.resolveVariantLocked()
}

// resolveVariantLocked finds the first variant matching both active
// selections; an empty selection matches any value. When no variant
// matches, the previous selection is kept, mirroring the screen behavior.
func (c *ProductDetail) resolveVariantLocked() {
	if c.product == nil {
		return
	}
	for i := range c.product.ProductVariants {
		v := &c.product.ProductVariants[i]
		color := optionValue(*v, optionColor)
		size := optionValue(*v, optionSize)
		if (c.selectedColor == "" || color == c.selectedColor) &&
			(c.selectedSize == "" || size == c.selectedSize) {
			c.selectedVariant = v
			return
		}
	}
}

// Colors returns the distinct color option values across all variants, in
// first-seen order.
func (c *ProductDetail) Colors() []string {
	return c.optionValues(optionColor)
}

// Sizes returns the distinct size option values across all variants, in
// first-seen order.
func (c *ProductDetail) Sizes() []string {
	return c.optionValues(optionSize)
}

func (c *ProductDetail) optionValues(typeName string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.product == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var values []string
	for _, v := range c.product.ProductVariants {
		for _, opt := range v.VariantTypeOptions {
			if !strings.EqualFold(opt.VariantType.Name, typeName) {
				continue
			}
			if _, ok := seen[opt.Value]; ok {
				continue
			}
			seen[opt.Value] = struct{}{}
			values = append(values, opt.Value)
		}
	}
	return values
}

// optionValue returns the variant's value for the named option type, or
// empty. Type names match case-insensitively.
func optionValue(v catalog.ProductVariant, typeName string) string {
	for _, opt := range v.VariantTypeOptions {
		if strings.EqualFold(opt.VariantType.Name, typeName) {
			return opt.Value
		}
	}
	return ""
}

// SetQuantity sets the quantity stepper, floored at 1.
func (c *ProductDetail) SetQuantity(qty int) {
	if qty < 1 {
		qty = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quantity = qty
}

// IncrementQuantity steps the quantity up.
func (c *ProductDetail) IncrementQuantity() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quantity++
}

// DecrementQuantity steps the quantity down, floored at 1.
func (c *ProductDetail) DecrementQuantity() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.quantity > 1 {
		c.quantity--
	}
}

// AddToCart dispatches the selected variant and quantity to the cart store.
// It is a no-op when nothing is loaded or no variant is selected.
func (c *ProductDetail) AddToCart(store *cart.Store) {
	c.mu.Lock()
	product := c.product
	variant := c.selectedVariant
	qty := c.quantity
	c.mu.Unlock()

	if product == nil || variant == nil {
		return
	}
	store.Dispatch(cart.AddItem{
		Product:  *product,
		Variant:  *variant,
		Quantity: qty,
	})
}

// Product returns the loaded product, or nil.
func (c *ProductDetail) Product() *catalog.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.product
}

// SelectedVariant returns the currently resolved variant, or nil.
func (c *ProductDetail) SelectedVariant() *catalog.ProductVariant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedVariant
}

// SelectedColor returns the active color selection, or empty.
func (c *ProductDetail) SelectedColor() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedColor
}

// SelectedSize returns the active size selection, or empty.
func (c *ProductDetail) SelectedSize() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedSize
}

// Quantity returns the stepper value.
func (c *ProductDetail) Quantity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quantity
}

// Loading reports whether a fetch is in progress.
func (c *ProductDetail) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the user-facing error of the last failed load, or empty.
func (c *ProductDetail) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Close cancels any in-flight fetch.
func (c *ProductDetail) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
