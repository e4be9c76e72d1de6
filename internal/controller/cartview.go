package controller

import "github.com/walleyjs/threls-task/internal/cart"

// CartView drives the cart screen. All mutations go through the shared cart
// store; the quantity guards live here, not in the reducer.
type CartView struct {
	store *cart.Store
}

// NewCartView creates the controller over the shared store.
func NewCartView(store *cart.Store) *CartView {
	return &CartView{store: store}
}

// Items returns the cart's line items in insertion order.
func (c *CartView) Items() []cart.LineItem {
	return c.store.State().Items
}

// Empty reports whether the cart has no line items.
func (c *CartView) Empty() bool {
	return len(c.Items()) == 0
}

// Totals returns the derived totals for the current cart.
func (c *CartView) Totals() cart.Totals {
	return c.store.Totals()
}

// IncreaseQuantity bumps the line item's quantity by one.
func (c *CartView) IncreaseQuantity(productID, variantID int64) {
	if item, ok := c.find(productID, variantID); ok {
		c.store.Dispatch(cart.UpdateQuantity{
			ProductID: productID,
			VariantID: variantID,
			Quantity:  item.Quantity + 1,
		})
	}
}

// DecreaseQuantity lowers the line item's quantity by one. Decrementing is
// disabled at quantity 1, mirroring the screen's disabled button.
func (c *CartView) DecreaseQuantity(productID, variantID int64) {
	item, ok := c.find(productID, variantID)
	if !ok || item.Quantity <= 1 {
		return
	}
	c.store.Dispatch(cart.UpdateQuantity{
		ProductID: productID,
		VariantID: variantID,
		Quantity:  item.Quantity - 1,
	})
}

// Remove drops the line item from the cart.
func (c *CartView) Remove(productID, variantID int64) {
	c.store.Dispatch(cart.RemoveItem{ProductID: productID, VariantID: variantID})
}

func (c *CartView) find(productID, variantID int64) (cart.LineItem, bool) {
	for _, item := range c.Items() {
		if item.Product.ID == productID && item.Variant.ID == variantID {
			return item, true
		}
	}
	return cart.LineItem{}, false
}
