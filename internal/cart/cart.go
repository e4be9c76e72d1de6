// Package cart holds the shopping cart: a pure reducer over a list of line
// items, a Store that owns the live state and persists it write-behind, and
// derived totals computed on read.
package cart

import "github.com/walleyjs/threls-task/internal/catalog"

// LineItem is a (product, variant, quantity) tuple. Its identity within a
// cart is the (product ID, variant ID) composite key; at most one line item
// exists per pair.
type LineItem struct {
	Product  catalog.Product        `json:"product"`
	Variant  catalog.ProductVariant `json:"variant"`
	Quantity int                    `json:"quantity"`
}

// State is the cart's item list. Insertion order is significant: a quantity
// update never reorders, and a merged add keeps the position of the first
// add.
type State struct {
	Items []LineItem
}

// ItemCount is the total quantity across all line items, shown as the cart
// badge.
func (s State) ItemCount() int {
	n := 0
	for _, item := range s.Items {
		n += item.Quantity
	}
	return n
}

// Action is a cart state transition. The concrete types below form the
// complete action set accepted by Reduce.
type Action interface {
	isAction()
}

// AddItem appends a new line item, or merges quantity into an existing line
// item with the same composite key. The reducer accepts any quantity;
// callers are responsible for sending values >= 1.
type AddItem struct {
	Product  catalog.Product
	Variant  catalog.ProductVariant
	Quantity int
}

// RemoveItem drops the line item with the given composite key. Removing an
// absent key is a no-op.
type RemoveItem struct {
	ProductID int64
	VariantID int64
}

// UpdateQuantity sets the matching line item's quantity verbatim. The
// reducer applies whatever value it is given; the UI layer guards against
// values below 1. Updating an absent key is a no-op.
type UpdateQuantity struct {
	ProductID int64
	VariantID int64
	Quantity  int
}

// ClearCart empties the cart.
type ClearCart struct{}

// LoadCart replaces the entire item list. Used only during startup
// hydration from persisted storage.
type LoadCart struct {
	Items []LineItem
}

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (ClearCart) isAction()      {}
func (LoadCart) isAction()       {}
