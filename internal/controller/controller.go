// Package controller implements the screen controllers of the storefront:
// product list, product detail, cart, and checkout. Each controller owns its
// screen-local state (loading flags, page cursor, selections, form fields)
// and calls into the catalog client and the cart store, which are injected
// explicitly.
//
// Controllers that fetch hold a cancellation handle for the in-flight
// request; Close releases it, and a fetch that resolves after being
// superseded or closed never mutates controller state.
package controller

import (
	"context"

	"github.com/walleyjs/threls-task/internal/catalog"
)

// Catalog is the product API surface the controllers consume.
type Catalog interface {
	ListProducts(ctx context.Context, params catalog.Params) (*catalog.ProductList, error)
	GetProductBySlug(ctx context.Context, slug string, params catalog.Params) (*catalog.Product, error)
}

// userMessage renders an error for display, falling back to a generic
// message when the error has no text of its own.
func userMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
