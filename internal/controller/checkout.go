package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/walleyjs/threls-task/internal/cart"
	"github.com/walleyjs/threls-task/internal/checkout"
)

// ErrEmptyCart is returned when placing an order with no line items.
var ErrEmptyCart = fmt.Errorf("cart is empty")

// InvalidFormError lists the required checkout fields still missing.
type InvalidFormError struct {
	Missing []string
}

func (e *InvalidFormError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Confirmation is the order confirmation shown on the success screen.
type Confirmation struct {
	Reference string
	Items     []cart.LineItem
	Totals    cart.Totals
	Form      checkout.Form
	PlacedAt  time.Time
}

// Checkout drives the checkout screen: the shipping form, the totals
// summary, and order placement. A successful order clears the cart.
type Checkout struct {
	store *cart.Store
	form  checkout.Form
}

// NewCheckout creates the controller with the form at its defaults.
func NewCheckout(store *cart.Store) *Checkout {
	return &Checkout{
		store: store,
		form:  checkout.NewForm(),
	}
}

// Form exposes the shipping form for field edits.
func (c *Checkout) Form() *checkout.Form {
	return &c.form
}

// Items returns the line items being checked out.
func (c *Checkout) Items() []cart.LineItem {
	return c.store.State().Items
}

// Totals returns the derived totals for the order summary.
func (c *Checkout) Totals() cart.Totals {
	return c.store.Totals()
}

// PlaceOrder validates the form, produces a confirmation with a fresh
// reference, and clears the cart. The cart is left intact on any error so
// the user can fix the form and retry.
func (c *Checkout) PlaceOrder() (*Confirmation, error) {
	items := c.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if missing := c.form.MissingFields(); len(missing) > 0 {
		return nil, &InvalidFormError{Missing: missing}
	}

	conf := &Confirmation{
		Reference: uuid.New().String(),
		Items:     items,
		Totals:    cart.ComputeTotals(cart.State{Items: items}),
		Form:      c.form,
		PlacedAt:  time.Now(),
	}
	c.store.Dispatch(cart.ClearCart{})
	return conf, nil
}
