package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/walleyjs/threls-task/internal/cart"
	"github.com/walleyjs/threls-task/internal/catalog"
	"github.com/walleyjs/threls-task/internal/controller"
)

// shell is the terminal front-end over the screen controllers. It is the
// presentation layer: all storefront behavior lives in the controllers and
// the cart store, the shell only parses commands and prints state.
type shell struct {
	store    *cart.Store
	list     *controller.ProductList
	detail   *controller.ProductDetail
	cartView *controller.CartView
	checkout *controller.Checkout
}

func newShell(
	store *cart.Store,
	list *controller.ProductList,
	detail *controller.ProductDetail,
	cartView *controller.CartView,
	checkout *controller.Checkout,
) *shell {
	return &shell{
		store:    store,
		list:     list,
		detail:   detail,
		cartView: cartView,
		checkout: checkout,
	}
}

// run reads commands until EOF, "quit", or context cancellation.
func (s *shell) run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Storefront. Type 'help' for commands.")

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(out, "> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case err := <-scanErr:
			return err
		case line := <-lines:
			if quit := s.handle(ctx, out, line); quit {
				return nil
			}
		}
	}
}

func (s *shell) handle(ctx context.Context, out io.Writer, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		s.printHelp(out)
	case "list":
		s.cmdList(ctx, out)
	case "next":
		_ = s.list.NextPage(ctx)
		s.printProducts(out)
	case "prev":
		_ = s.list.PrevPage(ctx)
		s.printProducts(out)
	case "retry":
		_ = s.list.Retry(ctx)
		s.printProducts(out)
	case "show":
		s.cmdShow(ctx, out, args)
	case "color":
		s.detail.SelectColor(strings.Join(args, " "))
		s.printDetail(out)
	case "size":
		s.detail.SelectSize(strings.Join(args, " "))
		s.printDetail(out)
	case "qty":
		s.cmdQty(out, args)
	case "add":
		s.detail.AddToCart(s.store)
		fmt.Fprintf(out, "Added to cart (%d items)\n", s.store.ItemCount())
	case "cart":
		s.printCart(out)
	case "inc", "dec", "rm":
		s.cmdCartRow(out, cmd, args)
	case "set":
		s.cmdSet(out, args)
	case "pay":
		s.cmdPay(out)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(out, "Unknown command %q, try 'help'\n", cmd)
	}
	return false
}

func (s *shell) printHelp(out io.Writer) {
	fmt.Fprint(out, `Commands:
  list                 show current page of products
  next | prev | retry  page through the listing
  show <slug>          open a product
  color <v> | size <v> pick variant options
  qty <n>              set quantity
  add                  add selection to cart
  cart                 show cart with totals
  inc|dec|rm <row>     change or remove a cart row
  set <field> <value>  fill a checkout field (first_name, last_name, phone,
                       country, state, address1, address2, city, zip, ...)
  pay                  place the order
  quit
`)
}

func (s *shell) cmdList(ctx context.Context, out io.Writer) {
	// A failed load lands in the controller's user-facing error state,
	// which printProducts renders with the retry hint.
	_ = s.list.Load(ctx)
	s.printProducts(out)
}

func (s *shell) printProducts(out io.Writer) {
	if msg := s.list.Err(); msg != "" {
		fmt.Fprintf(out, "%s — type 'retry' to try again\n", msg)
		return
	}
	products := s.list.Products()
	if len(products) == 0 {
		fmt.Fprintln(out, "No products.")
		return
	}
	for _, p := range products {
		fmt.Fprintf(out, "  %-30s %s\n", p.Name, p.Slug)
	}
	fmt.Fprintf(out, "Page %d of %d\n", s.list.Page(), s.list.TotalPages())
}

func (s *shell) cmdShow(ctx context.Context, out io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "Usage: show <slug>")
		return
	}
	if err := s.detail.Load(ctx, args[0]); err != nil {
		fmt.Fprintf(out, "%s\nPlease check your connection or try again later.\n", s.detail.Err())
		return
	}
	s.printDetail(out)
}

func (s *shell) printDetail(out io.Writer) {
	p := s.detail.Product()
	if p == nil {
		fmt.Fprintln(out, "No product open, use 'show <slug>'.")
		return
	}
	fmt.Fprintf(out, "%s\n", p.Name)
	if p.Description != nil && *p.Description != "" {
		fmt.Fprintf(out, "%s\n", *p.Description)
	}
	if colors := s.detail.Colors(); len(colors) > 0 {
		fmt.Fprintf(out, "Colors: %s (selected: %s)\n", strings.Join(colors, ", "), s.detail.SelectedColor())
	}
	if sizes := s.detail.Sizes(); len(sizes) > 0 {
		fmt.Fprintf(out, "Sizes:  %s (selected: %s)\n", strings.Join(sizes, ", "), s.detail.SelectedSize())
	}
	if v := s.detail.SelectedVariant(); v != nil {
		fmt.Fprintf(out, "Price:  %s  Qty: %d\n", formatPrice(v.Price), s.detail.Quantity())
	}
}

func (s *shell) cmdQty(out io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "Usage: qty <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(out, "Usage: qty <n>")
		return
	}
	s.detail.SetQuantity(n)
	fmt.Fprintf(out, "Quantity: %d\n", s.detail.Quantity())
}

func (s *shell) printCart(out io.Writer) {
	items := s.cartView.Items()
	if len(items) == 0 {
		fmt.Fprintln(out, "Your cart is empty.")
		return
	}
	for i, item := range items {
		fmt.Fprintf(out, "  %d. %-24s %-16s x%d  %s\n",
			i+1, item.Product.Name, item.Variant.Name, item.Quantity, formatPrice(item.Variant.Price))
	}
	s.printTotals(out, s.cartView.Totals())
}

func (s *shell) printTotals(out io.Writer, t cart.Totals) {
	fmt.Fprintf(out, "Subtotal: %s %s\n", t.Currency, t.Subtotal.StringFixed(2))
	fmt.Fprintf(out, "Shipping: %s %s\n", t.Currency, t.Shipping.StringFixed(2))
	fmt.Fprintf(out, "Tax:      %s %s\n", t.Currency, t.Tax.StringFixed(2))
	fmt.Fprintf(out, "Total:    %s %s\n", t.Currency, t.Total.StringFixed(2))
}

func (s *shell) cmdCartRow(out io.Writer, cmd string, args []string) {
	if len(args) != 1 {
		fmt.Fprintf(out, "Usage: %s <row>\n", cmd)
		return
	}
	row, err := strconv.Atoi(args[0])
	items := s.cartView.Items()
	if err != nil || row < 1 || row > len(items) {
		fmt.Fprintf(out, "Usage: %s <row>\n", cmd)
		return
	}
	item := items[row-1]

	switch cmd {
	case "inc":
		s.cartView.IncreaseQuantity(item.Product.ID, item.Variant.ID)
	case "dec":
		s.cartView.DecreaseQuantity(item.Product.ID, item.Variant.ID)
	case "rm":
		s.cartView.Remove(item.Product.ID, item.Variant.ID)
	}
	s.printCart(out)
}

func (s *shell) cmdSet(out io.Writer, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(out, "Usage: set <field> <value>")
		return
	}
	field, value := args[0], strings.Join(args[1:], " ")
	f := s.checkout.Form()

	switch field {
	case "first_name":
		f.FirstName = value
	case "last_name":
		f.LastName = value
	case "company":
		f.Company = value
	case "vat":
		f.VAT = value
	case "phone":
		f.Phone = value
	case "country":
		f.SetCountry(strings.ToUpper(value))
	case "state":
		f.State = strings.ToUpper(value)
	case "address1":
		f.Address1 = value
	case "address2":
		f.Address2 = value
	case "city":
		f.City = value
	case "zip":
		f.Zip = value
	case "delivery":
		f.Delivery = value
	default:
		fmt.Fprintf(out, "Unknown field %q\n", field)
		return
	}
	fmt.Fprintf(out, "%s = %s\n", field, value)
}

func (s *shell) cmdPay(out io.Writer) {
	conf, err := s.checkout.PlaceOrder()
	if err != nil {
		fmt.Fprintf(out, "Cannot place order: %s\n", err)
		return
	}
	fmt.Fprintf(out, "Order placed! Reference %s\n", conf.Reference)
	s.printTotals(out, conf.Totals)
}

func formatPrice(p catalog.Price) string {
	if p.Formatted != "" {
		return p.Formatted
	}
	return p.Currency + " " + p.Decimal().StringFixed(2)
}
