// Package integration exercises the storefront end to end against a fake
// catalog API: browse the listing, open a product, build a cart that
// persists across restarts, and check out.
package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/walleyjs/threls-task/internal/cart"
	"github.com/walleyjs/threls-task/internal/catalog"
	"github.com/walleyjs/threls-task/internal/controller"
	"github.com/walleyjs/threls-task/internal/storage"
)

func fakeCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()

	product := func(id int64, name, slug string, variants string) string {
		return fmt.Sprintf(`{
			"id": %d, "name": %q, "title": %q, "slug": %q,
			"description": "A fine %s", "product_type": "physical",
			"media": [], "meta_fields": [],
			"product_variants": [%s]
		}`, id, name, name, slug, name, variants)
	}
	variant := func(id, amount int64, color, size string) string {
		return fmt.Sprintf(`{
			"id": %d, "name": "%s / %s", "pricing_type": "fixed",
			"price": {"currency": "EUR", "amount": %d, "formatted": "", "scale": 2},
			"variant_type_options": [
				{"id": 1, "value": %q, "variant_type": {"id": 1, "name": "Color"}},
				{"id": 2, "value": %q, "variant_type": {"id": 2, "name": "Size"}}
			],
			"media": [], "inventory_items": [], "can_order_out_of_stock_items": true
		}`, id, color, size, amount, color, size)
	}

	shirt := product(1, "Linen Shirt", "linen-shirt",
		variant(10, 4500, "White", "M")+","+variant(11, 4500, "White", "L")+","+variant(12, 4900, "Navy", "M"))
	mug := product(2, "Stone Mug", "stone-mug", variant(20, 1250, "Grey", "One Size"))

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "", "1":
			fmt.Fprintf(w, `{"data": [%s], "meta": {"pagination": {"total_pages": 2}}}`, shirt)
		case "2":
			fmt.Fprintf(w, `{"data": [%s], "meta": {"pagination": {"total_pages": 2}}}`, mug)
		default:
			fmt.Fprint(w, `{"data": [], "meta": {"pagination": {"total_pages": 2}}}`)
		}
	})
	mux.HandleFunc("/products/linen-shirt", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, shirt)
	})
	mux.HandleFunc("/products/stone-mug", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, mug)
	})
	mux.HandleFunc("/", http.NotFound)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestStorefront_BrowseAddCheckout(t *testing.T) {
	srv := fakeCatalogServer(t)
	client := catalog.NewClient(srv.URL)
	ctx := context.Background()

	blobs, err := storage.NewFile(t.TempDir())
	require.NoError(t, err)

	store := cart.NewStore(blobs, zap.NewNop())
	store.Hydrate(ctx)

	// Browse both pages of the listing.
	list := controller.NewProductList(client)
	defer list.Close()
	require.NoError(t, list.Load(ctx))
	require.Len(t, list.Products(), 1)
	assert.Equal(t, "linen-shirt", list.Products()[0].Slug)
	assert.Equal(t, 2, list.TotalPages())

	require.NoError(t, list.NextPage(ctx))
	require.Len(t, list.Products(), 1)
	assert.Equal(t, "stone-mug", list.Products()[0].Slug)

	// Open the shirt, pick Navy/M, add two.
	detail := controller.NewProductDetail(client)
	defer detail.Close()
	require.NoError(t, detail.Load(ctx, "linen-shirt"))
	assert.Equal(t, []string{"White", "Navy"}, detail.Colors())

	detail.SelectColor("Navy")
	require.NotNil(t, detail.SelectedVariant())
	assert.Equal(t, int64(12), detail.SelectedVariant().ID)

	detail.SetQuantity(2)
	detail.AddToCart(store)

	// Add a mug too.
	require.NoError(t, detail.Load(ctx, "stone-mug"))
	detail.AddToCart(store)

	view := controller.NewCartView(store)
	require.Len(t, view.Items(), 2)

	// Subtotal 2×49.00 + 12.50 = 110.50; flat shipping and tax on top.
	totals := view.Totals()
	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("110.50")), totals.Subtotal.String())
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("113.50")), totals.Total.String())

	// Check out.
	co := controller.NewCheckout(store)
	f := co.Form()
	f.FirstName = "Maria"
	f.LastName = "Borg"
	f.Phone = "+35679000000"
	f.Address1 = "1 Republic Street"
	f.City = "Valletta"
	f.Zip = "VLT1111"

	conf, err := co.PlaceOrder()
	require.NoError(t, err)
	assert.Len(t, conf.Items, 2)
	assert.True(t, conf.Totals.Total.Equal(decimal.RequireFromString("113.50")))

	store.Close()

	// The cleared cart is what survives the session.
	restarted := cart.NewStore(blobs, zap.NewNop())
	restarted.Hydrate(ctx)
	assert.Empty(t, restarted.State().Items)
	restarted.Close()
}

func TestStorefront_CartSurvivesRestart(t *testing.T) {
	srv := fakeCatalogServer(t)
	client := catalog.NewClient(srv.URL)
	ctx := context.Background()

	dir := t.TempDir()
	blobs, err := storage.NewFile(dir)
	require.NoError(t, err)

	store := cart.NewStore(blobs, zap.NewNop())
	store.Hydrate(ctx)

	detail := controller.NewProductDetail(client)
	defer detail.Close()
	require.NoError(t, detail.Load(ctx, "stone-mug"))
	detail.SetQuantity(3)
	detail.AddToCart(store)
	store.Close()

	// A new session hydrates the same cart from disk.
	reopened, err := storage.NewFile(dir)
	require.NoError(t, err)
	restarted := cart.NewStore(reopened, zap.NewNop())
	defer restarted.Close()
	restarted.Hydrate(ctx)

	items := restarted.State().Items
	require.Len(t, items, 1)
	assert.Equal(t, "stone-mug", items[0].Product.Slug)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, restarted.ItemCount())
}

func TestStorefront_MalformedPersistedCartStartsEmpty(t *testing.T) {
	blobs := storage.NewMemory()
	require.NoError(t, blobs.Set(context.Background(), "threls_cart", []byte("][ not json")))

	store := cart.NewStore(blobs, zap.NewNop())
	defer store.Close()
	store.Hydrate(context.Background())

	assert.Empty(t, store.State().Items)
}

func TestStorefront_ListingFailurePropagatesAsScreenError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"error": "upstream down"})
	}))
	defer srv.Close()

	list := controller.NewProductList(catalog.NewClient(srv.URL))
	defer list.Close()

	err := list.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, "failed to fetch products: unexpected status 502", list.Err())
	assert.Empty(t, list.Products())
}
