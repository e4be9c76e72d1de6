// Package app wires the storefront together: configuration, persisted
// storage, the cart store, the catalog client, the screen controllers, and
// the interactive terminal shell that plays the role of the UI layer.
package app

import (
	"context"
	"net/http"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/walleyjs/threls-task/internal/cart"
	"github.com/walleyjs/threls-task/internal/catalog"
	"github.com/walleyjs/threls-task/internal/controller"
	"github.com/walleyjs/threls-task/internal/storage"
	"github.com/walleyjs/threls-task/pkg/httpclient"
)

// Run creates all dependencies and drives the interactive shell until the
// user quits or the context is cancelled. It is the single wiring point for
// the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("api", cfg.APIBaseURL), zap.String("storage", cfg.StorageDir))

	// Persisted cart storage. Storage problems are never fatal: fall back
	// to in-memory persistence for the session.
	blobs := newBlobStore(lg, cfg.StorageDir)

	store := cart.NewStore(blobs, lg)
	store.Hydrate(ctx)
	defer store.Close()

	// Catalog client with an instrumented transport: request IDs and
	// request logging under OTel HTTP instrumentation.
	transport := otelhttp.NewTransport(
		httpclient.Wrap(nil,
			httpclient.RequestID(),
			httpclient.UserAgent(cfg.UserAgent),
			httpclient.LogRequests(),
		),
		otelhttp.WithTracerProvider(m.TracerProvider()),
		otelhttp.WithMeterProvider(m.MeterProvider()),
	)
	client := catalog.NewClient(cfg.APIBaseURL, catalog.WithHTTPClient(&http.Client{
		Transport: transport,
		Timeout:   cfg.HTTPTimeout,
	}))

	// Screen controllers over the shared store.
	listCtrl := controller.NewProductList(client)
	detailCtrl := controller.NewProductDetail(client)
	cartCtrl := controller.NewCartView(store)
	checkoutCtrl := controller.NewCheckout(store)
	defer listCtrl.Close()
	defer detailCtrl.Close()

	sh := newShell(store, listCtrl, detailCtrl, cartCtrl, checkoutCtrl)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sh.run(gctx, os.Stdin, os.Stdout)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "shell")
	}

	lg.Info("Shutting down")
	return nil
}

// newBlobStore opens the file-backed store, degrading to memory when the
// directory is unusable.
func newBlobStore(lg *zap.Logger, dir string) storage.Blob {
	if dir == "" {
		lg.Warn("No storage directory, cart will not persist across sessions")
		return storage.NewMemory()
	}
	blobs, err := storage.NewFile(dir)
	if err != nil {
		lg.Warn("Open storage directory, falling back to memory", zap.Error(err))
		return storage.NewMemory()
	}
	return blobs
}
