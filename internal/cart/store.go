package cart

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/walleyjs/threls-task/internal/storage"
)

// storageKey is the fixed key the serialized item list lives under.
const storageKey = "threls_cart"

// persistTimeout bounds a single write-behind storage write.
const persistTimeout = 5 * time.Second

// Store is the single source of truth for the active cart. It owns the
// live State, applies actions through the pure reducer, and persists the
// item list after every mutation through a write-behind queue.
//
// The store is constructed once at application root and its handle passed
// to every consumer. Dispatch is safe for concurrent use, though the UI
// layer drives it from a single goroutine.
//
// Persistence is write-behind: Dispatch returns as soon as the in-memory
// state is updated, and a single persister goroutine performs the storage
// writes. Because there is only one writer and the queue coalesces to the
// latest snapshot, persisted copies are never reordered. Write failures are
// logged and recorded in LastError, never surfaced to dispatchers: the
// in-memory cart stays authoritative for the session.
type Store struct {
	blobs storage.Blob
	lg    *zap.Logger

	mu    sync.Mutex
	state State

	// queue holds at most the latest unsaved snapshot. Enqueueing happens
	// under mu, so replacing a stale pending snapshot is race free.
	queue chan []LineItem
	done  chan struct{}

	errMu   sync.Mutex
	lastErr error
}

// NewStore creates a Store persisting to blobs. Call Hydrate before first
// use to load a previously persisted cart, and Close on shutdown to flush
// the final snapshot.
func NewStore(blobs storage.Blob, lg *zap.Logger) *Store {
	s := &Store{
		blobs: blobs,
		lg:    lg.Named("cart"),
		queue: make(chan []LineItem, 1),
		done:  make(chan struct{}),
	}
	go s.persistLoop()
	return s
}

// State returns a snapshot of the current cart state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Items: copyItems(s.state.Items)}
}

// Totals computes derived totals from the current state.
func (s *Store) Totals() Totals {
	return ComputeTotals(s.State())
}

// ItemCount is the total quantity across the cart.
func (s *Store) ItemCount() int {
	return s.State().ItemCount()
}

// Dispatch applies an action and enqueues the new item list for
// persistence. It returns once the in-memory state is updated; the storage
// write happens afterwards and is not awaited.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	snapshot := copyItems(s.state.Items)
	s.enqueueLocked(snapshot)
	s.mu.Unlock()
}

// enqueueLocked replaces any pending snapshot with the latest one. Caller
// must hold mu.
func (s *Store) enqueueLocked(snapshot []LineItem) {
	select {
	case s.queue <- snapshot:
	default:
		// A stale snapshot is still pending; drop it in favor of the new one.
		select {
		case <-s.queue:
		default:
		}
		s.queue <- snapshot
	}
}

// persistLoop is the single writer draining the queue until Close.
func (s *Store) persistLoop() {
	defer close(s.done)
	for snapshot := range s.queue {
		s.persist(snapshot)
	}
}

func (s *Store) persist(items []LineItem) {
	data, err := json.Marshal(items)
	if err != nil {
		s.recordError(errors.Wrap(err, "marshal cart"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.blobs.Set(ctx, storageKey, data); err != nil {
		s.recordError(errors.Wrap(err, "save cart"))
		return
	}
	s.clearError()
}

func (s *Store) recordError(err error) {
	s.lg.Error("Persist cart", zap.Error(err))
	s.errMu.Lock()
	s.lastErr = err
	s.errMu.Unlock()
}

func (s *Store) clearError() {
	s.errMu.Lock()
	s.lastErr = nil
	s.errMu.Unlock()
}

// LastError reports the most recent persistence failure, or nil after the
// last write succeeded. UI surfaces never show this; it exists for
// diagnostics.
func (s *Store) LastError() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.lastErr
}

// Hydrate loads a previously persisted item list into the store. A missing
// blob leaves the cart empty. A read or parse failure is logged and the
// cart starts empty; persistence problems never block the session.
func (s *Store) Hydrate(ctx context.Context) {
	data, err := s.blobs.Get(ctx, storageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.lg.Warn("Load cart from storage", zap.Error(err))
		}
		return
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.lg.Warn("Parse persisted cart, starting empty", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.state = Reduce(s.state, LoadCart{Items: items})
	s.mu.Unlock()
}

// Close flushes any pending snapshot and stops the persister. The store
// must not be dispatched to after Close.
func (s *Store) Close() {
	close(s.queue)
	<-s.done
}
