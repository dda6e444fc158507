package store

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/belezagestao/salon-system/internal/core/ports"
)

const (
	queueBuffer = 64
	saveTimeout = 5 * time.Second
)

// writeFailuresTotal counts write-throughs that failed even after the
// retry. A non-zero value means in-memory and persisted state may have
// diverged.
var writeFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "salon",
	Name:      "store_write_failures_total",
	Help:      "Total number of write-throughs to the persisted store that failed after retry.",
})

type saveRequest struct {
	key  string
	blob []byte
	// flushed, when non-nil, marks a barrier request: the writer closes
	// it instead of saving, signalling that everything enqueued before
	// it has been attempted.
	flushed chan struct{}
}

// writer serializes all write-throughs to the KV port on one goroutine,
// keeping per-key save ordering equal to mutation ordering. Callers do
// not await durability; a failed save is retried once, then surfaced via
// the dirty flag, a warning log, and the write-failure counter rather
// than silently diverging.
type writer struct {
	kv       ports.KV
	log      zerolog.Logger
	requests chan saveRequest
	done     chan struct{}

	mu        sync.Mutex
	dirtyKeys map[string]struct{}
}

func newWriter(kv ports.KV, log zerolog.Logger) *writer {
	return &writer{
		kv:        kv,
		log:       log,
		requests:  make(chan saveRequest, queueBuffer),
		done:      make(chan struct{}),
		dirtyKeys: make(map[string]struct{}),
	}
}

func (w *writer) start() {
	go w.run()
}

func (w *writer) run() {
	defer close(w.done)
	for req := range w.requests {
		if req.flushed != nil {
			close(req.flushed)
			continue
		}
		w.save(req.key, req.blob)
	}
}

func (w *writer) enqueue(key string, blob []byte) {
	w.requests <- saveRequest{key: key, blob: blob}
}

func (w *writer) save(key string, blob []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	err := w.kv.Set(ctx, key, blob)
	if err != nil {
		err = w.kv.Set(ctx, key, blob)
	}
	if err != nil {
		writeFailuresTotal.Inc()
		w.markDirty(key)
		w.log.Warn().Err(err).Str("key", key).Msg("write-through failed, changes may not be saved")
		return
	}
	w.clearDirty(key)
}

func (w *writer) flush(ctx context.Context) error {
	barrier := make(chan struct{})
	select {
	case w.requests <- saveRequest{flushed: barrier}:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-barrier:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *writer) close(ctx context.Context) error {
	if err := w.flush(ctx); err != nil {
		return err
	}
	close(w.requests)
	select {
	case <-w.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return w.kv.Close(ctx)
}

func (w *writer) dirty() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.dirtyKeys) > 0
}

func (w *writer) markDirty(key string) {
	w.mu.Lock()
	w.dirtyKeys[key] = struct{}{}
	w.mu.Unlock()
}

func (w *writer) clearDirty(key string) {
	w.mu.Lock()
	delete(w.dirtyKeys, key)
	w.mu.Unlock()
}
