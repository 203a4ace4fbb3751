package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// SaveFunc persists one pending write.
type SaveFunc func(ctx context.Context) error

// DebouncedWriter coalesces saves per key and flushes them once no new save
// has been marked for the configured delay. A newer Mark for the same key
// replaces the older one. Once Run has returned, Mark saves immediately.
type DebouncedWriter struct {
	delay  time.Duration
	logger *zap.Logger

	mu      sync.Mutex
	pending map[string]SaveFunc
	order   []string
	// writing counts saves taken by Flush that have not finished yet.
	writing map[string]int
	stopped bool

	kick chan struct{}
}

func NewDebouncedWriter(delay time.Duration, logger *zap.Logger) *DebouncedWriter {
	if delay <= 0 {
		delay = 250 * time.Millisecond
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DebouncedWriter{
		delay:   delay,
		logger:  logger,
		pending: make(map[string]SaveFunc),
		writing: make(map[string]int),
		kick:    make(chan struct{}, 1),
	}
}

// Mark schedules save under key.
func (w *DebouncedWriter) Mark(key string, save SaveFunc) {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		if err := save(context.Background()); err != nil {
			w.logger.Error("save failed", zap.String("key", key), zap.Error(err))
		}
		return
	}
	if _, ok := w.pending[key]; !ok {
		w.order = append(w.order, key)
	}
	w.pending[key] = save
	w.mu.Unlock()

	select {
	case w.kick <- struct{}{}:
	default:
	}
}

func (w *DebouncedWriter) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

// IsPending reports whether a save for key is waiting to be flushed or is
// being written.
func (w *DebouncedWriter) IsPending(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.pending[key]
	return ok || w.writing[key] > 0
}

// Flush runs every pending save now, in the order keys were first marked.
func (w *DebouncedWriter) Flush(ctx context.Context) error {
	w.mu.Lock()
	order := w.order
	pending := w.pending
	w.order = nil
	w.pending = make(map[string]SaveFunc)
	for _, key := range order {
		w.writing[key]++
	}
	w.mu.Unlock()

	var errs []error
	for _, key := range order {
		if err := pending[key](ctx); err != nil {
			errs = append(errs, err)
			w.logger.Error("save failed", zap.String("key", key), zap.Error(err))
		}
		w.mu.Lock()
		if w.writing[key]--; w.writing[key] <= 0 {
			delete(w.writing, key)
		}
		w.mu.Unlock()
	}
	return errors.Join(errs...)
}

// Run flushes after each quiet period until ctx is done, then flushes
// whatever is still pending.
func (w *DebouncedWriter) Run(ctx context.Context) error {
	timer := time.NewTimer(w.delay)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			w.mu.Lock()
			w.stopped = true
			w.mu.Unlock()
			return w.Flush(context.WithoutCancel(ctx))
		case <-w.kick:
			timer.Reset(w.delay)
		case <-timer.C:
			_ = w.Flush(ctx)
		}
	}
}
