// Package session maps session ids to their cart and checkout stores.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/paintstore-api/store"
	"go.uber.org/zap"
)

var ErrInvalidSession = errors.New("invalid session id")

// State is the mutable state of one shopping session.
type State struct {
	ID       string
	Cart     *store.Cart
	Checkout *store.Checkout
}

type entry struct {
	mu    sync.Mutex
	state *State

	// guarded by Manager.mu
	refs     int
	lastUsed time.Time
}

// Manager hands out session state one caller at a time. Stores themselves do
// no locking; every access goes through With or View, which hold the
// session's lock for the duration of the callback.
type Manager struct {
	persister *store.Persister
	writer    *store.DebouncedWriter
	logger    *zap.Logger
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

// NewManager returns a manager persisting through p. With a nil writer every
// successful With saves before returning; otherwise saves are handed to the
// writer.
func NewManager(p *store.Persister, w *store.DebouncedWriter, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		persister: p,
		writer:    w,
		logger:    logger,
		now:       time.Now,
		sessions:  make(map[string]*entry),
	}
}

// Create allocates a new session id.
func (m *Manager) Create() string {
	return uuid.NewString()
}

// With runs fn against the session's state and saves the result. If fn
// returns an error nothing is saved, and fn is expected to have left the
// state as it found it.
func (m *Manager) With(ctx context.Context, id string, fn func(*State) error) error {
	return m.run(ctx, id, true, fn)
}

// View runs fn against the session's state without saving.
func (m *Manager) View(ctx context.Context, id string, fn func(*State) error) error {
	return m.run(ctx, id, false, fn)
}

// Forget drops the session from memory and deletes its persisted state.
func (m *Manager) Forget(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return m.persister.Forget(ctx, id)
}

func (m *Manager) run(ctx context.Context, id string, save bool, fn func(*State) error) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidSession
	}
	e := m.acquire(id)
	defer m.release(e)
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		st, err := m.load(ctx, id)
		if err != nil {
			return err
		}
		e.state = st
	}
	if err := fn(e.state); err != nil {
		return err
	}
	if !save {
		return nil
	}
	return m.save(ctx, e.state)
}

func (m *Manager) acquire(id string) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		e = &entry{}
		m.sessions[id] = e
	}
	e.refs++
	return e
}

func (m *Manager) release(e *entry) {
	m.mu.Lock()
	e.refs--
	e.lastUsed = m.now()
	m.mu.Unlock()
}

// Cached reports how many sessions are held in memory.
func (m *Manager) Cached() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops cached sessions idle for at least maxIdle. A session in use or
// with a save still waiting on the writer is kept; evicted sessions reload
// from the store on their next request.
func (m *Manager) Sweep(maxIdle time.Duration) int {
	cutoff := m.now().Add(-maxIdle)
	m.mu.Lock()
	defer m.mu.Unlock()
	evicted := 0
	for id, e := range m.sessions {
		if e.refs > 0 || e.lastUsed.After(cutoff) {
			continue
		}
		if m.writer != nil && (m.writer.IsPending(store.CartKey(id)) || m.writer.IsPending(store.CheckoutKey(id))) {
			continue
		}
		delete(m.sessions, id)
		evicted++
	}
	return evicted
}

// RunSweeper calls Sweep every interval until ctx is done.
func (m *Manager) RunSweeper(ctx context.Context, every, maxIdle time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := m.Sweep(maxIdle); n > 0 {
				m.logger.Debug("evicted idle sessions", zap.Int("count", n))
			}
		}
	}
}

func (m *Manager) load(ctx context.Context, id string) (*State, error) {
	cart, err := m.persister.LoadCart(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	checkout, err := m.persister.LoadCheckout(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	return &State{ID: id, Cart: cart, Checkout: checkout}, nil
}

// save encodes both stores while the session lock is held so the bytes
// written later are the state as of this call.
func (m *Manager) save(ctx context.Context, st *State) error {
	cartData, err := store.EncodeCart(st.Cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	checkoutData, err := store.EncodeCheckout(st.Checkout)
	if err != nil {
		return fmt.Errorf("encode checkout: %w", err)
	}
	cartKey, checkoutKey := store.CartKey(st.ID), store.CheckoutKey(st.ID)

	if m.writer == nil {
		return errors.Join(
			m.persister.Write(ctx, cartKey, cartData),
			m.persister.Write(ctx, checkoutKey, checkoutData),
		)
	}
	m.writer.Mark(cartKey, func(ctx context.Context) error {
		return m.persister.Write(ctx, cartKey, cartData)
	})
	m.writer.Mark(checkoutKey, func(ctx context.Context) error {
		return m.persister.Write(ctx, checkoutKey, checkoutData)
	})
	m.logger.Debug("session save scheduled", zap.String("session_id", st.ID))
	return nil
}
