package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/junaidrashid-git/paintstore-api/kv"
	"github.com/junaidrashid-git/paintstore-api/models"
	"github.com/junaidrashid-git/paintstore-api/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paint(qty int) models.LineItem {
	return models.LineItem{
		ProductID: "p1", ColorID: "white", FinishID: "matte",
		Name: "Eggshell", Quantity: qty, Price: decimal.NewFromInt(20),
	}
}

func TestWithPersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	m := NewManager(store.NewPersister(mem), nil, nil)
	id := m.Create()

	err := m.With(ctx, id, func(st *State) error {
		return st.Cart.Apply(store.AddItemOp{Item: paint(2)})
	})
	require.NoError(t, err)
	assert.Equal(t, 2, mem.Len())

	// a fresh manager over the same store sees the saved cart
	other := NewManager(store.NewPersister(mem), nil, nil)
	err = other.View(ctx, id, func(st *State) error {
		assert.Equal(t, 2, st.Cart.TotalItems())
		return nil
	})
	require.NoError(t, err)
}

func TestWithErrorSkipsSave(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	m := NewManager(store.NewPersister(mem), nil, nil)

	err := m.With(ctx, "s1", func(st *State) error {
		return st.Cart.Apply(store.AddItemOp{Item: paint(0)})
	})
	assert.True(t, errors.Is(err, store.ErrInvalidQuantity))
	assert.Zero(t, mem.Len())

	require.NoError(t, m.View(ctx, "s1", func(*State) error { return nil }))
	assert.Zero(t, mem.Len(), "views never save")
}

func TestBlankSessionRejected(t *testing.T) {
	m := NewManager(store.NewPersister(kv.NewMemory()), nil, nil)
	err := m.With(context.Background(), " ", func(*State) error { return nil })
	assert.True(t, errors.Is(err, ErrInvalidSession))
}

func TestConcurrentWithIsSerialized(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewPersister(kv.NewMemory()), nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.With(ctx, "shared", func(st *State) error {
				return st.Cart.Apply(store.AddItemOp{Item: paint(1)})
			})
		}()
	}
	wg.Wait()

	require.NoError(t, m.View(ctx, "shared", func(st *State) error {
		assert.Equal(t, 50, st.Cart.TotalItems())
		return nil
	}))
}

func TestDebouncedSave(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	w := store.NewDebouncedWriter(time.Hour, nil)
	m := NewManager(store.NewPersister(mem), w, nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, m.With(ctx, "s1", func(st *State) error {
			return st.Cart.Apply(store.AddItemOp{Item: paint(1)})
		}))
	}
	assert.Zero(t, mem.Len(), "nothing written before flush")
	assert.Equal(t, 2, w.Pending())

	require.NoError(t, w.Flush(ctx))

	cart, err := store.NewPersister(mem).LoadCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestForget(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	m := NewManager(store.NewPersister(mem), nil, nil)
	require.NoError(t, m.With(ctx, "s1", func(st *State) error {
		return st.Cart.Apply(store.AddItemOp{Item: paint(1)})
	}))

	require.NoError(t, m.Forget(ctx, "s1"))
	assert.Zero(t, mem.Len())

	require.NoError(t, m.View(ctx, "s1", func(st *State) error {
		assert.True(t, st.Cart.IsEmpty())
		return nil
	}))
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	w := store.NewDebouncedWriter(time.Hour, nil)
	m := NewManager(store.NewPersister(mem), w, nil)
	clock := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }

	require.NoError(t, m.With(ctx, "s1", func(st *State) error {
		return st.Cart.Apply(store.AddItemOp{Item: paint(2)})
	}))
	require.NoError(t, m.View(ctx, "s2", func(*State) error { return nil }))
	assert.Equal(t, 2, m.Cached())

	clock = clock.Add(time.Hour)
	assert.Equal(t, 1, m.Sweep(30*time.Minute), "s1 still has a pending save")
	assert.Equal(t, 1, m.Cached())

	require.NoError(t, w.Flush(ctx))
	assert.Equal(t, 1, m.Sweep(30*time.Minute))
	assert.Zero(t, m.Cached())

	// evicted state reloads from the store
	require.NoError(t, m.View(ctx, "s1", func(st *State) error {
		assert.Equal(t, 2, st.Cart.TotalItems())
		return nil
	}))
}

func TestSweepKeepsRecentSessions(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewPersister(kv.NewMemory()), nil, nil)
	clock := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }

	require.NoError(t, m.View(ctx, "s1", func(*State) error { return nil }))
	clock = clock.Add(5 * time.Minute)

	assert.Zero(t, m.Sweep(30*time.Minute))
	assert.Equal(t, 1, m.Cached())
}
