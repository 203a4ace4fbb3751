package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/junaidrashid-git/paintstore-api/kv"
	"github.com/junaidrashid-git/paintstore-api/models"
)

// Keys are namespaced so other state (account UI, newsletter) can share the
// same key-value store.
const keyPrefix = "paintstore:"

func CartKey(sessionID string) string { return keyPrefix + "cart:" + sessionID }
func CheckoutKey(sessionID string) string { return keyPrefix + "checkout:" + sessionID }

// Persister saves and loads store snapshots. Saving is explicit: nothing is
// written until the caller asks.
type Persister struct {
	kv kv.Store
}

func NewPersister(store kv.Store) *Persister {
	return &Persister{kv: store}
}

// EncodeCart serializes the cart's persisted shape.
func EncodeCart(c *Cart) ([]byte, error) {
	return json.Marshal(c.Snapshot())
}

func EncodeCheckout(c *Checkout) ([]byte, error) {
	return json.Marshal(c.Snapshot())
}

func (p *Persister) SaveCart(ctx context.Context, sessionID string, c *Cart) error {
	data, err := EncodeCart(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return p.kv.Set(ctx, CartKey(sessionID), data)
}

func (p *Persister) SaveCheckout(ctx context.Context, sessionID string, c *Checkout) error {
	data, err := EncodeCheckout(c)
	if err != nil {
		return fmt.Errorf("encode checkout: %w", err)
	}
	return p.kv.Set(ctx, CheckoutKey(sessionID), data)
}

// Write stores already-encoded bytes under key.
func (p *Persister) Write(ctx context.Context, key string, data []byte) error {
	return p.kv.Set(ctx, key, data)
}

// LoadCart returns the persisted cart, or an empty one if nothing was saved.
func (p *Persister) LoadCart(ctx context.Context, sessionID string) (*Cart, error) {
	c := NewCart()
	data, err := p.kv.Get(ctx, CartKey(sessionID))
	if errors.Is(err, kv.ErrNotFound) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	var snap models.CartSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", sessionID, err)
	}
	c.Restore(snap)
	return c, nil
}

func (p *Persister) LoadCheckout(ctx context.Context, sessionID string) (*Checkout, error) {
	c := NewCheckout()
	data, err := p.kv.Get(ctx, CheckoutKey(sessionID))
	if errors.Is(err, kv.ErrNotFound) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	var snap models.CheckoutSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode checkout %s: %w", sessionID, err)
	}
	c.Restore(snap)
	return c, nil
}

// Forget deletes both persisted snapshots for a session.
func (p *Persister) Forget(ctx context.Context, sessionID string) error {
	return errors.Join(
		p.kv.Delete(ctx, CartKey(sessionID)),
		p.kv.Delete(ctx, CheckoutKey(sessionID)),
	)
}
