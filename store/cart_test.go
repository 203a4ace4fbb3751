package store

import (
	"errors"
	"testing"

	"github.com/junaidrashid-git/paintstore-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddMergesByTriple(t *testing.T) {
	c := NewCart()
	c.AddItem(item("p1", "white", "matte", 2, "10.00"))
	c.AddItem(item("p1", "white", "matte", 3, "10.00"))
	c.AddItem(item("p1", "white", "gloss", 1, "12.50"))

	require.Len(t, c.Items(), 2)
	assert.Equal(t, 5, c.ItemCount(key("p1", "white", "matte")))
	assert.Equal(t, 6, c.TotalItems())
	assert.True(t, c.TotalPrice().Equal(decimal.RequireFromString("62.50")), c.TotalPrice().String())
}

func TestCartAddClampsMergedQuantity(t *testing.T) {
	c := NewCart()
	c.AddItem(item("p1", "white", "matte", 600, "1"))
	c.AddItem(item("p1", "white", "matte", 600, "1"))

	assert.Equal(t, models.MaxQuantity, c.ItemCount(key("p1", "white", "matte")))
}

func TestCartUpdateQuantity(t *testing.T) {
	c := NewCart()
	c.AddItem(item("p1", "white", "matte", 2, "10"))
	c.AddItem(item("p2", "blue", "satin", 1, "20"))

	c.UpdateQuantity(key("p1", "white", "matte"), 7)
	assert.Equal(t, 7, c.ItemCount(key("p1", "white", "matte")))

	c.UpdateQuantity(key("p1", "white", "matte"), 0)
	assert.False(t, c.HasItem(key("p1", "white", "matte")))
	assert.Equal(t, 1, c.TotalItems())

	// absent keys are a no-op
	c.UpdateQuantity(key("nope", "x", "y"), 3)
	c.RemoveItem(key("nope", "x", "y"))
	assert.Len(t, c.Items(), 1)
}

func TestCartRemovePreservesOrder(t *testing.T) {
	c := NewCart()
	c.AddItem(item("a", "c", "f", 1, "1"))
	c.AddItem(item("b", "c", "f", 1, "1"))
	c.AddItem(item("c", "c", "f", 1, "1"))

	c.RemoveItem(key("b", "c", "f"))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ProductID)
	assert.Equal(t, "c", items[1].ProductID)
}

func TestCartItemsIsACopy(t *testing.T) {
	c := NewCart()
	c.AddItem(item("p1", "white", "matte", 2, "10"))

	items := c.Items()
	items[0].Quantity = 50

	assert.Equal(t, 2, c.ItemCount(key("p1", "white", "matte")))
}

func TestCartClearAndOpen(t *testing.T) {
	c := NewCart()
	c.AddItem(item("p1", "white", "matte", 2, "10"))
	c.SetIsOpen(true)

	c.ClearCart()

	assert.True(t, c.IsEmpty())
	assert.True(t, c.TotalPrice().IsZero())
	assert.True(t, c.IsOpen(), "clearing items leaves the drawer alone")
}

func TestCartClearTwice(t *testing.T) {
	c := NewCart()
	c.AddItem(item("p1", "white", "matte", 2, "10"))

	c.ClearCart()
	c.ClearCart()
	require.NoError(t, c.Apply(ClearCartOp{}))

	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.TotalItems())
	assert.True(t, c.TotalPrice().IsZero())
}

func TestCartSnapshotRestore(t *testing.T) {
	c := NewCart()
	c.AddItem(item("p1", "white", "matte", 2, "10"))
	c.SetIsOpen(true)

	restored := NewCart()
	restored.Restore(c.Snapshot())

	assert.Equal(t, c.Items(), restored.Items())
	assert.False(t, restored.IsOpen())
}

func TestCartRestoreRepairsSnapshot(t *testing.T) {
	c := NewCart()
	c.Restore(models.CartSnapshot{Items: []models.LineItem{
		item("p1", "white", "matte", 2, "10"),
		item("p1", "white", "matte", 4, "10"),
		item("p2", "blue", "matte", 0, "10"),
	}})

	require.Len(t, c.Items(), 1)
	assert.Equal(t, 6, c.TotalItems())
}

func TestCartApply(t *testing.T) {
	c := NewCart()

	require.NoError(t, c.Apply(AddItemOp{Item: item("p1", "white", "matte", 2, "10")}))
	require.NoError(t, c.Apply(UpdateQuantityOp{Key: key("p1", "white", "matte"), Quantity: 5}))
	require.NoError(t, c.Apply(SetOpenOp{Open: true}))
	assert.Equal(t, 5, c.TotalItems())
	assert.True(t, c.IsOpen())

	tests := []struct {
		name string
		op   CartOp
		want error
	}{
		{"nil op", nil, ErrInvalidLineItem},
		{"missing color", AddItemOp{Item: item("p1", "", "matte", 1, "10")}, ErrInvalidLineItem},
		{"zero quantity", AddItemOp{Item: item("p1", "white", "matte", 0, "10")}, ErrInvalidQuantity},
		{"too many", AddItemOp{Item: item("p1", "white", "matte", 1000, "10")}, ErrInvalidQuantity},
		{"free paint", AddItemOp{Item: item("p1", "white", "matte", 1, "0")}, ErrInvalidPrice},
		{"update above max", UpdateQuantityOp{Key: key("p1", "white", "matte"), Quantity: 1000}, ErrInvalidQuantity},
		{"remove blank key", RemoveItemOp{}, ErrInvalidLineItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Apply(tt.op)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), err.Error())
			assert.True(t, IsValidation(err))
		})
	}

	// rejected ops leave the cart untouched
	assert.Equal(t, 5, c.TotalItems())

	require.NoError(t, c.Apply(UpdateQuantityOp{Key: key("p1", "white", "matte"), Quantity: -1}))
	assert.True(t, c.IsEmpty())
	require.NoError(t, c.Apply(ClearCartOp{}))
}
