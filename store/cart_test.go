package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordixdotma/ayounioptic/models"
)

func lunettes(id int, price float64) models.CartItem {
	return models.CartItem{
		ID:       id,
		Name:     "Lunettes de vue",
		Price:    price,
		Image:    "/img/lunettes.jpg",
		InStock:  true,
		Quantity: 1,
	}
}

func TestCartAddItemAccumulatesByID(t *testing.T) {
	s := NewCartStore()

	item := lunettes(1, 1200)
	item.GlassType = "anti-reflet"
	s.AddItem(item)

	again := lunettes(1, 1200)
	again.Quantity = 2
	again.GlassType = "photochromique"
	s.AddItem(again)

	state := s.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.Items[0].Quantity)
	// The first line's customization wins; later adds only bump quantity.
	assert.Equal(t, "anti-reflet", state.Items[0].GlassType)
	assert.Equal(t, 3, state.TotalItems)
	assert.Equal(t, 3600.0, state.TotalPrice)
}

func TestCartAddItemDefaultsQuantityToOne(t *testing.T) {
	s := NewCartStore()
	item := lunettes(1, 500)
	item.Quantity = 0
	s.AddItem(item)
	assert.Equal(t, 1, s.TotalItems())
}

func TestCartDistinctProductsAreSeparateLines(t *testing.T) {
	s := NewCartStore()
	s.AddItem(lunettes(1, 1200))
	s.AddItem(lunettes(2, 800))

	state := s.State()
	require.Len(t, state.Items, 2)
	assert.Equal(t, 2000.0, state.TotalPrice)
}

func TestCartUpdateQuantity(t *testing.T) {
	s := NewCartStore()
	s.AddItem(lunettes(1, 100))

	s.UpdateQuantity(1, 5)
	assert.Equal(t, 5, s.TotalItems())
	assert.Equal(t, 500.0, s.TotalPrice())

	// Zero or less removes the line.
	s.UpdateQuantity(1, 0)
	assert.Empty(t, s.Items())
}

func TestCartUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	s := NewCartStore()
	s.AddItem(lunettes(1, 100))
	s.UpdateQuantity(99, 3)

	state := s.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.Items[0].Quantity)
}

func TestCartRemoveItem(t *testing.T) {
	s := NewCartStore()
	s.AddItem(lunettes(1, 100))
	s.AddItem(lunettes(2, 200))

	s.RemoveItem(1)
	state := s.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].ID)

	// Removing an absent id changes nothing.
	s.RemoveItem(42)
	assert.Len(t, s.Items(), 1)
}

func TestCartClear(t *testing.T) {
	s := NewCartStore()
	s.AddItem(lunettes(1, 100))
	s.AddItem(lunettes(2, 200))
	s.Clear()

	state := s.State()
	assert.Empty(t, state.Items)
	assert.Equal(t, 0, state.TotalItems)
	assert.Equal(t, 0.0, state.TotalPrice)
}

func TestCartOpenClose(t *testing.T) {
	s := NewCartStore()
	assert.False(t, s.State().Open)
	s.Open()
	assert.True(t, s.State().Open)
	s.Close()
	assert.False(t, s.State().Open)
}

func TestCartSubscribersSeeEachMutation(t *testing.T) {
	s := NewCartStore()
	var seen []CartState
	s.Subscribe(func(st CartState) { seen = append(seen, st) })

	s.AddItem(lunettes(1, 100))
	s.UpdateQuantity(1, 2)
	s.Clear()

	require.Len(t, seen, 3)
	assert.Equal(t, 1, seen[0].TotalItems)
	assert.Equal(t, 2, seen[1].TotalItems)
	assert.Equal(t, 0, seen[2].TotalItems)
}

func TestCartStateIsACopy(t *testing.T) {
	s := NewCartStore()
	s.AddItem(lunettes(1, 100))

	state := s.State()
	state.Items[0].Quantity = 99

	assert.Equal(t, 1, s.State().Items[0].Quantity)
}
