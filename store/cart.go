package store

import (
	"sync"

	"github.com/nordixdotma/ayounioptic/models"
)

// CartState is the snapshot handed to readers and subscribers: the lines,
// the modal flag, and the derived totals.
type CartState struct {
	Items      []models.CartItem `json:"items"`
	Open       bool              `json:"open"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

// CartStore holds one shopper's cart. All mutations are serialized behind
// the mutex and subscribers are notified after each one. The cart lives in
// memory only; nothing durable exists until checkout submits a commande.
type CartStore struct {
	mu        sync.RWMutex
	items     []models.CartItem
	open      bool
	listeners []func(CartState)
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// Subscribe registers fn to run after every mutation. Registration order is
// notification order.
func (s *CartStore) Subscribe(fn func(CartState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// AddItem merges item into the cart. An existing entry with the same
// product id has its quantity incremented by item.Quantity and keeps its
// original customization; otherwise the item is appended as a new line.
// Non-positive quantities are treated as 1.
func (s *CartStore) AddItem(item models.CartItem) {
	s.mu.Lock()
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	found := false
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, item)
	}
	s.notifyLocked()
	s.mu.Unlock()
}

// UpdateQuantity sets the quantity of the matching line. A quantity of
// zero or less removes the line; callers that want a floor clamp before
// calling. Unknown ids are a no-op.
func (s *CartStore) UpdateQuantity(id, quantity int) {
	s.mu.Lock()
	if quantity <= 0 {
		s.removeLocked(id)
	} else {
		for i := range s.items {
			if s.items[i].ID == id {
				s.items[i].Quantity = quantity
				break
			}
		}
	}
	s.notifyLocked()
	s.mu.Unlock()
}

// RemoveItem deletes the line with the given product id. Unknown ids are a
// no-op, not an error.
func (s *CartStore) RemoveItem(id int) {
	s.mu.Lock()
	s.removeLocked(id)
	s.notifyLocked()
	s.mu.Unlock()
}

// Clear empties the cart, typically after checkout.
func (s *CartStore) Clear() {
	s.mu.Lock()
	s.items = nil
	s.notifyLocked()
	s.mu.Unlock()
}

// Open marks the cart modal as visible.
func (s *CartStore) Open() {
	s.mu.Lock()
	s.open = true
	s.notifyLocked()
	s.mu.Unlock()
}

// Close marks the cart modal as hidden.
func (s *CartStore) Close() {
	s.mu.Lock()
	s.open = false
	s.notifyLocked()
	s.mu.Unlock()
}

// State returns a copy of the current cart with totals recomputed.
func (s *CartStore) State() CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

// Items returns a copy of the cart lines.
func (s *CartStore) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalItems is the sum of all line quantities.
func (s *CartStore) TotalItems() int {
	return s.State().TotalItems
}

// TotalPrice is Σ price×quantity over all lines.
func (s *CartStore) TotalPrice() float64 {
	return s.State().TotalPrice
}

func (s *CartStore) removeLocked(id int) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *CartStore) stateLocked() CartState {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	totalItems := 0
	totalPrice := 0.0
	for _, item := range s.items {
		totalItems += item.Quantity
		totalPrice += item.Price * float64(item.Quantity)
	}
	return CartState{Items: items, Open: s.open, TotalItems: totalItems, TotalPrice: totalPrice}
}

func (s *CartStore) notifyLocked() {
	state := s.stateLocked()
	for _, fn := range s.listeners {
		fn(state)
	}
}
