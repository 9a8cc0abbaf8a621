package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/nordixdotma/ayounioptic/models"
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Persistence keys, one per collection. Each collection is written
// wholesale under its key after every mutation that touches it.
const (
	KeyCategories  = "admin_categories"
	KeyTypes       = "admin_types"
	KeyProducts    = "admin_products"
	KeyOrders      = "admin_orders"
	KeyLocalOrders = "ayouni-orders"
)

// Persister is the local snapshot strategy. It is a fallback cache, never
// the source of truth: save failures are logged and do not fail the
// mutation, and a missing snapshot on Load is reported as (false, nil).
type Persister interface {
	Save(key string, v any) error
	Load(key string, v any) (bool, error)
}

// AdminState is the back-office's working copy of the four collections.
type AdminState struct {
	Categories []models.Category     `json:"categories"`
	Types      []models.Type         `json:"types"`
	Products   []models.AdminProduct `json:"products"`
	Orders     []models.Order        `json:"orders"`
}

// AdminStore owns the admin state and applies every change through a pure
// reducer under one lock, so each dispatch — cascades included — is a
// single atomic transition. Collections are seeded from the persister
// before any fetch completes and rewritten after every mutation.
type AdminStore struct {
	mu        sync.RWMutex
	state     AdminState
	persister Persister
	log       *logrus.Logger
	listeners []func(AdminState)
}

func NewAdminStore(p Persister, log *logrus.Logger) *AdminStore {
	s := &AdminStore{persister: p, log: log}
	s.restore()
	return s
}

// restore seeds the state from local snapshots, if any. The UI may show
// this data until the first SET_* from a fetch overwrites it.
func (s *AdminStore) restore() {
	if s.persister == nil {
		return
	}
	load := func(key string, v any) {
		if _, err := s.persister.Load(key, v); err != nil {
			s.log.WithError(err).WithField("key", key).Warn("failed to load local snapshot")
		}
	}
	load(KeyCategories, &s.state.Categories)
	load(KeyTypes, &s.state.Types)
	load(KeyProducts, &s.state.Products)
	load(KeyOrders, &s.state.Orders)
}

// Subscribe registers fn to run after every mutation.
func (s *AdminStore) Subscribe(fn func(AdminState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// State returns a copy of the current state.
func (s *AdminStore) State() AdminState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyState(s.state)
}

// ── Dispatch ────────────────────────────────────────────────────────────────

func (s *AdminStore) SetCategories(list []models.Category) {
	s.dispatch(func(st AdminState) AdminState {
		st.Categories = list
		return st
	}, KeyCategories)
}

func (s *AdminStore) AddCategory(c models.Category) {
	s.dispatch(func(st AdminState) AdminState {
		st.Categories = append(st.Categories, c)
		return st
	}, KeyCategories)
}

func (s *AdminStore) UpdateCategory(c models.Category) {
	s.dispatch(func(st AdminState) AdminState {
		st.Categories = replaceCategory(st.Categories, c)
		return st
	}, KeyCategories)
}

// DeleteCategory removes the category, every type under it, and every
// product referencing the category or one of those types, in one dispatch.
func (s *AdminStore) DeleteCategory(id int) {
	s.dispatch(func(st AdminState) AdminState {
		return reduceDeleteCategory(st, id)
	}, KeyCategories, KeyTypes, KeyProducts)
}

func (s *AdminStore) SetTypes(list []models.Type) {
	s.dispatch(func(st AdminState) AdminState {
		st.Types = list
		return st
	}, KeyTypes)
}

func (s *AdminStore) AddType(t models.Type) {
	s.dispatch(func(st AdminState) AdminState {
		st.Types = append(st.Types, t)
		return st
	}, KeyTypes)
}

func (s *AdminStore) UpdateType(t models.Type) {
	s.dispatch(func(st AdminState) AdminState {
		st.Types = replaceType(st.Types, t)
		return st
	}, KeyTypes)
}

// DeleteType removes the type and every product referencing it.
func (s *AdminStore) DeleteType(id int) {
	s.dispatch(func(st AdminState) AdminState {
		return reduceDeleteType(st, id)
	}, KeyTypes, KeyProducts)
}

func (s *AdminStore) SetProducts(list []models.AdminProduct) {
	s.dispatch(func(st AdminState) AdminState {
		st.Products = list
		return st
	}, KeyProducts)
}

func (s *AdminStore) AddProduct(p models.AdminProduct) {
	s.dispatch(func(st AdminState) AdminState {
		st.Products = append(st.Products, p)
		return st
	}, KeyProducts)
}

func (s *AdminStore) UpdateProduct(p models.AdminProduct) {
	s.dispatch(func(st AdminState) AdminState {
		for i := range st.Products {
			if st.Products[i].ID == p.ID {
				st.Products[i] = p
				break
			}
		}
		return st
	}, KeyProducts)
}

func (s *AdminStore) DeleteProduct(id int) {
	s.dispatch(func(st AdminState) AdminState {
		kept := st.Products[:0:0]
		for _, p := range st.Products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		st.Products = kept
		return st
	}, KeyProducts)
}

func (s *AdminStore) SetOrders(list []models.Order) {
	s.dispatch(func(st AdminState) AdminState {
		st.Orders = list
		return st
	}, KeyOrders)
}

func (s *AdminStore) AddOrder(o models.Order) {
	s.dispatch(func(st AdminState) AdminState {
		st.Orders = append(st.Orders, o)
		return st
	}, KeyOrders)
}

// UpdateOrderStatus patches only the status field of the matching order.
func (s *AdminStore) UpdateOrderStatus(id int, status models.OrderStatus) {
	s.dispatch(func(st AdminState) AdminState {
		for i := range st.Orders {
			if st.Orders[i].ID == id {
				st.Orders[i].Status = status
				break
			}
		}
		return st
	}, KeyOrders)
}

func (s *AdminStore) dispatch(reduce func(AdminState) AdminState, touched ...string) {
	s.mu.Lock()
	s.state = reduce(s.state)
	s.persistLocked(touched)
	state := copyState(s.state)
	listeners := s.listeners
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(state)
	}
}

func (s *AdminStore) persistLocked(keys []string) {
	if s.persister == nil {
		return
	}
	for _, key := range keys {
		var err error
		switch key {
		case KeyCategories:
			err = s.persister.Save(key, s.state.Categories)
		case KeyTypes:
			err = s.persister.Save(key, s.state.Types)
		case KeyProducts:
			err = s.persister.Save(key, s.state.Products)
		case KeyOrders:
			err = s.persister.Save(key, s.state.Orders)
		}
		if err != nil {
			s.log.WithError(err).WithField("key", key).Warn("failed to save local snapshot")
		}
	}
}

// ── Pure reducers for the cascading deletes ─────────────────────────────────

func reduceDeleteCategory(st AdminState, id int) AdminState {
	deletedTypes := map[int]bool{}
	keptTypes := st.Types[:0:0]
	for _, t := range st.Types {
		if t.CategoryID == id {
			deletedTypes[t.ID] = true
		} else {
			keptTypes = append(keptTypes, t)
		}
	}
	keptCategories := st.Categories[:0:0]
	for _, c := range st.Categories {
		if c.ID != id {
			keptCategories = append(keptCategories, c)
		}
	}
	keptProducts := st.Products[:0:0]
	for _, p := range st.Products {
		if p.CategoryID != id && !deletedTypes[p.TypeID] {
			keptProducts = append(keptProducts, p)
		}
	}
	st.Categories = keptCategories
	st.Types = keptTypes
	st.Products = keptProducts
	return st
}

func reduceDeleteType(st AdminState, id int) AdminState {
	keptTypes := st.Types[:0:0]
	for _, t := range st.Types {
		if t.ID != id {
			keptTypes = append(keptTypes, t)
		}
	}
	keptProducts := st.Products[:0:0]
	for _, p := range st.Products {
		if p.TypeID != id {
			keptProducts = append(keptProducts, p)
		}
	}
	st.Types = keptTypes
	st.Products = keptProducts
	return st
}

// ── Derived views ───────────────────────────────────────────────────────────

func (s *AdminStore) CategoryByID(id int) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.state.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

func (s *AdminStore) TypeByID(id int) (models.Type, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.state.Types {
		if t.ID == id {
			return t, true
		}
	}
	return models.Type{}, false
}

func (s *AdminStore) ProductByID(id int) (models.AdminProduct, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.state.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.AdminProduct{}, false
}

// TypesForCategory lists the types nested under one category.
func (s *AdminStore) TypesForCategory(categoryID int) []models.Type {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Type{}
	for _, t := range s.state.Types {
		if t.CategoryID == categoryID {
			out = append(out, t)
		}
	}
	return out
}

// ProductFilter narrows FilterProducts. Zero values mean "any".
type ProductFilter struct {
	CategoryID int
	TypeID     int
	Query      string
}

// FilterProducts returns the products matching the filter, with Query
// matched case-insensitively against the product name.
func (s *AdminStore) FilterProducts(f ProductFilter) []models.AdminProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.AdminProduct{}
	for _, p := range s.state.Products {
		if f.CategoryID != 0 && p.CategoryID != f.CategoryID {
			continue
		}
		if f.TypeID != 0 && p.TypeID != f.TypeID {
			continue
		}
		if f.Query != "" && !containsFold(p.Name, f.Query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// OrdersNewestFirst returns the orders sorted by creation time descending,
// the way the back-office lists them.
func (s *AdminStore) OrdersNewestFirst() []models.Order {
	s.mu.RLock()
	orders := make([]models.Order, len(s.state.Orders))
	copy(orders, s.state.Orders)
	s.mu.RUnlock()
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt > orders[j].CreatedAt
	})
	return orders
}

func replaceCategory(list []models.Category, c models.Category) []models.Category {
	for i := range list {
		if list[i].ID == c.ID {
			list[i] = c
			break
		}
	}
	return list
}

func replaceType(list []models.Type, t models.Type) []models.Type {
	for i := range list {
		if list[i].ID == t.ID {
			list[i] = t
			break
		}
	}
	return list
}

func copyState(st AdminState) AdminState {
	out := AdminState{
		Categories: make([]models.Category, len(st.Categories)),
		Types:      make([]models.Type, len(st.Types)),
		Products:   make([]models.AdminProduct, len(st.Products)),
		Orders:     make([]models.Order, len(st.Orders)),
	}
	copy(out.Categories, st.Categories)
	copy(out.Types, st.Types)
	copy(out.Products, st.Products)
	copy(out.Orders, st.Orders)
	return out
}
