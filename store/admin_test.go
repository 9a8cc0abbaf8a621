package store

import (
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordixdotma/ayounioptic/models"
)

// memPersister is an in-memory Persister for tests.
type memPersister struct {
	data map[string][]byte
}

func newMemPersister() *memPersister {
	return &memPersister{data: map[string][]byte{}}
}

func (m *memPersister) Save(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func (m *memPersister) Load(key string, v any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, v)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func seedStore(t *testing.T) *AdminStore {
	t.Helper()
	s := NewAdminStore(newMemPersister(), testLogger())
	s.SetCategories([]models.Category{
		{ID: 1, Name: "Lunettes de vue"},
		{ID: 2, Name: "Lunettes de soleil"},
	})
	s.SetTypes([]models.Type{
		{ID: 10, Name: "Homme", CategoryID: 1},
		{ID: 11, Name: "Femme", CategoryID: 1},
		{ID: 20, Name: "Sport", CategoryID: 2},
	})
	s.SetProducts([]models.AdminProduct{
		{ID: 100, Name: "Ray-Ban Aviator", Price: 1200, CategoryID: 1, TypeID: 10},
		{ID: 101, Name: "Oakley Holbrook", Price: 900, CategoryID: 1, TypeID: 11},
		{ID: 102, Name: "Persol 714", Price: 1500, CategoryID: 2, TypeID: 20},
	})
	return s
}

func TestDeleteCategoryCascades(t *testing.T) {
	s := seedStore(t)

	s.DeleteCategory(1)

	st := s.State()
	require.Len(t, st.Categories, 1)
	assert.Equal(t, 2, st.Categories[0].ID)
	// Types under category 1 are gone with it.
	require.Len(t, st.Types, 1)
	assert.Equal(t, 20, st.Types[0].ID)
	// So are products referencing the category or its types.
	require.Len(t, st.Products, 1)
	assert.Equal(t, 102, st.Products[0].ID)
}

func TestDeleteCategoryCascadeIsOneNotification(t *testing.T) {
	s := seedStore(t)
	var calls int
	s.Subscribe(func(st AdminState) {
		calls++
		// Subscribers never observe a half-applied cascade.
		assert.Len(t, st.Categories, 1)
		assert.Len(t, st.Types, 1)
		assert.Len(t, st.Products, 1)
	})

	s.DeleteCategory(1)
	assert.Equal(t, 1, calls)
}

func TestDeleteTypeCascades(t *testing.T) {
	s := seedStore(t)

	s.DeleteType(10)

	st := s.State()
	assert.Len(t, st.Categories, 2)
	require.Len(t, st.Types, 2)
	require.Len(t, st.Products, 2)
	for _, p := range st.Products {
		assert.NotEqual(t, 10, p.TypeID)
	}
}

func TestUpdateOrderStatusPatchesSingleField(t *testing.T) {
	s := NewAdminStore(newMemPersister(), testLogger())
	s.SetOrders([]models.Order{
		{ID: 1, CustomerName: "Amine", Status: models.OrderStatusPending, TotalPrice: 1200},
		{ID: 2, CustomerName: "Sara", Status: models.OrderStatusPending},
	})

	s.UpdateOrderStatus(1, models.OrderStatusCompleted)

	st := s.State()
	assert.Equal(t, models.OrderStatusCompleted, st.Orders[0].Status)
	assert.Equal(t, "Amine", st.Orders[0].CustomerName)
	assert.Equal(t, 1200.0, st.Orders[0].TotalPrice)
	assert.Equal(t, models.OrderStatusPending, st.Orders[1].Status)
}

func TestUpdateReplacesByID(t *testing.T) {
	s := seedStore(t)

	s.UpdateCategory(models.Category{ID: 1, Name: "Vue"})
	s.UpdateType(models.Type{ID: 10, Name: "Enfant", CategoryID: 1})
	s.UpdateProduct(models.AdminProduct{ID: 100, Name: "Aviator Classic", Price: 1100, CategoryID: 1, TypeID: 10})

	st := s.State()
	assert.Equal(t, "Vue", st.Categories[0].Name)
	assert.Equal(t, "Enfant", st.Types[0].Name)
	assert.Equal(t, 1100.0, st.Products[0].Price)
	// Unknown ids leave the collections untouched.
	s.UpdateCategory(models.Category{ID: 99, Name: "Fantôme"})
	assert.Len(t, s.State().Categories, 2)
}

func TestPersistenceAcrossRestart(t *testing.T) {
	p := newMemPersister()
	s := NewAdminStore(p, testLogger())
	s.SetCategories([]models.Category{{ID: 1, Name: "Lunettes de vue"}})
	s.SetProducts([]models.AdminProduct{{ID: 100, Name: "Aviator", CategoryID: 1}})

	// A fresh store over the same persister restores the snapshots.
	restored := NewAdminStore(p, testLogger())
	st := restored.State()
	require.Len(t, st.Categories, 1)
	assert.Equal(t, "Lunettes de vue", st.Categories[0].Name)
	require.Len(t, st.Products, 1)
	assert.Equal(t, "Aviator", st.Products[0].Name)
}

func TestCascadePersistsAllTouchedCollections(t *testing.T) {
	p := newMemPersister()
	s := NewAdminStore(p, testLogger())
	s.SetCategories([]models.Category{{ID: 1}})
	s.SetTypes([]models.Type{{ID: 10, CategoryID: 1}})
	s.SetProducts([]models.AdminProduct{{ID: 100, CategoryID: 1, TypeID: 10}})

	s.DeleteCategory(1)

	restored := NewAdminStore(p, testLogger())
	st := restored.State()
	assert.Empty(t, st.Categories)
	assert.Empty(t, st.Types)
	assert.Empty(t, st.Products)
}

func TestTypesForCategory(t *testing.T) {
	s := seedStore(t)
	types := s.TypesForCategory(1)
	require.Len(t, types, 2)
	assert.Empty(t, s.TypesForCategory(99))
}

func TestFilterProducts(t *testing.T) {
	s := seedStore(t)

	assert.Len(t, s.FilterProducts(ProductFilter{}), 3)
	assert.Len(t, s.FilterProducts(ProductFilter{CategoryID: 1}), 2)
	assert.Len(t, s.FilterProducts(ProductFilter{CategoryID: 1, TypeID: 11}), 1)

	byName := s.FilterProducts(ProductFilter{Query: "ray-ban"})
	require.Len(t, byName, 1)
	assert.Equal(t, 100, byName[0].ID)
}

func TestOrdersNewestFirst(t *testing.T) {
	s := NewAdminStore(newMemPersister(), testLogger())
	s.SetOrders([]models.Order{
		{ID: 1, CreatedAt: "2026-08-01T10:00:00Z"},
		{ID: 2, CreatedAt: "2026-08-15T10:00:00Z"},
		{ID: 3, CreatedAt: "2026-08-10T10:00:00Z"},
	})

	orders := s.OrdersNewestFirst()
	require.Len(t, orders, 3)
	assert.Equal(t, 2, orders[0].ID)
	assert.Equal(t, 3, orders[1].ID)
	assert.Equal(t, 1, orders[2].ID)
}

func TestLookupsByID(t *testing.T) {
	s := seedStore(t)

	c, ok := s.CategoryByID(1)
	require.True(t, ok)
	assert.Equal(t, "Lunettes de vue", c.Name)

	_, ok = s.TypeByID(999)
	assert.False(t, ok)

	p, ok := s.ProductByID(102)
	require.True(t, ok)
	assert.Equal(t, "Persol 714", p.Name)
}
