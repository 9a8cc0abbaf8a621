package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordixdotma/ayounioptic/models"
	"github.com/nordixdotma/ayounioptic/store"
	"github.com/nordixdotma/ayounioptic/upstream"
)

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

func newTestService(t *testing.T, handler http.Handler) (*AdminService, *store.AdminStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	st := store.NewAdminStore(newMemPersister(), testLogger())
	return NewAdminService(upstream.New(srv.URL), st, testLogger()), st
}

func pngFile() *upstream.FormFile {
	return &upstream.FormFile{Name: "image.png", Content: strings.NewReader("png")}
}

func TestLoadAllMapsWireShapes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Category{{ID: 1, Name: "Lunettes de vue"}})
	})
	mux.HandleFunc("/sousCategories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.SousCategory{{ID: 10, Name: "Homme", CategoryID: 1}})
	})
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Product{
			{ID: 100, Name: "Aviator", Price: 1200, Images: []string{"/a.jpg"}, SousCategoryID: 10},
		})
	})
	mux.HandleFunc("/commandes", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Commande{
			{ID: 7, ClientName: "Amine", Products: []models.OrderProductRef{{ID: 100, Quantity: 2}}, Status: "En attente"},
		})
	})

	svc, st := newTestService(t, mux)
	require.NoError(t, svc.LoadAll(context.Background()))

	state := st.State()
	require.Len(t, state.Categories, 1)
	require.Len(t, state.Types, 1)
	require.Len(t, state.Products, 1)
	require.Len(t, state.Orders, 1)

	// The product's category is derived through its type.
	assert.Equal(t, 1, state.Products[0].CategoryID)
	assert.Equal(t, 10, state.Products[0].TypeID)

	// The commande is resolved against the freshly loaded catalog.
	assert.Equal(t, "Aviator", state.Orders[0].Items[0].Name)
	assert.Equal(t, 2400.0, state.Orders[0].TotalPrice)
	assert.Equal(t, models.OrderStatusPending, state.Orders[0].Status)
}

func TestLoadAllSectionsFailIndependently(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Category{{ID: 1, Name: "Lunettes de vue"}})
	})
	mux.HandleFunc("/sousCategories", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Product{})
	})
	mux.HandleFunc("/commandes", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Commande{})
	})

	svc, st := newTestService(t, mux)
	st.SetTypes([]models.Type{{ID: 10, Name: "Homme", CategoryID: 1}})

	err := svc.LoadAll(context.Background())
	require.Error(t, err)

	state := st.State()
	// Categories still refreshed; types kept their last known value.
	assert.Len(t, state.Categories, 1)
	assert.Len(t, state.Types, 1)
}

func TestCreateCategoryValidatesBeforeNetwork(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := svc.CreateCategory(context.Background(), "", pngFile())
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.CreateCategory(context.Background(), "Lunettes", nil)
	assert.ErrorIs(t, err, ErrImageRequired)
}

func TestCreateCategoryDispatchesAfterSuccess(t *testing.T) {
	svc, st := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Category{ID: 5, Name: "Lentilles"})
	}))

	created, err := svc.CreateCategory(context.Background(), "Lentilles", pngFile())
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	require.Len(t, st.State().Categories, 1)
}

func TestBackendFailureLeavesStoreUntouched(t *testing.T) {
	svc, st := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	st.SetCategories([]models.Category{{ID: 1, Name: "Lunettes de vue"}})

	_, err := svc.CreateCategory(context.Background(), "Lentilles", pngFile())
	require.Error(t, err)
	assert.Len(t, st.State().Categories, 1)

	err = svc.DeleteCategory(context.Background(), 1)
	require.Error(t, err)
	assert.Len(t, st.State().Categories, 1)
}

func TestDeleteCategoryCascadesLocally(t *testing.T) {
	svc, st := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	st.SetCategories([]models.Category{{ID: 1}})
	st.SetTypes([]models.Type{{ID: 10, CategoryID: 1}})
	st.SetProducts([]models.AdminProduct{{ID: 100, CategoryID: 1, TypeID: 10}})

	require.NoError(t, svc.DeleteCategory(context.Background(), 1))

	state := st.State()
	assert.Empty(t, state.Categories)
	assert.Empty(t, state.Types)
	assert.Empty(t, state.Products)
}

func TestCreateTypeRequiresExistingCategory(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := svc.CreateType(context.Background(), "Homme", 99, pngFile())
	assert.ErrorIs(t, err, ErrCategoryRequired)
}

func TestCreateProductDerivesCategoryAndKeepsClientFields(t *testing.T) {
	svc, st := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Product{
			ID:             100,
			Name:           "Aviator",
			Price:          1200,
			Images:         []string{"/uploads/a.jpg"},
			SousCategoryID: 10,
		})
	}))
	st.SetCategories([]models.Category{{ID: 1, Name: "Lunettes de vue"}})
	st.SetTypes([]models.Type{{ID: 10, Name: "Homme", CategoryID: 1}})

	created, err := svc.CreateProduct(context.Background(), ProductForm{
		Name:     "Aviator",
		Price:    1200,
		OldPrice: 1400,
		TypeID:   10,
		InStock:  true,
		Images:   []upstream.FormFile{*pngFile()},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, created.CategoryID)
	assert.Equal(t, 1400.0, created.OldPrice)
	assert.True(t, created.InStock)
	assert.Equal(t, "/uploads/a.jpg", created.Image)
	require.Len(t, st.State().Products, 1)
}

func TestCreateProductValidation(t *testing.T) {
	svc, st := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	st.SetTypes([]models.Type{{ID: 10, CategoryID: 1}})

	_, err := svc.CreateProduct(context.Background(), ProductForm{Price: 100, TypeID: 10})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.CreateProduct(context.Background(), ProductForm{Name: "Aviator", TypeID: 10})
	assert.ErrorIs(t, err, ErrPriceInvalid)

	_, err = svc.CreateProduct(context.Background(), ProductForm{Name: "Aviator", Price: 100})
	assert.ErrorIs(t, err, ErrTypeRequired)

	_, err = svc.CreateProduct(context.Background(), ProductForm{Name: "Aviator", Price: 100, TypeID: 10})
	assert.ErrorIs(t, err, ErrImageRequired)
}

func TestUpdateOrderStatusSendsFrenchLabel(t *testing.T) {
	var gotStatus string
	svc, st := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/commandes/7", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotStatus = r.FormValue("status")
		json.NewEncoder(w).Encode(models.Commande{ID: 7, Status: gotStatus})
	}))
	st.SetOrders([]models.Order{{ID: 7, Status: models.OrderStatusPending}})

	require.NoError(t, svc.UpdateOrderStatus(context.Background(), 7, models.OrderStatusCompleted))
	assert.Equal(t, "Terminée", gotStatus)
	assert.Equal(t, models.OrderStatusCompleted, st.State().Orders[0].Status)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	err := svc.UpdateOrderStatus(context.Background(), 7, models.OrderStatus("shipped"))
	assert.ErrorIs(t, err, ErrStatusInvalid)
}
