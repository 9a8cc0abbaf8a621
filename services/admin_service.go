// Package services orchestrates the stores, the upstream client and the
// local snapshot store. Every mutation follows the same protocol: validate
// first, call the backend, and only dispatch to the local store once the
// backend has answered 2xx. Failures leave the store untouched.
package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/nordixdotma/ayounioptic/models"
	"github.com/nordixdotma/ayounioptic/store"
	"github.com/nordixdotma/ayounioptic/upstream"
)

// Validation failures surface in French, matching what the back-office
// shows its operators.
var (
	ErrNameRequired     = errors.New("Le nom est requis.")
	ErrImageRequired    = errors.New("Une image est requise.")
	ErrPriceInvalid     = errors.New("Le prix doit être supérieur à 0.")
	ErrCategoryRequired = errors.New("Veuillez sélectionner une catégorie.")
	ErrTypeRequired     = errors.New("Veuillez sélectionner un type.")
	ErrStatusInvalid    = errors.New("Statut de commande invalide.")
)

type AdminService struct {
	client *upstream.Client
	store  *store.AdminStore
	log    *logrus.Logger
}

func NewAdminService(client *upstream.Client, st *store.AdminStore, log *logrus.Logger) *AdminService {
	return &AdminService{client: client, store: st, log: log}
}

// Store exposes the admin store for read-only consumers.
func (s *AdminService) Store() *store.AdminStore {
	return s.store
}

// LoadAll refreshes the four collections from the backend, replacing each
// one wholesale. Sections load independently: a failing section keeps its
// last known (possibly snapshot-seeded) state while the others refresh.
// Types load before products and products before orders because the
// mapping derives category ids and order items from them.
func (s *AdminService) LoadAll(ctx context.Context) error {
	var errs []error

	if categories, err := s.client.FetchCategories(ctx); err != nil {
		s.log.WithError(err).Error("failed to load categories")
		errs = append(errs, err)
	} else {
		s.store.SetCategories(categories)
	}

	if sousCategories, err := s.client.FetchSousCategories(ctx); err != nil {
		s.log.WithError(err).Error("failed to load sous-categories")
		errs = append(errs, err)
	} else {
		types := make([]models.Type, 0, len(sousCategories))
		for _, sc := range sousCategories {
			types = append(types, models.SousCategoryToType(sc))
		}
		s.store.SetTypes(types)
	}

	if products, err := s.client.FetchProducts(ctx, nil); err != nil {
		s.log.WithError(err).Error("failed to load products")
		errs = append(errs, err)
	} else {
		types := s.store.State().Types
		mapped := make([]models.AdminProduct, 0, len(products))
		for _, p := range products {
			mapped = append(mapped, models.ProductToAdmin(p, types))
		}
		s.store.SetProducts(mapped)
	}

	if commandes, err := s.client.FetchCommandes(ctx); err != nil {
		s.log.WithError(err).Error("failed to load commandes")
		errs = append(errs, err)
	} else {
		state := s.store.State()
		orders := make([]models.Order, 0, len(commandes))
		for _, c := range commandes {
			orders = append(orders, models.CommandeToOrder(c, state.Products, state.Categories, state.Types))
		}
		s.store.SetOrders(orders)
	}

	return errors.Join(errs...)
}

// ── Categories ──────────────────────────────────────────────────────────────

func (s *AdminService) CreateCategory(ctx context.Context, name string, image *upstream.FormFile) (models.Category, error) {
	if name == "" {
		return models.Category{}, ErrNameRequired
	}
	if image == nil {
		return models.Category{}, ErrImageRequired
	}
	created, err := s.client.CreateCategory(ctx, upstream.CreateCategoryParams{Name: name, Image: *image})
	if err != nil {
		return models.Category{}, err
	}
	s.store.AddCategory(created)
	return created, nil
}

func (s *AdminService) UpdateCategory(ctx context.Context, id int, name string, image *upstream.FormFile) (models.Category, error) {
	if name == "" {
		return models.Category{}, ErrNameRequired
	}
	updated, err := s.client.UpdateCategory(ctx, id, upstream.UpdateCategoryParams{Name: &name, Image: image})
	if err != nil {
		return models.Category{}, err
	}
	s.store.UpdateCategory(updated)
	return updated, nil
}

// DeleteCategory deletes the category upstream and then cascades locally:
// the category, its types and every product under either disappear in one
// store dispatch.
func (s *AdminService) DeleteCategory(ctx context.Context, id int) error {
	if err := s.client.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.store.DeleteCategory(id)
	return nil
}

// ── Types (sous-categories) ─────────────────────────────────────────────────

func (s *AdminService) CreateType(ctx context.Context, name string, categoryID int, image *upstream.FormFile) (models.Type, error) {
	if name == "" {
		return models.Type{}, ErrNameRequired
	}
	if image == nil {
		return models.Type{}, ErrImageRequired
	}
	if _, ok := s.store.CategoryByID(categoryID); !ok {
		return models.Type{}, ErrCategoryRequired
	}
	created, err := s.client.CreateSousCategory(ctx, upstream.CreateSousCategoryParams{
		Name:       name,
		CategoryID: categoryID,
		Image:      *image,
	})
	if err != nil {
		return models.Type{}, err
	}
	t := models.SousCategoryToType(created)
	s.store.AddType(t)
	return t, nil
}

func (s *AdminService) UpdateType(ctx context.Context, id int, name string, categoryID int, image *upstream.FormFile) (models.Type, error) {
	if name == "" {
		return models.Type{}, ErrNameRequired
	}
	if _, ok := s.store.CategoryByID(categoryID); !ok {
		return models.Type{}, ErrCategoryRequired
	}
	updated, err := s.client.UpdateSousCategory(ctx, id, upstream.UpdateSousCategoryParams{
		Name:       &name,
		CategoryID: &categoryID,
		Image:      image,
	})
	if err != nil {
		return models.Type{}, err
	}
	t := models.SousCategoryToType(updated)
	s.store.UpdateType(t)
	return t, nil
}

// DeleteType deletes the sous-category upstream, then drops the type and
// its products from the local store.
func (s *AdminService) DeleteType(ctx context.Context, id int) error {
	if err := s.client.DeleteSousCategory(ctx, id); err != nil {
		return err
	}
	s.store.DeleteType(id)
	return nil
}

// ── Products ────────────────────────────────────────────────────────────────

// ProductForm is what the back-office product dialogs collect. OldPrice
// and InStock stay client-side; the backend does not track them.
type ProductForm struct {
	Name        string
	Price       float64
	OldPrice    float64
	Description string
	TypeID      int
	InStock     bool
	Images      []upstream.FormFile
}

func (f ProductForm) validate() error {
	if f.Name == "" {
		return ErrNameRequired
	}
	if f.Price <= 0 {
		return ErrPriceInvalid
	}
	if f.TypeID == 0 {
		return ErrTypeRequired
	}
	return nil
}

func (s *AdminService) CreateProduct(ctx context.Context, form ProductForm) (models.AdminProduct, error) {
	if err := form.validate(); err != nil {
		return models.AdminProduct{}, err
	}
	if len(form.Images) == 0 {
		return models.AdminProduct{}, ErrImageRequired
	}
	typ, ok := s.store.TypeByID(form.TypeID)
	if !ok {
		return models.AdminProduct{}, ErrTypeRequired
	}
	created, err := s.client.CreateProduct(ctx, upstream.CreateProductParams{
		Name:           form.Name,
		Price:          form.Price,
		Description:    form.Description,
		SousCategoryID: form.TypeID,
		Images:         form.Images,
	})
	if err != nil {
		return models.AdminProduct{}, err
	}
	product := s.adminProductFrom(created, typ, form)
	s.store.AddProduct(product)
	return product, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, id int, form ProductForm) (models.AdminProduct, error) {
	if err := form.validate(); err != nil {
		return models.AdminProduct{}, err
	}
	typ, ok := s.store.TypeByID(form.TypeID)
	if !ok {
		return models.AdminProduct{}, ErrTypeRequired
	}
	updated, err := s.client.UpdateProduct(ctx, id, upstream.UpdateProductParams{
		Name:           &form.Name,
		Price:          &form.Price,
		Description:    &form.Description,
		SousCategoryID: &form.TypeID,
		Images:         form.Images,
	})
	if err != nil {
		return models.AdminProduct{}, err
	}
	product := s.adminProductFrom(updated, typ, form)
	s.store.UpdateProduct(product)
	return product, nil
}

// adminProductFrom merges the backend's echo with the client-side-only
// fields. CategoryID always comes from the selected type, keeping the
// denormalized pair consistent.
func (s *AdminService) adminProductFrom(p models.Product, typ models.Type, form ProductForm) models.AdminProduct {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	oldPrice := form.OldPrice
	if oldPrice == 0 {
		oldPrice = p.Price
	}
	return models.AdminProduct{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		OldPrice:    oldPrice,
		Image:       image,
		Images:      p.Images,
		CategoryID:  typ.CategoryID,
		TypeID:      p.SousCategoryID,
		InStock:     form.InStock,
		Description: p.Description,
	}
}

func (s *AdminService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.client.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.store.DeleteProduct(id)
	return nil
}

// ── Orders ──────────────────────────────────────────────────────────────────

// UpdateOrderStatus pushes the French label upstream and, on success,
// patches only the status field locally.
func (s *AdminService) UpdateOrderStatus(ctx context.Context, id int, status models.OrderStatus) error {
	if !status.Valid() {
		return ErrStatusInvalid
	}
	label := status.BackendLabel()
	if _, err := s.client.UpdateCommande(ctx, id, upstream.UpdateCommandeParams{Status: &label}); err != nil {
		return err
	}
	s.store.UpdateOrderStatus(id, status)
	return nil
}
