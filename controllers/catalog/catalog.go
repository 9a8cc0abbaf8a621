package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nordixdotma/ayounioptic/store"
)

// Handler serves the storefront's read-only views over the admin cache.
type Handler struct {
	store *store.AdminStore
}

func NewHandler(st *store.AdminStore) *Handler {
	return &Handler{store: st}
}

// GET /catalog/categories
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.State().Categories)
}

// GET /catalog/types?category_id=N
func (h *Handler) ListTypes(c *gin.Context) {
	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie invalide."})
			return
		}
		c.JSON(http.StatusOK, h.store.TypesForCategory(categoryID))
		return
	}
	c.JSON(http.StatusOK, h.store.State().Types)
}

// GET /catalog/products?category_id=N&type_id=N&q=term
func (h *Handler) ListProducts(c *gin.Context) {
	var filter store.ProductFilter
	var err error
	if raw := c.Query("category_id"); raw != "" {
		if filter.CategoryID, err = strconv.Atoi(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie invalide."})
			return
		}
	}
	if raw := c.Query("type_id"); raw != "" {
		if filter.TypeID, err = strconv.Atoi(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Type invalide."})
			return
		}
	}
	filter.Query = c.Query("q")
	c.JSON(http.StatusOK, h.store.FilterProducts(filter))
}

// GET /catalog/products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit invalide."})
		return
	}
	product, ok := h.store.ProductByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable."})
		return
	}
	c.JSON(http.StatusOK, product)
}
