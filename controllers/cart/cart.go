package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nordixdotma/ayounioptic/models"
	"github.com/nordixdotma/ayounioptic/services"
	"github.com/nordixdotma/ayounioptic/store"
	"github.com/nordixdotma/ayounioptic/upstream"
)

// Handler owns the per-session carts, keyed by an opaque id handed out at
// creation. Carts live in memory only; nothing durable exists until
// checkout posts a commande.
type Handler struct {
	mu       sync.RWMutex
	carts    map[string]*store.CartStore
	admin    *store.AdminStore
	checkout *services.CheckoutService
	log      *logrus.Logger
}

func NewHandler(admin *store.AdminStore, checkout *services.CheckoutService, log *logrus.Logger) *Handler {
	return &Handler{
		carts:    make(map[string]*store.CartStore),
		admin:    admin,
		checkout: checkout,
		log:      log,
	}
}

// POST /cart
func (h *Handler) CreateCart(c *gin.Context) {
	id := uuid.NewString()
	cart := store.NewCartStore()

	h.mu.Lock()
	h.carts[id] = cart
	h.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"cart_id": id, "cart": cart.State()})
}

// GET /cart/:cartID
func (h *Handler) GetCart(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cart.State())
}

// POST /cart/:cartID/items
// Multipart form: product_id, quantity, plus optional size, color,
// glass_type and a prescription file. Only the prescription's file name is
// kept. Adding an id already in the cart increments that line's quantity.
func (h *Handler) AddItem(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(c.PostForm("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit invalide."})
		return
	}
	quantity := 1
	if q := c.PostForm("quantity"); q != "" {
		quantity, err = strconv.Atoi(q)
		if err != nil || quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide."})
			return
		}
	}

	product, found := h.admin.ProductByID(productID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable."})
		return
	}

	item := models.CartItem{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		OldPrice:  product.OldPrice,
		Image:     product.Image,
		Images:    product.Images,
		InStock:   product.InStock,
		Quantity:  quantity,
		Size:      c.PostForm("size"),
		Color:     c.PostForm("color"),
		GlassType: c.PostForm("glass_type"),
	}
	if category, ok := h.admin.CategoryByID(product.CategoryID); ok {
		item.Category = category.Name
	}
	if typ, ok := h.admin.TypeByID(product.TypeID); ok {
		item.Type = typ.Name
	}
	if file, err := c.FormFile("prescription"); err == nil {
		item.PrescriptionFileName = file.Filename
	}

	cart.AddItem(item)
	c.JSON(http.StatusOK, cart.State())
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// PUT /cart/:cartID/items/:productID
// Sets the line's quantity, clamped at 1: removing a line takes an
// explicit DELETE, never a decrement past the floor.
func (h *Handler) UpdateQuantity(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}
	productID, err := strconv.Atoi(c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit invalide."})
		return
	}
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide."})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	cart.UpdateQuantity(productID, req.Quantity)
	c.JSON(http.StatusOK, cart.State())
}

// DELETE /cart/:cartID/items/:productID
func (h *Handler) RemoveItem(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}
	productID, err := strconv.Atoi(c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit invalide."})
		return
	}
	cart.RemoveItem(productID)
	c.JSON(http.StatusOK, cart.State())
}

// DELETE /cart/:cartID
func (h *Handler) ClearCart(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}
	cart.Clear()
	c.JSON(http.StatusOK, cart.State())
}

// POST /cart/:cartID/open
func (h *Handler) OpenCart(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}
	cart.Open()
	c.JSON(http.StatusOK, cart.State())
}

// POST /cart/:cartID/close
func (h *Handler) CloseCart(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}
	cart.Close()
	c.JSON(http.StatusOK, cart.State())
}

type checkoutRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Comment  string `json:"comment"`
}

// POST /cart/:cartID/checkout
func (h *Handler) Checkout(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formulaire invalide."})
		return
	}
	order, err := h.checkout.Submit(c.Request.Context(), cart, models.CustomerInfo{
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
		Comment:  req.Comment,
	})
	if err != nil {
		respondError(c, err, "Erreur lors de l'enregistrement de la commande. Veuillez réessayer.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Commande enregistrée avec succès! Nous vous contacterons bientôt.",
		"order":   order,
	})
}

// GET /cart/:cartID/whatsapp
func (h *Handler) WhatsAppLink(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}
	if cart.TotalItems() == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Votre panier est vide."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": h.checkout.WhatsAppLink(cart)})
}

// respondError maps an error to a response: backend failures get the
// operation's French failure message, everything else is a validation
// problem whose message is already user-facing.
func respondError(c *gin.Context, err error, failureMsg string) {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": failureMsg})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (h *Handler) cart(c *gin.Context) (*store.CartStore, bool) {
	id := c.Param("cartID")
	h.mu.RLock()
	cart, ok := h.carts[id]
	h.mu.RUnlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Panier introuvable."})
		return nil, false
	}
	return cart, true
}
