package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nordixdotma/ayounioptic/models"
)

// GET /admin/orders
func (h *Handler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Store().OrdersNewestFirst())
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /admin/orders/:id/status
// Accepts the back-office enum (pending|processing|completed|cancelled);
// the French label is pushed upstream, the local cache patched on success.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Commande invalide."})
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut de commande invalide."})
		return
	}
	status := models.OrderStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut de commande invalide."})
		return
	}
	if err := h.service.UpdateOrderStatus(c.Request.Context(), id, status); err != nil {
		respondError(c, err, "Échec de la mise à jour du statut.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Statut de la commande mis à jour."})
}

// POST /admin/refresh
// Re-fetches the four collections from the backend. On failure the store
// keeps its last known state; the error is only reported.
func (h *Handler) Refresh(c *gin.Context) {
	if err := h.service.LoadAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Impossible de charger les données."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Données rechargées avec succès."})
}

// GET /admin/local-orders
// The locally recorded checkout snapshots (never sent to the backend).
func (h *Handler) LocalOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.checkout.LocalOrders())
}
