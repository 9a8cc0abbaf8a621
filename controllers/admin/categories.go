package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nordixdotma/ayounioptic/upstream"
)

// GET /admin/categories
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Store().State().Categories)
}

// POST /admin/categories
// Multipart form: name + image.
func (h *Handler) CreateCategory(c *gin.Context) {
	name := c.PostForm("name")
	var image *upstream.FormFile
	if fh, err := c.FormFile("image"); err == nil {
		image, err = imageFormFile(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	created, err := h.service.CreateCategory(c.Request.Context(), name, image)
	if err != nil {
		respondError(c, err, "Échec de l'ajout de la catégorie.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Catégorie ajoutée avec succès.", "category": created})
}

// PUT /admin/categories/:id
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie invalide."})
		return
	}
	name := c.PostForm("name")
	var image *upstream.FormFile
	if fh, err := c.FormFile("image"); err == nil {
		image, err = imageFormFile(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	updated, err := h.service.UpdateCategory(c.Request.Context(), id, name, image)
	if err != nil {
		respondError(c, err, "Échec de la mise à jour de la catégorie.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catégorie mise à jour avec succès.", "category": updated})
}

// DELETE /admin/categories/:id
// Deleting a category also drops its types and their products locally.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie invalide."})
		return
	}
	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err, "Échec de la suppression de la catégorie.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catégorie supprimée avec succès."})
}
