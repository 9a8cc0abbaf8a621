package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nordixdotma/ayounioptic/upstream"
)

// GET /admin/types
func (h *Handler) ListTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Store().State().Types)
}

// POST /admin/types
// Multipart form: name + categoryId + image. The parent category must
// already exist.
func (h *Handler) CreateType(c *gin.Context) {
	name := c.PostForm("name")
	categoryID, err := strconv.Atoi(c.PostForm("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez sélectionner une catégorie."})
		return
	}
	var image *upstream.FormFile
	if fh, err := c.FormFile("image"); err == nil {
		image, err = imageFormFile(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	created, err := h.service.CreateType(c.Request.Context(), name, categoryID, image)
	if err != nil {
		respondError(c, err, "Échec de l'ajout du type.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Type ajouté avec succès.", "type": created})
}

// PUT /admin/types/:id
func (h *Handler) UpdateType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type invalide."})
		return
	}
	name := c.PostForm("name")
	categoryID, err := strconv.Atoi(c.PostForm("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez sélectionner une catégorie."})
		return
	}
	var image *upstream.FormFile
	if fh, err := c.FormFile("image"); err == nil {
		image, err = imageFormFile(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	updated, err := h.service.UpdateType(c.Request.Context(), id, name, categoryID, image)
	if err != nil {
		respondError(c, err, "Échec de la mise à jour du type.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Type mis à jour avec succès.", "type": updated})
}

// DELETE /admin/types/:id
// Deleting a type also drops its products locally.
func (h *Handler) DeleteType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type invalide."})
		return
	}
	if err := h.service.DeleteType(c.Request.Context(), id); err != nil {
		respondError(c, err, "Échec de la suppression du type.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Type supprimé avec succès."})
}
