package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nordixdotma/ayounioptic/services"
)

// GET /admin/products
func (h *Handler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Store().State().Products)
}

// productForm parses the shared multipart fields of the create and update
// dialogs: name, price, oldPrice, description, typeId, inStock, and one
// images part per file.
func (h *Handler) productForm(c *gin.Context) (services.ProductForm, bool) {
	var form services.ProductForm
	form.Name = c.PostForm("name")
	form.Description = c.PostForm("description")
	form.InStock = true

	if raw := c.PostForm("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Le prix doit être supérieur à 0."})
			return form, false
		}
		form.Price = price
	}
	if raw := c.PostForm("oldPrice"); raw != "" {
		oldPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "L'ancien prix est invalide."})
			return form, false
		}
		form.OldPrice = oldPrice
	}
	if raw := c.PostForm("typeId"); raw != "" {
		typeID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez sélectionner un type."})
			return form, false
		}
		form.TypeID = typeID
	}
	if raw := c.PostForm("inStock"); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Disponibilité invalide."})
			return form, false
		}
		form.InStock = inStock
	}

	multipartForm, err := c.MultipartForm()
	if err == nil {
		for _, fh := range multipartForm.File["images"] {
			image, err := imageFormFile(fh)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return form, false
			}
			form.Images = append(form.Images, *image)
		}
	}
	return form, true
}

// POST /admin/products
func (h *Handler) CreateProduct(c *gin.Context) {
	form, ok := h.productForm(c)
	if !ok {
		return
	}
	created, err := h.service.CreateProduct(c.Request.Context(), form)
	if err != nil {
		respondError(c, err, "Échec de l'ajout du produit.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Produit ajouté avec succès.", "product": created})
}

// PUT /admin/products/:id
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit invalide."})
		return
	}
	form, ok := h.productForm(c)
	if !ok {
		return
	}
	updated, err := h.service.UpdateProduct(c.Request.Context(), id, form)
	if err != nil {
		respondError(c, err, "Échec de la mise à jour du produit.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produit mis à jour avec succès.", "product": updated})
}

// DELETE /admin/products/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit invalide."})
		return
	}
	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err, "Échec de la suppression du produit.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé avec succès."})
}
