package adminControllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GET /admin/products/export-excel
func (h *Handler) ExportProductsToExcel(c *gin.Context) {
	state := h.service.Store().State()

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Produits")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de l'export Excel."})
		return
	}

	headers := []string{"ID", "Nom", "Prix", "Ancien prix", "Catégorie", "Type", "En stock", "Description", "Images"}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		headerRow.AddCell().SetValue(header)
	}

	categoryName := func(id int) string {
		for _, cat := range state.Categories {
			if cat.ID == id {
				return cat.Name
			}
		}
		return "Inconnu"
	}
	typeName := func(id int) string {
		for _, t := range state.Types {
			if t.ID == id {
				return t.Name
			}
		}
		return "Inconnu"
	}

	for _, p := range state.Products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Price)
		row.AddCell().SetValue(p.OldPrice)
		row.AddCell().SetValue(categoryName(p.CategoryID))
		row.AddCell().SetValue(typeName(p.TypeID))
		row.AddCell().SetValue(p.InStock)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(strings.Join(p.Images, ","))
	}

	writeWorkbook(c, file, "produits")
}

// GET /admin/orders/export-excel
func (h *Handler) ExportOrdersToExcel(c *gin.Context) {
	orders := h.service.Store().OrdersNewestFirst()

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Commandes")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de l'export Excel."})
		return
	}

	headers := []string{"ID", "Client", "Téléphone", "Articles", "Total (DH)", "Statut", "Date"}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		headerRow.AddCell().SetValue(header)
	}

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(o.CustomerName)
		row.AddCell().SetValue(o.CustomerPhone)
		row.AddCell().SetValue(len(o.Items))
		row.AddCell().SetValue(o.TotalPrice)
		row.AddCell().SetValue(o.Status.BackendLabel())
		row.AddCell().SetValue(o.CreatedAt)
	}

	writeWorkbook(c, file, "commandes")
}

func writeWorkbook(c *gin.Context, file *xlsx.File, name string) {
	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de l'export Excel."})
	}
}
