package upstream

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nordixdotma/ayounioptic/models"
)

// FetchSousCategories retrieves all sous-categories (GET /sousCategories).
func (c *Client) FetchSousCategories(ctx context.Context) ([]models.SousCategory, error) {
	var out []models.SousCategory
	if err := c.getJSON(ctx, "/sousCategories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchSousCategory retrieves one sous-category (GET /sousCategories/{id}).
func (c *Client) FetchSousCategory(ctx context.Context, id int) (models.SousCategory, error) {
	var out models.SousCategory
	err := c.getJSON(ctx, fmt.Sprintf("/sousCategories/%d", id), &out)
	return out, err
}

type CreateSousCategoryParams struct {
	Name       string
	CategoryID int
	Image      FormFile
}

// CreateSousCategory creates a sous-category (POST /sousCategories,
// multipart with name + categoryId + image).
func (c *Client) CreateSousCategory(ctx context.Context, p CreateSousCategoryParams) (models.SousCategory, error) {
	fields := []formField{
		{key: "name", value: p.Name},
		{key: "categoryId", value: strconv.Itoa(p.CategoryID)},
		{key: "image", file: &p.Image},
	}
	var out models.SousCategory
	err := c.submitForm(ctx, "POST", "/sousCategories", fields, &out)
	return out, err
}

type UpdateSousCategoryParams struct {
	Name       *string
	CategoryID *int
	Image      *FormFile
}

// UpdateSousCategory updates a sous-category (PUT /sousCategories/{id}).
func (c *Client) UpdateSousCategory(ctx context.Context, id int, p UpdateSousCategoryParams) (models.SousCategory, error) {
	var fields []formField
	if p.Name != nil {
		fields = append(fields, formField{key: "name", value: *p.Name})
	}
	if p.CategoryID != nil {
		fields = append(fields, formField{key: "categoryId", value: strconv.Itoa(*p.CategoryID)})
	}
	if p.Image != nil {
		fields = append(fields, formField{key: "image", file: p.Image})
	}
	var out models.SousCategory
	err := c.submitForm(ctx, "PUT", fmt.Sprintf("/sousCategories/%d", id), fields, &out)
	return out, err
}

// DeleteSousCategory deletes a sous-category (DELETE /sousCategories/{id}).
func (c *Client) DeleteSousCategory(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/sousCategories/%d", id))
}
