package upstream

import (
	"context"
	"fmt"

	"github.com/nordixdotma/ayounioptic/models"
)

// FetchCategories retrieves the full category list (GET /categories).
func (c *Client) FetchCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.getJSON(ctx, "/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchCategory retrieves one category (GET /categories/{id}).
func (c *Client) FetchCategory(ctx context.Context, id int) (models.Category, error) {
	var out models.Category
	err := c.getJSON(ctx, fmt.Sprintf("/categories/%d", id), &out)
	return out, err
}

type CreateCategoryParams struct {
	Name  string
	Image FormFile
}

// CreateCategory creates a category (POST /categories, multipart with
// name + image).
func (c *Client) CreateCategory(ctx context.Context, p CreateCategoryParams) (models.Category, error) {
	fields := []formField{
		{key: "name", value: p.Name},
		{key: "image", file: &p.Image},
	}
	var out models.Category
	err := c.submitForm(ctx, "POST", "/categories", fields, &out)
	return out, err
}

type UpdateCategoryParams struct {
	Name  *string
	Image *FormFile
}

// UpdateCategory updates a category (PUT /categories/{id}); nil fields are
// left out of the form.
func (c *Client) UpdateCategory(ctx context.Context, id int, p UpdateCategoryParams) (models.Category, error) {
	var fields []formField
	if p.Name != nil {
		fields = append(fields, formField{key: "name", value: *p.Name})
	}
	if p.Image != nil {
		fields = append(fields, formField{key: "image", file: p.Image})
	}
	var out models.Category
	err := c.submitForm(ctx, "PUT", fmt.Sprintf("/categories/%d", id), fields, &out)
	return out, err
}

// DeleteCategory deletes a category (DELETE /categories/{id}).
func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/categories/%d", id))
}
