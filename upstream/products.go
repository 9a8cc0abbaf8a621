package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/nordixdotma/ayounioptic/models"
)

// FetchProducts retrieves products (GET /products), optionally narrowed by
// query parameters.
func (c *Client) FetchProducts(ctx context.Context, params map[string]string) ([]models.Product, error) {
	path := "/products"
	if len(params) > 0 {
		query := url.Values{}
		for key, value := range params {
			query.Set(key, value)
		}
		path += "?" + query.Encode()
	}
	var out []models.Product
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchProduct retrieves one product (GET /products/{id}).
func (c *Client) FetchProduct(ctx context.Context, id int) (models.Product, error) {
	var out models.Product
	err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), &out)
	return out, err
}

type CreateProductParams struct {
	Name           string
	Price          float64
	Description    string
	SousCategoryID int
	Images         []FormFile
}

// CreateProduct creates a product (POST /products, multipart with name +
// price + description + sousCategoryId and one images part per file).
func (c *Client) CreateProduct(ctx context.Context, p CreateProductParams) (models.Product, error) {
	fields := []formField{
		{key: "name", value: p.Name},
		{key: "price", value: strconv.FormatFloat(p.Price, 'f', -1, 64)},
		{key: "description", value: p.Description},
		{key: "sousCategoryId", value: strconv.Itoa(p.SousCategoryID)},
	}
	for i := range p.Images {
		fields = append(fields, formField{key: "images", file: &p.Images[i]})
	}
	var out models.Product
	err := c.submitForm(ctx, "POST", "/products", fields, &out)
	return out, err
}

type UpdateProductParams struct {
	Name           *string
	Price          *float64
	Description    *string
	SousCategoryID *int
	Images         []FormFile
}

// UpdateProduct updates a product (PUT /products/{id}).
func (c *Client) UpdateProduct(ctx context.Context, id int, p UpdateProductParams) (models.Product, error) {
	var fields []formField
	if p.Name != nil {
		fields = append(fields, formField{key: "name", value: *p.Name})
	}
	if p.Price != nil {
		fields = append(fields, formField{key: "price", value: strconv.FormatFloat(*p.Price, 'f', -1, 64)})
	}
	if p.Description != nil {
		fields = append(fields, formField{key: "description", value: *p.Description})
	}
	if p.SousCategoryID != nil {
		fields = append(fields, formField{key: "sousCategoryId", value: strconv.Itoa(*p.SousCategoryID)})
	}
	for i := range p.Images {
		fields = append(fields, formField{key: "images", file: &p.Images[i]})
	}
	var out models.Product
	err := c.submitForm(ctx, "PUT", fmt.Sprintf("/products/%d", id), fields, &out)
	return out, err
}

// DeleteProduct deletes a product (DELETE /products/{id}).
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/products/%d", id))
}
