package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nordixdotma/ayounioptic/models"
)

// FetchCommandes retrieves all orders (GET /commandes).
func (c *Client) FetchCommandes(ctx context.Context) ([]models.Commande, error) {
	var out []models.Commande
	if err := c.getJSON(ctx, "/commandes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchCommande retrieves one order (GET /commandes/{id}).
func (c *Client) FetchCommande(ctx context.Context, id int) (models.Commande, error) {
	var out models.Commande
	err := c.getJSON(ctx, fmt.Sprintf("/commandes/%d", id), &out)
	return out, err
}

type CreateCommandeParams struct {
	ClientName  string
	ClientPhone string
	Image       *FormFile
	Products    []models.OrderProductRef
	Status      string
}

// CreateCommande creates an order (POST /commandes, multipart with
// client_name + client_phone + optional image + products as a JSON-encoded
// array of {id, quantity} + optional status carrying the French label).
func (c *Client) CreateCommande(ctx context.Context, p CreateCommandeParams) (models.Commande, error) {
	products, err := json.Marshal(p.Products)
	if err != nil {
		return models.Commande{}, err
	}
	fields := []formField{
		{key: "client_name", value: p.ClientName},
		{key: "client_phone", value: p.ClientPhone},
	}
	if p.Image != nil {
		fields = append(fields, formField{key: "image", file: p.Image})
	}
	fields = append(fields, formField{key: "products", value: string(products)})
	if p.Status != "" {
		fields = append(fields, formField{key: "status", value: p.Status})
	}
	var out models.Commande
	err = c.submitForm(ctx, "POST", "/commandes", fields, &out)
	return out, err
}

type UpdateCommandeParams struct {
	ClientName  *string
	ClientPhone *string
	Image       *FormFile
	Products    []models.OrderProductRef
	Status      *string
}

// UpdateCommande updates an order (PUT /commandes/{id}); nil fields are
// left out of the form.
func (c *Client) UpdateCommande(ctx context.Context, id int, p UpdateCommandeParams) (models.Commande, error) {
	var fields []formField
	if p.ClientName != nil {
		fields = append(fields, formField{key: "client_name", value: *p.ClientName})
	}
	if p.ClientPhone != nil {
		fields = append(fields, formField{key: "client_phone", value: *p.ClientPhone})
	}
	if p.Image != nil {
		fields = append(fields, formField{key: "image", file: p.Image})
	}
	if p.Products != nil {
		products, err := json.Marshal(p.Products)
		if err != nil {
			return models.Commande{}, err
		}
		fields = append(fields, formField{key: "products", value: string(products)})
	}
	if p.Status != nil {
		fields = append(fields, formField{key: "status", value: *p.Status})
	}
	var out models.Commande
	err := c.submitForm(ctx, "PUT", fmt.Sprintf("/commandes/%d", id), fields, &out)
	return out, err
}

// DeleteCommande deletes an order (DELETE /commandes/{id}).
func (c *Client) DeleteCommande(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/commandes/%d", id))
}
