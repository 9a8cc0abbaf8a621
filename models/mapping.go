package models

import (
	"fmt"
	"time"
)

// This file normalizes backend wire shapes into the admin store's working
// copies. The rules come straight from how the back-office consumes the
// API: a product's category is always derived from its type, never picked
// independently, and missing fields get the defaults the UI assumed.

// SousCategoryToType strips a sous-category down to the admin Type shape.
func SousCategoryToType(sc SousCategory) Type {
	return Type{
		ID:         sc.ID,
		Name:       sc.Name,
		Image:      sc.Image,
		CategoryID: sc.CategoryID,
	}
}

// ProductToAdmin maps a backend product into the back-office shape. The
// category id is resolved through the product's sous-category; old price
// defaults to the price and stock to available since the backend tracks
// neither.
func ProductToAdmin(p Product, types []Type) AdminProduct {
	categoryID := 0
	for _, t := range types {
		if t.ID == p.SousCategoryID {
			categoryID = t.CategoryID
			break
		}
	}
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return AdminProduct{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		OldPrice:    p.Price,
		Image:       image,
		Images:      p.Images,
		CategoryID:  categoryID,
		TypeID:      p.SousCategoryID,
		InStock:     true,
		Description: p.Description,
	}
}

// CommandeToOrder resolves a commande's product refs against the cached
// catalog and derives the total. Refs to unknown products keep the order
// readable with a placeholder name and a zero price. Category and type
// labels are resolved by id the way the order detail view shows them.
func CommandeToOrder(c Commande, products []AdminProduct, categories []Category, types []Type) Order {
	findProduct := func(id int) *AdminProduct {
		for i := range c.ProductsDetails {
			if c.ProductsDetails[i].ID == id {
				p := ProductToAdmin(c.ProductsDetails[i], types)
				return &p
			}
		}
		for i := range products {
			if products[i].ID == id {
				return &products[i]
			}
		}
		return nil
	}
	categoryName := func(id int) string {
		for _, cat := range categories {
			if cat.ID == id {
				return cat.Name
			}
		}
		return ""
	}
	typeName := func(id int) string {
		for _, t := range types {
			if t.ID == id {
				return t.Name
			}
		}
		return ""
	}

	items := make([]CartItem, 0, len(c.Products))
	total := 0.0
	for _, ref := range c.Products {
		item := CartItem{
			ID:       ref.ID,
			Name:     fmt.Sprintf("Produit %d", ref.ID),
			Image:    c.Image,
			Images:   []string{},
			InStock:  true,
			Quantity: ref.Quantity,
		}
		if p := findProduct(ref.ID); p != nil {
			item.Name = p.Name
			item.Price = p.Price
			item.OldPrice = p.OldPrice
			item.Image = p.Image
			item.Images = p.Images
			item.Category = categoryName(p.CategoryID)
			item.Type = typeName(p.TypeID)
			item.InStock = p.InStock
		}
		total += item.Price * float64(item.Quantity)
		items = append(items, item)
	}

	createdAt := c.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().Format(time.RFC3339)
	}
	return Order{
		ID:            c.ID,
		CustomerName:  c.ClientName,
		CustomerEmail: "",
		CustomerPhone: c.ClientPhone,
		Items:         items,
		TotalPrice:    total,
		Status:        ParseOrderStatus(c.Status),
		CreatedAt:     createdAt,
	}
}
