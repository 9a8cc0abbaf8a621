package models

// CartItem is one line of a shopper's cart. Uniqueness is by product ID:
// adding the same product again increments the existing entry's quantity.
// Customization travels with the line; only the prescription file's name is
// kept, never its content.
type CartItem struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	Price                float64  `json:"price"`
	OldPrice             float64  `json:"oldPrice"`
	Image                string   `json:"image"`
	Images               []string `json:"images"`
	Category             string   `json:"category"`
	Type                 string   `json:"type"`
	InStock              bool     `json:"inStock"`
	Quantity             int      `json:"quantity"`
	PrescriptionFileName string   `json:"prescriptionFileName,omitempty"`
	Size                 string   `json:"size,omitempty"`
	Color                string   `json:"color,omitempty"`
	GlassType            string   `json:"glassType,omitempty"`
}

// OrderSnapshotItem is the checkout-time record of one cart line, kept in
// the local store alongside the commande sent upstream.
type OrderSnapshotItem struct {
	ID                   int     `json:"id"`
	Name                 string  `json:"name"`
	Price                float64 `json:"price"`
	Quantity             int     `json:"quantity"`
	Category             string  `json:"category"`
	Type                 string  `json:"type"`
	PrescriptionFileName string  `json:"prescriptionFileName,omitempty"`
	Size                 string  `json:"size,omitempty"`
	Color                string  `json:"color,omitempty"`
	GlassType            string  `json:"glassType,omitempty"`
}

// CustomerInfo is what the checkout form collects.
type CustomerInfo struct {
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address"`
	Comment  string `json:"comment"`
}

// OrderSnapshot is the full cart state captured at checkout time.
type OrderSnapshot struct {
	ID           string              `json:"id"`
	Date         string              `json:"date"`
	CustomerInfo CustomerInfo        `json:"customerInfo"`
	Items        []OrderSnapshotItem `json:"items"`
	TotalPrice   float64             `json:"totalPrice"`
	TotalItems   int                 `json:"totalItems"`
}
