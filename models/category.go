package models

// Category is the top-level product grouping (Homme, Femme).
// The wire shape matches the backend: timestamps come back as strings and
// the relation is only populated by some endpoints.
type Category struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	Image          string         `json:"image"`
	CreatedAt      string         `json:"createdAt,omitempty"`
	UpdatedAt      string         `json:"updatedAt,omitempty"`
	SousCategories []SousCategory `json:"sousCategories,omitempty"`
}

// SousCategory is the second-level grouping nested under a Category
// (Vue, Soleil). The admin side calls these "types".
type SousCategory struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	CategoryID int       `json:"categoryId"`
	CreatedAt  string    `json:"createdAt,omitempty"`
	UpdatedAt  string    `json:"updatedAt,omitempty"`
	Category   *Category `json:"category,omitempty"`
	Products   []Product `json:"products,omitempty"`
}

// Type is the admin store's working copy of a sous-category, stripped of
// relations.
type Type struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	CategoryID int    `json:"categoryId"`
}
