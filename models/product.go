package models

// Product is the backend wire shape. Products hang off a sous-category;
// the parent category is only reachable through it.
type Product struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Price          float64       `json:"price"`
	Description    string        `json:"description"`
	Images         []string      `json:"images"`
	SousCategoryID int           `json:"sousCategoryId"`
	CreatedAt      string        `json:"createdAt,omitempty"`
	UpdatedAt      string        `json:"updatedAt,omitempty"`
	SousCategory   *SousCategory `json:"sousCategory,omitempty"`
}

// AdminProduct is the back-office working copy. CategoryID is denormalized
// from the product's type: TypeID must reference a Type whose CategoryID
// equals this CategoryID.
type AdminProduct struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	OldPrice    float64  `json:"oldPrice"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	CategoryID  int      `json:"categoryId"`
	TypeID      int      `json:"typeId"`
	InStock     bool     `json:"inStock"`
	Description string   `json:"description"`
}
