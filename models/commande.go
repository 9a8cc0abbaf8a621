package models

// OrderStatus is the back-office status enum. The backend speaks French
// labels; mapping happens at the edge, never inside the stores.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the four known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// BackendLabel returns the French label the commandes endpoints expect.
func (s OrderStatus) BackendLabel() string {
	switch s {
	case OrderStatusPending:
		return "En attente"
	case OrderStatusProcessing:
		return "En cours"
	case OrderStatusCompleted:
		return "Terminée"
	case OrderStatusCancelled:
		return "Annulée"
	}
	return string(s)
}

// ParseOrderStatus accepts either side of the mapping and falls back to
// pending for anything unknown.
func ParseOrderStatus(s string) OrderStatus {
	switch s {
	case "pending", "processing", "completed", "cancelled":
		return OrderStatus(s)
	case "En attente":
		return OrderStatusPending
	case "En cours":
		return OrderStatusProcessing
	case "Terminée":
		return OrderStatusCompleted
	case "Annulée":
		return OrderStatusCancelled
	}
	return OrderStatusPending
}

// OrderProductRef is the {id, quantity} pair the commandes endpoints carry
// in their JSON-encoded products field.
type OrderProductRef struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// Commande is the backend wire shape of an order.
type Commande struct {
	ID              int               `json:"id"`
	ClientName      string            `json:"clientName"`
	ClientPhone     string            `json:"clientPhone"`
	Image           string            `json:"image,omitempty"`
	Products        []OrderProductRef `json:"products"`
	Status          string            `json:"status"`
	CreatedAt       string            `json:"createdAt,omitempty"`
	UpdatedAt       string            `json:"updatedAt,omitempty"`
	ProductsDetails []Product         `json:"productsDetails,omitempty"`
}

// Order is the back-office working copy of a commande. TotalPrice is
// derived from the resolved items, not taken from the backend. The backend
// does not track customer emails, so CustomerEmail is usually empty.
type Order struct {
	ID            int         `json:"id"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	CustomerPhone string      `json:"customerPhone"`
	Items         []CartItem  `json:"items"`
	TotalPrice    float64     `json:"totalPrice"`
	Status        OrderStatus `json:"status"`
	CreatedAt     string      `json:"createdAt"`
	Address       string      `json:"address,omitempty"`
}
