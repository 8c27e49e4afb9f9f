package domain

import (
	"context"
	"time"
)

type OrderFilter struct {
	Page          int
	Limit         int
	Status        string
	PaymentStatus string
	Search        string
}

// --- Cart Entities ---

type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CartItem struct {
	ID       string   `json:"id"`
	CartID   string   `json:"cartId"`
	ItemID   string   `json:"itemId"`
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// Total is the sum of price x quantity across all lines. Empty cart is 0.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Items {
		total += line.Item.Price * float64(line.Quantity)
	}
	return total
}

// --- Order Entities ---

type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	User            User        `json:"user"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"paymentStatus"`
	PaymentMethod   string      `json:"paymentMethod"`
	PaymentIntentID string      `json:"paymentIntentId,omitempty"`
	TotalAmount     float64     `json:"totalAmount"`
	DeliveryAddress string      `json:"deliveryAddress"`
	Notes           string      `json:"notes"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// OrderItem is a price/name snapshot of a catalog item at the time the
// order was placed. Immutable after creation.
type OrderItem struct {
	ID       string  `json:"id"`
	OrderID  string  `json:"orderId"`
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderHistory struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"orderId"`
	PreviousStatus *string   `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	Reason         *string   `json:"reason"`
	CreatedBy      *string   `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
}

// OrderStats are the admin dashboard aggregates.
type OrderStats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
	// Revenue sums total_amount over orders with payment_status=paid
	// and status != cancelled.
	Revenue float64 `json:"revenue"`
}

// --- Interfaces ---

type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	GetByUserID(ctx context.Context, userID string) ([]Order, error)
	GetAll(ctx context.Context, status, paymentStatus string) ([]Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdatePaymentStatus(ctx context.Context, id, status string) error

	// Cart
	GetCart(ctx context.Context, userID string) (*Cart, error)
	UpsertCartItem(ctx context.Context, userID, itemID string, quantity int) error
	RemoveCartItem(ctx context.Context, userID, itemID string) error
	ClearCart(ctx context.Context, userID string) error

	// History
	CreateOrderHistory(ctx context.Context, history *OrderHistory) error
	GetOrderHistory(ctx context.Context, orderID string) ([]OrderHistory, error)
}
