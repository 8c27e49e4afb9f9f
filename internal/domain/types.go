package domain

import "context"

// Pagination
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// Response standardizes API responses.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// PaymentIntent is the subset of the processor's payment intent object the
// checkout flow needs.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"` // smallest currency unit
	Currency     string `json:"currency"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// PaymentProvider abstracts the external payment processor.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*PaymentIntent, error)
	GetIntent(ctx context.Context, id string) (*PaymentIntent, error)
}

// OrderNotifier forwards order data to an external automation webhook.
// Delivery is best-effort; implementations must never fail the order flow.
type OrderNotifier interface {
	Forward(ctx context.Context, payload []byte) error
	NotifyOrderPlaced(order *Order, user *User)
}
