package domain

import (
	"context"
	"time"
)

type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MenuFilter struct {
	Category      string
	AvailableOnly bool
}

type MenuRepository interface {
	GetItems(ctx context.Context, filter MenuFilter) ([]MenuItem, error)
	GetItemByID(ctx context.Context, id string) (*MenuItem, error)
	CreateItem(ctx context.Context, item *MenuItem) error
	UpdateItem(ctx context.Context, item *MenuItem) error
	DeleteItem(ctx context.Context, id string) error
}
