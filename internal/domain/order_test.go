package domain_test

import (
	"testing"

	"sunnyside-backend/internal/domain"
)

func TestCartTotal(t *testing.T) {
	cart := &domain.Cart{
		Items: []domain.CartItem{
			{ItemID: "a", Item: domain.MenuItem{Price: 4.50}, Quantity: 2},
			{ItemID: "b", Item: domain.MenuItem{Price: 12.00}, Quantity: 1},
		},
	}
	if got := cart.Total(); got != 21.00 {
		t.Fatalf("Total() = %v, want 21.00", got)
	}
}

func TestCartTotalEmpty(t *testing.T) {
	cart := &domain.Cart{}
	if got := cart.Total(); got != 0 {
		t.Fatalf("Total() on empty cart = %v, want 0", got)
	}
}
