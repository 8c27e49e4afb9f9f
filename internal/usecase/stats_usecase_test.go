package usecase_test

import (
	"context"
	"testing"
	"time"

	"sunnyside-backend/internal/domain"
	"sunnyside-backend/internal/usecase"
)

func TestGetOrderStats(t *testing.T) {
	menu := seedMenu()
	orders := newMockOrderRepo(menu)
	orders.orders = []domain.Order{
		{ID: "order-1", Status: domain.OrderStatusDelivered, PaymentStatus: domain.PaymentStatusPaid, TotalAmount: 30.00},
		{ID: "order-2", Status: domain.OrderStatusCancelled, PaymentStatus: domain.PaymentStatusPaid, TotalAmount: 10.00},
		{ID: "order-3", Status: domain.OrderStatusPending, PaymentStatus: domain.PaymentStatusUnpaid, TotalAmount: 5.00},
		{ID: "order-4", Status: domain.OrderStatusPreparing, PaymentStatus: domain.PaymentStatusPaid, TotalAmount: 7.50},
	}
	uc := usecase.NewStatsUsecase(orders, newFakeCache(), time.Minute)

	stats, err := uc.GetOrderStats(context.Background())
	if err != nil {
		t.Fatalf("GetOrderStats: %v", err)
	}

	if stats.Total != 4 {
		t.Errorf("total = %d, want 4", stats.Total)
	}
	// Paid but cancelled order-2 does not count toward revenue; unpaid
	// order-3 does not either.
	if stats.Revenue != 37.50 {
		t.Errorf("revenue = %v, want 37.50", stats.Revenue)
	}
	if stats.ByStatus[domain.OrderStatusDelivered] != 1 ||
		stats.ByStatus[domain.OrderStatusCancelled] != 1 ||
		stats.ByStatus[domain.OrderStatusPending] != 1 ||
		stats.ByStatus[domain.OrderStatusPreparing] != 1 {
		t.Errorf("ByStatus counts wrong: %v", stats.ByStatus)
	}
	// Every known status appears, even at zero.
	for _, status := range domain.OrderStatuses {
		if _, ok := stats.ByStatus[status]; !ok {
			t.Errorf("ByStatus missing %s", status)
		}
	}
}

func TestGetOrderStatsServedFromCache(t *testing.T) {
	menu := seedMenu()
	orders := newMockOrderRepo(menu)
	orders.orders = []domain.Order{
		{ID: "order-1", Status: domain.OrderStatusDelivered, PaymentStatus: domain.PaymentStatusPaid, TotalAmount: 30.00},
	}
	uc := usecase.NewStatsUsecase(orders, newFakeCache(), time.Minute)
	ctx := context.Background()

	if _, err := uc.GetOrderStats(ctx); err != nil {
		t.Fatalf("first GetOrderStats: %v", err)
	}

	// New orders do not show until the cache entry expires.
	orders.orders = append(orders.orders, domain.Order{
		ID: "order-2", Status: domain.OrderStatusPending, PaymentStatus: domain.PaymentStatusUnpaid, TotalAmount: 5.00,
	})
	stats, err := uc.GetOrderStats(ctx)
	if err != nil {
		t.Fatalf("second GetOrderStats: %v", err)
	}
	if stats.Total != 1 {
		t.Fatalf("total = %d, want cached 1", stats.Total)
	}
}
