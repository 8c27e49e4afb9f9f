package usecase

import (
	"context"
	"time"

	"sunnyside-backend/internal/domain"
	"sunnyside-backend/pkg/cache"
)

const statsCacheKey = "stats:orders"

type StatsUsecase struct {
	orderRepo domain.OrderRepository
	cache     cache.CacheService
	statsTTL  time.Duration
}

func NewStatsUsecase(orderRepo domain.OrderRepository, cacheService cache.CacheService, statsTTL time.Duration) *StatsUsecase {
	return &StatsUsecase{
		orderRepo: orderRepo,
		cache:     cacheService,
		statsTTL:  statsTTL,
	}
}

// GetOrderStats aggregates the dashboard numbers. Revenue only counts paid
// orders that were not cancelled.
func (u *StatsUsecase) GetOrderStats(ctx context.Context) (*domain.OrderStats, error) {
	if val, found := u.cache.Get(statsCacheKey); found {
		stats := val.(domain.OrderStats)
		return &stats, nil
	}

	orders, err := u.orderRepo.GetAll(ctx, "", "")
	if err != nil {
		return nil, err
	}

	stats := domain.OrderStats{
		Total:    int64(len(orders)),
		ByStatus: make(map[string]int64, len(domain.OrderStatuses)),
	}
	for _, status := range domain.OrderStatuses {
		stats.ByStatus[status] = 0
	}

	for i := range orders {
		order := &orders[i]
		stats.ByStatus[order.Status]++
		if order.PaymentStatus == domain.PaymentStatusPaid && order.Status != domain.OrderStatusCancelled {
			stats.Revenue += order.TotalAmount
		}
	}

	u.cache.Set(statsCacheKey, stats, u.statsTTL)
	return &stats, nil
}
