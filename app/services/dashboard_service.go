package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/fooddash/app/models"
	"github.com/shashiranjanraj/fooddash/app/repositories"
)

type counter interface {
	Count(ctx context.Context) (int64, error)
}

// DashboardService computes the summary on demand; nothing is cached.
type DashboardService struct {
	users    counter
	products counter
	orders   repositories.OrderRepository
}

func NewDashboardService(users, products counter, orders repositories.OrderRepository) *DashboardService {
	return &DashboardService{users: users, products: products, orders: orders}
}

func (s *DashboardService) Summary(ctx context.Context) (models.DashboardSummary, error) {
	var (
		sum models.DashboardSummary
		err error
	)

	if sum.TotalUsers, err = s.users.Count(ctx); err != nil {
		return sum, fmt.Errorf("count users: %w", err)
	}
	if sum.TotalProducts, err = s.products.Count(ctx); err != nil {
		return sum, fmt.Errorf("count products: %w", err)
	}
	if sum.TotalOrders, err = s.orders.Count(ctx); err != nil {
		return sum, fmt.Errorf("count orders: %w", err)
	}
	if sum.TotalRevenue, err = s.orders.SumTotalAmount(ctx); err != nil {
		return sum, fmt.Errorf("sum revenue: %w", err)
	}
	return sum, nil
}
