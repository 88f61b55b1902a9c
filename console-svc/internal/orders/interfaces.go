package orders

import (
	"context"

	"overcooked-console/console-svc/internal/domain"
)

// API is the slice of the ordering API the order list needs.
type API interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ListDishes(ctx context.Context) ([]domain.Dish, error)
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	UpdateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	DeleteOrder(ctx context.Context, id int) error
}

// Observer is told about every acknowledged order mutation.
type Observer interface {
	OnOrderEvent(ctx context.Context, event domain.OrderEvent) error
}
