package repository

import (
	"app/internal/domain/model"
	"context"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	// 注文の中にそのレストランの商品がいくつあるか（所有チェック用）
	CountByOrderAndRestaurant(ctx context.Context, orderID int64, restaurantID int64) (int64, error)
}
