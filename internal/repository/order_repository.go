package repository

import (
	"app/internal/domain/model"
	"context"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) error

	// 明細→商品を結合し、restaurante_idの商品を1つ以上含む注文を返す
	ListByRestaurantID(ctx context.Context, restaurantID int64) ([]model.Order, error)
}
