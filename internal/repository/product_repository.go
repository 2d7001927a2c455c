package repository

import (
	"app/internal/domain/model"
	"context"
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	Create(ctx context.Context, p model.Product) (model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	ListByRestaurantID(ctx context.Context, restaurantID int64) ([]model.Product, error)

	// 名前の部分一致（大文字小文字無視）
	SearchByName(ctx context.Context, term string) ([]model.Product, error)
}
