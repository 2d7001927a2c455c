package repository

import (
	"app/internal/domain/model"
	"context"
)

type OrderReviewRepository interface {
	Create(ctx context.Context, review *model.OrderReview) error
}

type RestaurantReviewRepository interface {
	Create(ctx context.Context, review *model.RestaurantReview) error
}
