package repository

import (
	"context"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"gorm.io/gorm"
)

type orderReviewGormRepository struct {
	db *gorm.DB
}

func NewOrderReviewGormRepository(db *gorm.DB) domainrepo.OrderReviewRepository {
	return &orderReviewGormRepository{db: db}
}

func (r *orderReviewGormRepository) Create(ctx context.Context, review *model.OrderReview) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return err
	}
	return nil
}

type restaurantReviewGormRepository struct {
	db *gorm.DB
}

func NewRestaurantReviewGormRepository(db *gorm.DB) domainrepo.RestaurantReviewRepository {
	return &restaurantReviewGormRepository{db: db}
}

func (r *restaurantReviewGormRepository) Create(ctx context.Context, review *model.RestaurantReview) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return err
	}
	return nil
}
