package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ReviewUsecase struct {
	users             repo.UserRepository
	orders            repo.OrderRepository
	orderReviews      repo.OrderReviewRepository
	restaurantReviews repo.RestaurantReviewRepository
}

// DI
func NewReviewUsecase(
	users repo.UserRepository,
	orders repo.OrderRepository,
	orderReviews repo.OrderReviewRepository,
	restaurantReviews repo.RestaurantReviewRepository,
) *ReviewUsecase {
	return &ReviewUsecase{
		users:             users,
		orders:            orders,
		orderReviews:      orderReviews,
		restaurantReviews: restaurantReviews,
	}
}

type ReviewInput struct {
	Rating  int
	Comment string
}

type ReviewOutput struct {
	Msg      string `json:"msg"`
	ReviewID int64  `json:"avaliacao_id"`
}

// POST /orders/:id/review
// 自分の注文だけ評価できる。
func (u *ReviewUsecase) ReviewOrder(ctx context.Context, userID int64, orderID int64, in ReviewInput) (ReviewOutput, error) {
	order, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return ReviewOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return ReviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if order.CustomerID != userID {
		return ReviewOutput{}, NewHTTPError(http.StatusForbidden, "cannot review another customer's order")
	}

	review := &model.OrderReview{
		OrderID:    order.ID,
		CustomerID: userID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}
	if err := u.orderReviews.Create(ctx, review); err != nil {
		return ReviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ReviewOutput{Msg: "review recorded", ReviewID: review.ID}, nil
}

// POST /restaurants/:id/review
// 対象がレストランでなければ400。注文履歴は問わない。
func (u *ReviewUsecase) ReviewRestaurant(ctx context.Context, userID int64, restaurantID int64, in ReviewInput) (ReviewOutput, error) {
	target, err := u.users.FindByID(ctx, restaurantID)
	if err != nil {
		return ReviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if target == nil || target.Role != model.RoleRestaurant {
		return ReviewOutput{}, NewHTTPError(http.StatusBadRequest, "target is not a restaurant")
	}

	review := &model.RestaurantReview{
		RestaurantID: target.ID,
		CustomerID:   userID,
		Rating:       in.Rating,
		Comment:      in.Comment,
	}
	if err := u.restaurantReviews.Create(ctx, review); err != nil {
		return ReviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ReviewOutput{Msg: "review recorded", ReviewID: review.ID}, nil
}
