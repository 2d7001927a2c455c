package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// ユーザーの永続化だけを約束。
// FindByEmail / FindByID は未登録なら (nil, nil) を返す。
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)

	// 名前の部分一致（大文字小文字無視）でレストランを検索
	SearchRestaurantsByName(ctx context.Context, term string) ([]model.User, error)
}
