package repository

import (
	"app/internal/domain/model"
	"context"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)

	// used_atをセットして使用済みにする（ローテーション用、1回限り）
	MarkUsed(ctx context.Context, tokenID string) error
}
