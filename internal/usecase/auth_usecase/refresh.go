package auth

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

// refresh tokenが不正（未知・使用済み・失効・期限切れ）
var ErrInvalidRefresh = errors.New("invalid refresh")

type RefreshInput struct {
	PlainRefreshToken string
	UserAgent         string
}

type RefreshUsecase struct {
	userRepo   repository.UserRepository
	rtRepo     repository.RefreshTokenRepository
	issuer     AccessTokenIssuer
	idGen      IDGenerator
	clock      Clock
	refreshTTL time.Duration
}

// DI
func NewRefreshUsecase(
	userRepo repository.UserRepository,
	rtRepo repository.RefreshTokenRepository,
	issuer AccessTokenIssuer,
	idGen IDGenerator,
	clock Clock,
	refreshTTL time.Duration,
) *RefreshUsecase {
	return &RefreshUsecase{
		userRepo:   userRepo,
		rtRepo:     rtRepo,
		issuer:     issuer,
		idGen:      idGen,
		clock:      clock,
		refreshTTL: refreshTTL,
	}
}

// Executeはrefresh tokenをローテーションして新しいaccess tokenを返す。
// 古いトークンは1回で使用済みになる。
func (u *RefreshUsecase) Execute(ctx context.Context, in RefreshInput) (LoginOutput, LoginSideEffect, error) {
	var out LoginOutput
	var side LoginSideEffect

	if in.PlainRefreshToken == "" {
		return out, side, ErrInvalidRefresh
	}

	stored, err := u.rtRepo.FindByTokenHash(ctx, hashRefreshToken(in.PlainRefreshToken))
	if errors.Is(err, repository.ErrNotFound) {
		return out, side, ErrInvalidRefresh
	}
	if err != nil {
		return out, side, err
	}

	now := u.clock.Now()
	if stored.UsedAt != nil || stored.RevokedAt != nil || now.After(stored.ExpiresAt) {
		return out, side, ErrInvalidRefresh
	}

	//使用済みにする（MarkUsedが0件更新なら競合負け）
	if err := u.rtRepo.MarkUsed(ctx, stored.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return out, side, ErrInvalidRefresh
		}
		return out, side, err
	}

	user, err := u.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		return out, side, err
	}
	if user == nil {
		return out, side, ErrInvalidRefresh
	}

	accessToken, _, err := u.issuer.Issue(user.ID, now)
	if err != nil {
		return out, side, err
	}

	//新しいrefresh tokenを発行（ローテーション）
	plainRefresh, err := generateSecureToken(32)
	if err != nil {
		return out, side, err
	}
	next := &model.RefreshToken{
		ID:        u.idGen.NewID(),
		UserID:    user.ID,
		TokenHash: hashRefreshToken(plainRefresh),
		UserAgent: in.UserAgent,
		ExpiresAt: now.Add(u.refreshTTL),
	}
	if err := u.rtRepo.Create(ctx, next); err != nil {
		return out, side, err
	}

	out.AccessToken = accessToken
	side.PlainRefreshToken = plainRefresh
	return out, side, nil
}
