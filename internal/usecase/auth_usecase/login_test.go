package auth

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// =====================
// Mock: RefreshTokenRepository
// =====================

type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *model.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	rt, _ := args.Get(0).(*model.RefreshToken)
	return rt, args.Error(1)
}

func (m *MockRefreshTokenRepository) MarkUsed(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	return string(h)
}

func newLoginFixture() (*MockUserRepository, *MockRefreshTokenRepository, *LoginUsecase) {
	users := new(MockUserRepository)
	rts := new(MockRefreshTokenRepository)

	uc := NewLoginUsecase(
		users,
		rts,
		NewBcryptPasswordVerifier(),
		&stubIssuer{token: "tok123"},
		&stubIDGenerator{id: "rt-1"},
		&stubClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		14*24*time.Hour,
	)
	return users, rts, uc
}

func TestLogin_WrongPassword(t *testing.T) {
	users, rts, uc := newLoginFixture()

	users.On("FindByEmail", mock.Anything, "maria@example.com").
		Return(&model.User{ID: 1, Email: "maria@example.com", PasswordHash: mustHash(t, "correta")}, nil)

	_, _, err := uc.Execute(context.Background(), LoginInput{
		Email:    "maria@example.com",
		Password: "errada",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	rts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users, _, uc := newLoginFixture()

	users.On("FindByEmail", mock.Anything, "ninguem@example.com").Return(nil, nil)

	_, _, err := uc.Execute(context.Background(), LoginInput{
		Email:    "ninguem@example.com",
		Password: "qualquer",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_IssuesTokenAndRefresh(t *testing.T) {
	users, rts, uc := newLoginFixture()

	users.On("FindByEmail", mock.Anything, "maria@example.com").
		Return(&model.User{ID: 1, Email: "maria@example.com", PasswordHash: mustHash(t, "correta")}, nil)

	rts.On("Create", mock.Anything, mock.MatchedBy(func(rt *model.RefreshToken) bool {
		//平文ではなくハッシュが保存される
		return rt.ID == "rt-1" && rt.UserID == 1 && rt.TokenHash != ""
	})).Return(nil)

	out, side, err := uc.Execute(context.Background(), LoginInput{
		Email:     "maria@example.com",
		Password:  "correta",
		UserAgent: "test-agent",
	})

	assert.NoError(t, err)
	assert.Equal(t, "tok123", out.AccessToken)
	assert.NotEmpty(t, side.PlainRefreshToken)
	assert.NotEqual(t, side.PlainRefreshToken, hashRefreshToken(side.PlainRefreshToken))
	rts.AssertExpectations(t)
}
