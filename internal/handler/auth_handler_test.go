package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"app/internal/domain/model"
	auth "app/internal/usecase/auth_usecase"
	"app/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// =====================
// Mock: UserRepository
// =====================

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	args := m.Called(ctx, role)
	items, _ := args.Get(0).([]model.User)
	return items, args.Error(1)
}

func (m *mockUserRepo) SearchRestaurantsByName(ctx context.Context, term string) ([]model.User, error) {
	args := m.Called(ctx, term)
	items, _ := args.Get(0).([]model.User)
	return items, args.Error(1)
}

// =====================
// Mock: RefreshTokenRepository
// =====================

type mockRefreshTokenRepo struct {
	mock.Mock
}

func (m *mockRefreshTokenRepo) Create(ctx context.Context, token *model.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockRefreshTokenRepo) FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	rt, _ := args.Get(0).(*model.RefreshToken)
	return rt, args.Error(1)
}

func (m *mockRefreshTokenRepo) MarkUsed(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

type testIssuer struct{}

func (testIssuer) Issue(userID int64, now time.Time) (string, time.Time, error) {
	return "tok123", now.Add(15 * time.Minute), nil
}

type testClock struct{}

func (testClock) Now() time.Time { return time.Now() }

type testIDGen struct{}

func (testIDGen) NewID() string { return "rt-1" }

func newAuthTestHandler(users *mockUserRepo, rts *mockRefreshTokenRepo) *AuthHandler {
	registerUC := auth.NewRegisterUserUsecase(users, validator.NewAuthValidator(), auth.NewBcryptPasswordHasher(bcrypt.MinCost))
	loginUC := auth.NewLoginUsecase(users, rts, auth.NewBcryptPasswordVerifier(), testIssuer{}, testIDGen{}, testClock{}, time.Hour)
	refreshUC := auth.NewRefreshUsecase(users, rts, testIssuer{}, testIDGen{}, testClock{}, time.Hour)
	return NewAuthHandler(registerUC, loginUC, refreshUC, time.Hour)
}

func doJSON(t *testing.T, h func(c echo.Context) error, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h(c))
	return rec
}

func TestRegisterHandler_Created(t *testing.T) {
	users := new(mockUserRepo)
	rts := new(mockRefreshTokenRepo)
	h := newAuthTestHandler(users, rts)

	users.On("FindByEmail", mock.Anything, "maria@example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.User).ID = 5
	}).Return(nil)

	rec := doJSON(t, h.register, http.MethodPost, "/users/register",
		`{"nome":"Maria","email":"maria@example.com","senha":"segredo123","tipo":"cliente"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":5`)
}

func TestRegisterHandler_DuplicateEmailConflict(t *testing.T) {
	users := new(mockUserRepo)
	rts := new(mockRefreshTokenRepo)
	h := newAuthTestHandler(users, rts)

	users.On("FindByEmail", mock.Anything, "maria@example.com").
		Return(&model.User{ID: 1, Email: "maria@example.com"}, nil)

	rec := doJSON(t, h.register, http.MethodPost, "/users/register",
		`{"nome":"Maria","email":"maria@example.com","senha":"segredo123","tipo":"cliente"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterHandler_UnknownRole(t *testing.T) {
	users := new(mockUserRepo)
	rts := new(mockRefreshTokenRepo)
	h := newAuthTestHandler(users, rts)

	rec := doJSON(t, h.register, http.MethodPost, "/users/register",
		`{"nome":"Maria","email":"maria@example.com","senha":"segredo123","tipo":"admin"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	rts := new(mockRefreshTokenRepo)
	h := newAuthTestHandler(users, rts)

	hash, err := bcrypt.GenerateFromPassword([]byte("correta"), bcrypt.MinCost)
	assert.NoError(t, err)
	users.On("FindByEmail", mock.Anything, "maria@example.com").
		Return(&model.User{ID: 1, Email: "maria@example.com", PasswordHash: string(hash)}, nil)

	rec := doJSON(t, h.login, http.MethodPost, "/token",
		`{"email":"maria@example.com","senha":"errada"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginHandler_ReturnsAccessToken(t *testing.T) {
	users := new(mockUserRepo)
	rts := new(mockRefreshTokenRepo)
	h := newAuthTestHandler(users, rts)

	hash, err := bcrypt.GenerateFromPassword([]byte("correta"), bcrypt.MinCost)
	assert.NoError(t, err)
	users.On("FindByEmail", mock.Anything, "maria@example.com").
		Return(&model.User{ID: 1, Email: "maria@example.com", PasswordHash: string(hash)}, nil)
	rts.On("Create", mock.Anything, mock.Anything).Return(nil)

	rec := doJSON(t, h.login, http.MethodPost, "/token",
		`{"email":"maria@example.com","senha":"correta"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"tok123"`)

	//refresh cookieが積まれる
	cookies := rec.Result().Cookies()
	found := false
	for _, ck := range cookies {
		if ck.Name == "refresh" && ck.Value != "" {
			found = true
		}
	}
	assert.True(t, found)
}
