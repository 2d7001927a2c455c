package usecase

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	args := m.Called(ctx, role)
	items, _ := args.Get(0).([]model.User)
	return items, args.Error(1)
}

func (m *MockUserRepository) SearchRestaurantsByName(ctx context.Context, term string) ([]model.User, error) {
	args := m.Called(ctx, term)
	items, _ := args.Get(0).([]model.User)
	return items, args.Error(1)
}

// =====================
// Mock: ProductRepository
// =====================

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) ListByRestaurantID(ctx context.Context, restaurantID int64) ([]model.Product, error) {
	args := m.Called(ctx, restaurantID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *MockProductRepository) SearchByName(ctx context.Context, term string) ([]model.Product, error) {
	args := m.Called(ctx, term)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func floatPtr(f float64) *float64 { return &f }

func TestCreateProduct_ForbiddenForCustomer(t *testing.T) {
	users := new(MockUserRepository)
	products := new(MockProductRepository)
	uc := NewCatalogUsecase(users, products)

	users.On("FindByID", mock.Anything, int64(1)).
		Return(&model.User{ID: 1, Role: model.RoleCustomer}, nil)

	_, err := uc.CreateProduct(context.Background(), 1, CreateProductInput{
		Name:  "Pizza Margherita",
		Price: floatPtr(42.0),
	})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)

	//商品は作られていない
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProduct_MissingNameOrPrice(t *testing.T) {
	users := new(MockUserRepository)
	products := new(MockProductRepository)
	uc := NewCatalogUsecase(users, products)

	users.On("FindByID", mock.Anything, int64(2)).
		Return(&model.User{ID: 2, Role: model.RoleRestaurant}, nil)

	_, err := uc.CreateProduct(context.Background(), 2, CreateProductInput{
		Name: "Pizza",
		// Price未指定
	})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	_, err = uc.CreateProduct(context.Background(), 2, CreateProductInput{
		Name:  "   ",
		Price: floatPtr(10.0),
	})
	he, ok = AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	_, err = uc.CreateProduct(context.Background(), 2, CreateProductInput{
		Name:  "Pizza",
		Price: floatPtr(-1.0),
	})
	he, ok = AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProduct_OwnedByCaller(t *testing.T) {
	users := new(MockUserRepository)
	products := new(MockProductRepository)
	uc := NewCatalogUsecase(users, products)

	users.On("FindByID", mock.Anything, int64(2)).
		Return(&model.User{ID: 2, Role: model.RoleRestaurant}, nil)

	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Pizza" && p.Price == 25.5 && p.RestaurantID == 2
	})).Return(model.Product{ID: 9, Name: "Pizza", Price: 25.5, RestaurantID: 2}, nil)

	out, err := uc.CreateProduct(context.Background(), 2, CreateProductInput{
		Name:        "Pizza",
		Description: "forno a lenha",
		Price:       floatPtr(25.5),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(9), out.ID)
	products.AssertExpectations(t)
}

func TestListRestaurants(t *testing.T) {
	users := new(MockUserRepository)
	products := new(MockProductRepository)
	uc := NewCatalogUsecase(users, products)

	users.On("ListByRole", mock.Anything, model.RoleRestaurant).
		Return([]model.User{{ID: 2, Name: "Cantina", Role: model.RoleRestaurant}}, nil)

	out, err := uc.ListRestaurants(context.Background())

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "Cantina", out[0].Name)
}

func TestSearch_ReturnsBothSets(t *testing.T) {
	users := new(MockUserRepository)
	products := new(MockProductRepository)
	uc := NewCatalogUsecase(users, products)

	users.On("SearchRestaurantsByName", mock.Anything, "Piz").
		Return([]model.User{{ID: 2, Name: "PIZZARIA BELLA", Role: model.RoleRestaurant}}, nil)
	products.On("SearchByName", mock.Anything, "Piz").
		Return([]model.Product{{ID: 9, Name: "pizza calabresa", RestaurantID: 2}}, nil)

	out, err := uc.Search(context.Background(), "  Piz ")

	assert.NoError(t, err)
	assert.Len(t, out.Restaurants, 1)
	assert.Len(t, out.Products, 1)
}
