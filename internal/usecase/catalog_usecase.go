package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CatalogUsecase struct {
	users    repo.UserRepository
	products repo.ProductRepository
}

// DI
func NewCatalogUsecase(users repo.UserRepository, products repo.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{users: users, products: products}
}

// GET /restaurants
func (u *CatalogUsecase) ListRestaurants(ctx context.Context) ([]model.User, error) {
	items, err := u.users.ListByRole(ctx, model.RoleRestaurant)
	if err != nil {
		return []model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// POST /products の入力DTO。Precoはポインタで「未指定」を区別する。
type CreateProductInput struct {
	Name        string
	Description string
	Price       *float64
}

func (u *CatalogUsecase) CreateProduct(ctx context.Context, userID int64, in CreateProductInput) (model.Product, error) {
	//レストランだけが商品を作れる
	caller, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if caller == nil || caller.Role != model.RoleRestaurant {
		return model.Product{}, NewHTTPError(http.StatusForbidden, "only restaurants can create products")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price == nil {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "nome and preco are required")
	}
	if *in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "preco must be >= 0")
	}

	created, err := u.products.Create(ctx, model.Product{
		Name:         name,
		Description:  in.Description,
		Price:        *in.Price,
		RestaurantID: caller.ID,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// GET /restaurants/:id/products
// 未知のidでも404にはせず空一覧を返す（一覧APIの契約）。
func (u *CatalogUsecase) ListProductsByRestaurant(ctx context.Context, restaurantID int64) ([]model.Product, error) {
	items, err := u.products.ListByRestaurantID(ctx, restaurantID)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

type SearchOutput struct {
	Restaurants []model.User    `json:"restaurantes"`
	Products    []model.Product `json:"produtos"`
}

// GET /search
// 空のqは全件に一致する（部分一致検索の契約）。
func (u *CatalogUsecase) Search(ctx context.Context, term string) (SearchOutput, error) {
	term = strings.TrimSpace(term)

	restaurants, err := u.users.SearchRestaurantsByName(ctx, term)
	if err != nil {
		return SearchOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products, err := u.products.SearchByName(ctx, term)
	if err != nil {
		return SearchOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return SearchOutput{Restaurants: restaurants, Products: products}, nil
}
