package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderUsecase struct {
	users      repo.UserRepository
	tx         repo.TransactionManager
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	products   repo.ProductRepository
}

// DI
func NewOrderUsecase(
	users repo.UserRepository,
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	orderItems repo.OrderItemRepository,
	products repo.ProductRepository,
) *OrderUsecase {
	return &OrderUsecase{
		users:      users,
		tx:         tx,
		orders:     orders,
		orderItems: orderItems,
		products:   products,
	}
}

type PlaceOrderItemInput struct {
	ProductID int64
	// 未指定なら1
	Quantity *int64
}

type PlaceOrderInput struct {
	Address string
	Items   []PlaceOrderItemInput
}

type OrderItemOutput struct {
	ID        int64         `json:"id"`
	ProductID int64         `json:"produto_id"`
	Quantity  int64         `json:"quantidade"`
	Product   model.Product `json:"produto"`
}

type OrderOutput struct {
	ID         int64             `json:"id"`
	Status     string            `json:"status"`
	TotalPrice float64           `json:"valor_total"`
	CustomerID int64             `json:"cliente_id"`
	Address    string            `json:"endereco"`
	Items      []OrderItemOutput `json:"itens"`
}

// PlaceOrderは注文＋明細を1トランザクションで作る。
// 明細の商品が1つでも見つからなければ全体をロールバックする。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (OrderOutput, error) {
	//クライアントだけが注文できる
	caller, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if caller == nil || caller.Role != model.RoleCustomer {
		return OrderOutput{}, NewHTTPError(http.StatusForbidden, "only customers can place orders")
	}

	address := strings.TrimSpace(in.Address)
	if address == "" || len(in.Items) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "endereco and itens are required")
	}

	var out OrderOutput

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items := make([]model.OrderItem, 0, len(in.Items))
		itemOutputs := make([]OrderItemOutput, 0, len(in.Items))
		var total float64

		for _, it := range in.Items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "product not found")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			quantity := int64(1)
			if it.Quantity != nil {
				quantity = *it.Quantity
			}

			items = append(items, model.OrderItem{
				ProductID: p.ID,
				Quantity:  quantity,
			})
			itemOutputs = append(itemOutputs, OrderItemOutput{
				ProductID: p.ID,
				Quantity:  quantity,
				Product:   p,
			})
			total += p.Price * float64(quantity)
		}

		orderID, err := r.Orders().Create(ctx, model.Order{
			Status:     model.OrderStatusPending,
			TotalPrice: total,
			CustomerID: userID,
			Address:    address,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderOutput{
			ID:         orderID,
			Status:     model.OrderStatusPending,
			TotalPrice: total,
			CustomerID: userID,
			Address:    address,
			Items:      itemOutputs,
		}
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// GET /restaurant/orders
// 自分の商品を1つ以上含む注文を明細・商品つきで返す。
func (u *OrderUsecase) ListRestaurantOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	caller, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if caller == nil || caller.Role != model.RoleRestaurant {
		return []OrderOutput{}, NewHTTPError(http.StatusForbidden, "access denied")
	}

	orders, err := u.orders.ListByRestaurantID(ctx, caller.ID)
	if err != nil {
		return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		out, err := u.populateOrder(ctx, o)
		if err != nil {
			return []OrderOutput{}, err
		}
		outs = append(outs, out)
	}
	return outs, nil
}

type UpdateOrderStatusInput struct {
	Status string
}

// PATCH /orders/:id
// ステータスは遷移表を持たず、認可されたレストランの書き込みで置き換わる。
func (u *OrderUsecase) UpdateOrderStatus(ctx context.Context, userID int64, orderID int64, in UpdateOrderStatusInput) (OrderOutput, error) {
	caller, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if caller == nil || caller.Role != model.RoleRestaurant {
		return OrderOutput{}, NewHTTPError(http.StatusForbidden, "access denied")
	}

	order, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//注文の明細に自分の商品が1つも無ければ更新できない
	n, err := u.orderItems.CountByOrderAndRestaurant(ctx, orderID, caller.ID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if n == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusForbidden, "access denied")
	}

	newStatus := strings.TrimSpace(in.Status)
	if newStatus == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "status is required")
	}

	if err := u.orders.UpdateStatus(ctx, orderID, newStatus); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
		}
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	order.Status = newStatus
	return u.populateOrder(ctx, order)
}

// 注文に明細と商品詳細をネストさせる
func (u *OrderUsecase) populateOrder(ctx context.Context, o model.Order) (OrderOutput, error) {
	items, err := u.orderItems.ListByOrderID(ctx, o.ID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	itemOutputs := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		p, err := u.products.FindByID(ctx, it.ProductID)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		itemOutputs = append(itemOutputs, OrderItemOutput{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Product:   p,
		})
	}

	return OrderOutput{
		ID:         o.ID,
		Status:     o.Status,
		TotalPrice: o.TotalPrice,
		CustomerID: o.CustomerID,
		Address:    o.Address,
		Items:      itemOutputs,
	}, nil
}
