package queries

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewListOrdersQuery, NewGetOrderQuery or NewListOrdersByCustomerQuery",
)

type OrderView struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	Status      string
	TotalPrice  decimal.Decimal
	TotalWeight float64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	Items       []OrderItemView `gorm:"-"`
}

type OrderItemView struct {
	OrderID     uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Weight      float64
}

// GetOrdersQuery lists orders, optionally narrowed to one order or to the
// orders of one customer. Items are loaded with a second statement.
type GetOrdersQuery struct {
	orderID    *kernel.UUID
	customerID *kernel.UUID
	guard      guard.ConstructorGuard
}

func NewListOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrdersQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{orderID: &orderID, guard: guard.NewConstructorGuard()}, nil
}

func NewListOrdersByCustomerQuery(customerID kernel.UUID) (GetOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{customerID: &customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) statement() sq.SelectBuilder {
	s := statements.
		Select("id", "customer_id", "status", "total_price", "total_weight", "created_at", "updated_at").
		From("orders").
		OrderBy("created_at", "id")
	if q.orderID != nil {
		s = s.Where(sq.Eq{"id": q.orderID.String()})
	}
	if q.customerID != nil {
		s = s.Where(sq.Eq{"customer_id": q.customerID.String()})
	}
	return s
}

func itemsStatement(orderIDs []string) sq.SelectBuilder {
	return statements.
		Select("order_id", "product_name", "quantity", "unit_price", "weight").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position")
}

type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderView, 0)
	if err := scan(ctx, h.db, query.statement(), &orders); err != nil {
		return nil, err
	}

	if query.orderID != nil && len(orders) == 0 {
		return one(orders, "order", query.orderID.String())
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, 0, len(orders))
	byID := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID.String())
		byID[o.ID] = i
		orders[i].Items = make([]OrderItemView, 0)
	}

	items := make([]OrderItemView, 0)
	if err := scan(ctx, h.db, itemsStatement(ids), &items); err != nil {
		return nil, err
	}
	for _, item := range items {
		if i, ok := byID[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return orders, nil
}
