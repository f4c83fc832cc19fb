package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewListCustomersQuery or NewGetCustomerQuery",
)

type CustomerView struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Phone      string
	Street     string
	City       string
	PostalCode string
	Country    string
}

// GetCustomersQuery lists all customers, or looks up one by id.
type GetCustomersQuery struct {
	customerID *kernel.UUID
	guard      guard.ConstructorGuard
}

func NewListCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

func NewGetCustomerQuery(customerID kernel.UUID) (GetCustomersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomersQuery{}, err
	}
	return GetCustomersQuery{customerID: &customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

func (q GetCustomersQuery) statement() sq.SelectBuilder {
	s := statements.
		Select("id", "name", "email", "phone", "street", "city", "postal_code", "country").
		From("customers").
		OrderBy("name", "id")
	if q.customerID != nil {
		s = s.Where(sq.Eq{"id": q.customerID.String()})
	}
	return s
}

type GetCustomersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle returns customers sorted by name. A lookup by id that matches
// nothing fails with an ObjectNotFoundError.
func (h GetCustomersQueryHandler) Handle(ctx context.Context, query GetCustomersQuery) ([]CustomerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]CustomerView, 0)
	if err := scan(ctx, h.db, query.statement(), &customers); err != nil {
		return nil, err
	}

	if query.customerID != nil {
		return one(customers, "customer", query.customerID.String())
	}
	return customers, nil
}
