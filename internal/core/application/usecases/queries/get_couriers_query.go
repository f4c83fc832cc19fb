package queries

import (
	"context"
	"errors"
	"math"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetCouriersQueryIsNotConstructed = errors.New(
	"GetCouriersQuery must be created via one of the NewList*/NewGet* courier query constructors",
)

type CourierView struct {
	ID           uuid.UUID
	Name         string
	Phone        string
	VehicleType  string
	MaxWeight    float64
	IsAvailable  bool
	LicensePlate *string
}

// GetCouriersQuery lists the fleet. The capacity variant returns only
// available couriers able to carry the weight, smallest vehicle first.
type GetCouriersQuery struct {
	courierID     *kernel.UUID
	availableOnly bool
	minCapacity   *float64
	guard         guard.ConstructorGuard
}

func NewListCouriersQuery() GetCouriersQuery {
	return GetCouriersQuery{guard: guard.NewConstructorGuard()}
}

func NewGetCourierQuery(courierID kernel.UUID) (GetCouriersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCouriersQuery{}, err
	}
	return GetCouriersQuery{courierID: &courierID, guard: guard.NewConstructorGuard()}, nil
}

func NewListAvailableCouriersQuery() GetCouriersQuery {
	return GetCouriersQuery{availableOnly: true, guard: guard.NewConstructorGuard()}
}

func NewListCouriersForWeightQuery(weightKg float64) (GetCouriersQuery, error) {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg < 0 {
		return GetCouriersQuery{}, errs.NewValueIsOutOfRangeError("weight", weightKg, 0, "unbounded")
	}
	return GetCouriersQuery{availableOnly: true, minCapacity: &weightKg, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersQueryIsNotConstructed)
}

func (q GetCouriersQuery) statement() sq.SelectBuilder {
	s := statements.
		Select("id", "name", "phone", "vehicle_type", "max_weight", "is_available", "license_plate").
		From("couriers")
	if q.courierID != nil {
		s = s.Where(sq.Eq{"id": q.courierID.String()})
	}
	if q.availableOnly {
		s = s.Where(sq.Eq{"is_available": true})
	}
	if q.minCapacity != nil {
		return s.Where(sq.GtOrEq{"max_weight": *q.minCapacity}).OrderBy("max_weight", "id")
	}
	return s.OrderBy("name", "id")
}

type GetCouriersQueryHandler struct {
	db *gorm.DB
}

func NewGetCouriersQueryHandler(db *gorm.DB) GetCouriersQueryHandler {
	return GetCouriersQueryHandler{db: db}
}

func (h GetCouriersQueryHandler) Handle(ctx context.Context, query GetCouriersQuery) ([]CourierView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]CourierView, 0)
	if err := scan(ctx, h.db, query.statement(), &couriers); err != nil {
		return nil, err
	}

	if query.courierID != nil {
		return one(couriers, "courier", query.courierID.String())
	}
	return couriers, nil
}
