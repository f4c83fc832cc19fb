package queries

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via one of the NewList*/NewGet* delivery query constructors",
)

type DeliveryView struct {
	ID                    uuid.UUID
	OrderID               uuid.UUID
	CourierID             uuid.UUID
	Status                string
	AssignedAt            time.Time
	PickedUpAt            *time.Time
	DeliveredAt           *time.Time
	DistanceKm            float64
	EstimatedDeliveryTime *time.Time
}

// GetDeliveriesQuery lists deliveries in assignment order. The by-order
// variant returns only the latest delivery of the order, since failed
// deliveries may have been followed by a new assignment.
type GetDeliveriesQuery struct {
	deliveryID *kernel.UUID
	orderID    *kernel.UUID
	courierID  *kernel.UUID
	guard      guard.ConstructorGuard
}

func NewListDeliveriesQuery() GetDeliveriesQuery {
	return GetDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

func NewGetDeliveryQuery(deliveryID kernel.UUID) (GetDeliveriesQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveriesQuery{}, err
	}
	return GetDeliveriesQuery{deliveryID: &deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func NewGetDeliveryByOrderQuery(orderID kernel.UUID) (GetDeliveriesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveriesQuery{}, err
	}
	return GetDeliveriesQuery{orderID: &orderID, guard: guard.NewConstructorGuard()}, nil
}

func NewListDeliveriesByCourierQuery(courierID kernel.UUID) (GetDeliveriesQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetDeliveriesQuery{}, err
	}
	return GetDeliveriesQuery{courierID: &courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

func (q GetDeliveriesQuery) statement() sq.SelectBuilder {
	s := statements.
		Select("id", "order_id", "courier_id", "status", "assigned_at", "picked_up_at",
			"delivered_at", "distance_km", "estimated_delivery_time").
		From("deliveries")
	switch {
	case q.deliveryID != nil:
		return s.Where(sq.Eq{"id": q.deliveryID.String()})
	case q.orderID != nil:
		return s.Where(sq.Eq{"order_id": q.orderID.String()}).OrderBy("assigned_at DESC", "id DESC").Limit(1)
	case q.courierID != nil:
		s = s.Where(sq.Eq{"courier_id": q.courierID.String()})
	}
	return s.OrderBy("assigned_at", "id")
}

type GetDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

func (h GetDeliveriesQueryHandler) Handle(ctx context.Context, query GetDeliveriesQuery) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]DeliveryView, 0)
	if err := scan(ctx, h.db, query.statement(), &deliveries); err != nil {
		return nil, err
	}

	switch {
	case query.deliveryID != nil:
		return one(deliveries, "delivery", query.deliveryID.String())
	case query.orderID != nil:
		return one(deliveries, "delivery for order", query.orderID.String())
	}
	return deliveries, nil
}
