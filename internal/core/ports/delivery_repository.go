package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Deliveries are append-only: there is no Delete.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error
	Update(ctx context.Context, aggregate *delivery.Delivery) error
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// ExistsUnfailedForOrder reports whether the order has a delivery in any
	// status other than Failed. Such an order cannot be assigned again.
	ExistsUnfailedForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)

	// ExistsActiveForCourier reports whether the courier carries a delivery in
	// Assigned, PickedUp or InTransit.
	ExistsActiveForCourier(ctx context.Context, courierID kernel.UUID) (bool, error)
}
