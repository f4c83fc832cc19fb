package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/order"
)

// OrderStatusChanged is emitted after an order was created or moved to a new
// status and the change was committed.
type OrderStatusChanged struct {
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	Status     string    `json:"status"`
	TotalPrice string    `json:"totalPrice"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewOrderStatusChanged(o *order.Order, occurredAt time.Time) OrderStatusChanged {
	return OrderStatusChanged{
		OrderID:    o.ID().String(),
		CustomerID: o.CustomerID().String(),
		Status:     o.Status().String(),
		TotalPrice: o.TotalPrice().StringFixed(2),
		OccurredAt: occurredAt.UTC(),
	}
}

// DeliveryStatusChanged is emitted after a delivery was assigned or moved to
// a new status and the change was committed.
type DeliveryStatusChanged struct {
	DeliveryID string    `json:"deliveryId"`
	OrderID    string    `json:"orderId"`
	CourierID  string    `json:"courierId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewDeliveryStatusChanged(d *delivery.Delivery, occurredAt time.Time) DeliveryStatusChanged {
	return DeliveryStatusChanged{
		DeliveryID: d.ID().String(),
		OrderID:    d.OrderID().String(),
		CourierID:  d.CourierID().String(),
		Status:     d.Status().String(),
		OccurredAt: occurredAt.UTC(),
	}
}

// EventPublisher delivers committed status changes to other services.
// Publishing is best effort: a failure never undoes the committed change.
type EventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChanged) error
	PublishDeliveryStatusChanged(ctx context.Context, event DeliveryStatusChanged) error
}
