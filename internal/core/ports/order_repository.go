package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Items are stored and loaded together with their order.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order status. Items never change after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate loads the order and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ExistsForCustomer reports whether any order references the customer.
	ExistsForCustomer(ctx context.Context, customerID kernel.UUID) (bool, error)
}
