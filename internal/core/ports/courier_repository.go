package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	Add(ctx context.Context, aggregate *courier.Courier) error
	Update(ctx context.Context, aggregate *courier.Courier) error
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetForUpdate loads the courier and locks its row until the transaction
	// ends. Two concurrent assignments of one courier serialize here; the second
	// observes the courier as busy.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
