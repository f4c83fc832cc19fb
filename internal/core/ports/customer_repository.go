package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get returns an ObjectNotFoundError when the customer does not exist.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetForUpdate loads the customer and locks its row until the transaction
	// ends, so concurrent profile updates apply one after the other.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Delete removes the customer. Callers must check for referencing orders
	// first; a foreign key violation still surfaces as a ConflictError.
	Delete(ctx context.Context, id kernel.UUID) error
}
