package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the order lifecycle.
//
// Invariants:
//   - references an existing customer (checked by the application layer)
//   - holds at least one item
//   - totalPrice and totalWeight always equal Totals(items)
//   - status changes only through Confirm, Process, MarkReady and Cancel
type Order struct {
	id          kernel.UUID
	customerID  kernel.UUID
	items       []Item
	status      Status
	totalPrice  decimal.Decimal
	totalWeight kernel.Weight
	createdAt   time.Time
	updatedAt   *time.Time
	guard       guard.ConstructorGuard
}

// NewOrder creates an order in status Created.
func NewOrder(customerID kernel.UUID, items []Item, now time.Time) (*Order, error) {
	return RestoreOrder(kernel.NewUUID(), customerID, items, Created, now, nil)
}

// RestoreOrder rebuilds an order from persisted state. Totals are recomputed
// from items rather than trusted from storage.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	status Status,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Order, error) {
	o := &Order{
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.guard = guard.NewConstructorGuard()
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID             { return o.id }
func (o *Order) CustomerID() kernel.UUID     { return o.customerID }
func (o *Order) Status() Status              { return o.status }
func (o *Order) TotalPrice() decimal.Decimal { return o.totalPrice }
func (o *Order) TotalWeight() kernel.Weight  { return o.totalWeight }
func (o *Order) CreatedAt() time.Time        { return o.createdAt }
func (o *Order) UpdatedAt() *time.Time       { return o.updatedAt }
func (o *Order) IsReadyForDelivery() bool    { return o.status == ReadyForDelivery }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// ValidateAssign reports whether a delivery may be created for the order.
func (o *Order) ValidateAssign() error {
	if !o.IsReadyForDelivery() {
		return errs.NewInvalidStateError("order", "assign delivery to", o.status.String())
	}
	return nil
}

func (o *Order) Confirm(now time.Time) error   { return o.apply(o.status.Confirm, now) }
func (o *Order) Process(now time.Time) error   { return o.apply(o.status.Process, now) }
func (o *Order) MarkReady(now time.Time) error { return o.apply(o.status.MarkReady, now) }
func (o *Order) Cancel(now time.Time) error    { return o.apply(o.status.Cancel, now) }

func (o *Order) apply(transition func() (Status, error), now time.Time) error {
	next, err := transition()
	if err != nil {
		return err
	}
	o.status = next
	o.updatedAt = &now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	totalPrice, totalWeight := Totals(items)
	if totalPrice.GreaterThanOrEqual(MaxAmount) {
		return errs.NewValueIsOutOfRangeError("totalPrice", totalPrice.String(), 0, MaxAmount.String())
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.totalPrice, o.totalWeight = totalPrice, totalWeight
	return nil
}
