package services

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ErrCourierMismatch is returned when a delivery is completed with a courier
// other than the one it was assigned to.
var ErrCourierMismatch = errors.New("courier does not match delivery")

// DeliveryDispatcher is the assignment rule of the fleet. It is the only place
// where order status, courier availability and delivery creation meet.
//
// Checks run in a fixed order so that callers observe the same error for the
// same input no matter which of several preconditions fail:
//  1. order must be ReadyForDelivery (InvalidState)
//  2. courier must be available (Conflict)
//  3. order weight must fit the courier capacity (CapacityExceeded)
//  4. distance must be positive (Validation)
//
// Nothing is mutated unless every check passes.
type DeliveryDispatcher struct {
	eta ETAEstimator
}

func NewDeliveryDispatcher(eta ETAEstimator) DeliveryDispatcher {
	return DeliveryDispatcher{eta: eta}
}

// Assign creates a delivery for o carried by c and marks c busy.
func (d DeliveryDispatcher) Assign(
	o *order.Order,
	c *courier.Courier,
	distanceKm float64,
	now time.Time,
) (*delivery.Delivery, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := o.ValidateAssign(); err != nil {
		return nil, err
	}
	if !c.IsAvailable() {
		return nil, errs.NewConflictError("courier " + c.ID().String() + " is not available")
	}
	if !c.CanCarry(o.TotalWeight()) {
		return nil, errs.NewCapacityExceededError(o.TotalWeight().Kilograms(), c.MaxWeight().Kilograms())
	}
	if err := delivery.ValidateDistance(distanceKm); err != nil {
		return nil, err
	}

	created, err := delivery.NewDelivery(o.ID(), c.ID(), distanceKm, now, d.eta.Estimate(now, distanceKm))
	if err != nil {
		return nil, err
	}

	if err = c.Occupy(); err != nil {
		return nil, err
	}

	return created, nil
}

// Complete marks dl delivered and frees its courier.
func (d DeliveryDispatcher) Complete(dl *delivery.Delivery, c *courier.Courier, now time.Time) error {
	return d.finish(dl, c, func() error { return dl.MarkDelivered(now) })
}

// Fail marks dl failed and frees its courier.
func (d DeliveryDispatcher) Fail(dl *delivery.Delivery, c *courier.Courier) error {
	return d.finish(dl, c, dl.MarkFailed)
}

func (d DeliveryDispatcher) finish(dl *delivery.Delivery, c *courier.Courier, transition func() error) error {
	if err := dl.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if !dl.CourierID().IsEqual(c.ID()) {
		return ErrCourierMismatch
	}

	if err := transition(); err != nil {
		return err
	}

	// A courier that is already free has nothing to release.
	if !c.IsAvailable() {
		return c.Release()
	}
	return nil
}
