package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand binds a ready order to a courier. The distance is
// checked by the dispatcher, after order and courier, so that callers see
// errors in a stable order.
//
// Example:
//
//	cmd, err := NewAssignDeliveryCommand(orderID, courierID, 4.2)
//	if err != nil {
//	    return err
//	}
//	d, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConflict):
//	    // courier is busy or the order already has a delivery
//	case errors.Is(err, errs.ErrCapacityExceeded):
//	    // pick a bigger vehicle
//	}
type AssignDeliveryCommand struct {
	orderID    kernel.UUID
	courierID  kernel.UUID
	distanceKm float64

	guard guard.ConstructorGuard
}

func NewAssignDeliveryCommand(orderID, courierID kernel.UUID, distanceKm float64) (AssignDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return AssignDeliveryCommand{}, err
	}
	return AssignDeliveryCommand{
		orderID:    orderID,
		courierID:  courierID,
		distanceKm: distanceKm,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

func (c AssignDeliveryCommand) OrderID() kernel.UUID   { return c.orderID }
func (c AssignDeliveryCommand) CourierID() kernel.UUID { return c.courierID }
func (c AssignDeliveryCommand) DistanceKm() float64    { return c.distanceKm }
