package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

type DeleteCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewDeleteCourierCommandHandler(uowFactory CourierUoWFactory) DeleteCourierCommandHandler {
	return DeleteCourierCommandHandler{uowFactory: uowFactory}
}

// Handle removes a courier from the fleet. A courier with a delivery in
// progress is rejected with a ConflictError. Past deliveries keep their
// courier reference.
func (h DeleteCourierCommandHandler) Handle(ctx context.Context, cmd DeleteCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	couriers := uow.CourierRepository()
	if _, err := couriers.GetForUpdate(ctx, cmd.CourierID()); err != nil {
		return err
	}

	busy, err := uow.DeliveryRepository().ExistsActiveForCourier(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if busy {
		return errs.NewConflictError("courier " + cmd.CourierID().String() + " has a delivery in progress")
	}

	if err = couriers.Delete(ctx, cmd.CourierID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
