package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/courier"
)

type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{uowFactory: uowFactory}
}

// Handle creates an available courier of the requested vehicle variant.
func (h CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) (*courier.Courier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		c   *courier.Courier
		err error
	)
	if cmd.VehicleType() == courier.Car {
		c, err = courier.NewCarCourier(cmd.Name(), cmd.Phone(), cmd.LicensePlate())
	} else {
		c, err = courier.NewBikeCourier(cmd.Name(), cmd.Phone())
	}
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
