package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AssignDeliveryCommandHandler is the transactional shell around
// DeliveryDispatcher.Assign. Order and courier rows are locked in that order
// for the whole read-check-write sequence, so two requests for one courier
// serialize and the loser sees the courier as busy.
type AssignDeliveryCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.DeliveryDispatcher
	notifier   notifier
	now        Clock
}

func NewAssignDeliveryCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.DeliveryDispatcher,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	now Clock,
) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		notifier:   newNotifier(publisher, logger),
		now:        now,
	}
}

func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	couriers := uow.CourierRepository()
	deliveries := uow.DeliveryRepository()

	o, err := orders.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	c, err := couriers.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	if err = o.ValidateAssign(); err != nil {
		return nil, err
	}

	assigned, err := deliveries.ExistsUnfailedForOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}
	if assigned {
		return nil, errs.NewConflictError("order " + o.ID().String() + " already has a delivery")
	}

	now := h.now()
	d, err := h.dispatcher.Assign(o, c, cmd.DistanceKm(), now)
	if err != nil {
		return nil, err
	}

	if err = deliveries.Add(ctx, d); err != nil {
		return nil, err
	}

	if err = couriers.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.deliveryChanged(ctx, d, now)
	return d, nil
}
