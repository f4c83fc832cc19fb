package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// ChangeDeliveryStatusCommandHandler drives the delivery state machine.
// Deliver and fail also free the courier in the same transaction; the
// delivery row is locked before the courier row.
type ChangeDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.DeliveryDispatcher
	notifier   notifier
	now        Clock
}

func NewChangeDeliveryStatusCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.DeliveryDispatcher,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	now Clock,
) ChangeDeliveryStatusCommandHandler {
	return ChangeDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		notifier:   newNotifier(publisher, logger),
		now:        now,
	}
}

func (h ChangeDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeDeliveryStatusCommand,
) (*delivery.Delivery, error) {
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

	deliveries := uow.DeliveryRepository()
	d, err := deliveries.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	now := h.now()
	switch cmd.Action() {
	case PickUpDelivery:
		err = d.MarkPickedUp(now)
	case TransitDelivery:
		err = d.MarkInTransit()
	case DeliverDelivery, FailDelivery:
		err = h.finish(ctx, uow, d, cmd.Action(), now)
	}
	if err != nil {
		return nil, err
	}

	if err = deliveries.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.deliveryChanged(ctx, d, now)
	return d, nil
}

func (h ChangeDeliveryStatusCommandHandler) finish(
	ctx context.Context,
	uow UoW,
	d *delivery.Delivery,
	action DeliveryAction,
	now time.Time,
) error {
	// Terminal deliveries are rejected before the courier row is touched.
	if d.IsTerminal() {
		if action == DeliverDelivery {
			return d.MarkDelivered(now)
		}
		return d.MarkFailed()
	}

	couriers := uow.CourierRepository()
	c, err := couriers.GetForUpdate(ctx, d.CourierID())
	if err != nil {
		return err
	}

	if action == DeliverDelivery {
		err = h.dispatcher.Complete(d, c, now)
	} else {
		err = h.dispatcher.Fail(d, c)
	}
	if err != nil {
		return err
	}

	return couriers.Update(ctx, c)
}
