package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// notifier publishes committed changes. Failures are logged and swallowed:
// the transaction is already committed and must not be reported as failed.
type notifier struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func newNotifier(publisher ports.EventPublisher, logger *slog.Logger) notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return notifier{publisher: publisher, logger: logger}
}

func (n notifier) orderChanged(ctx context.Context, o *order.Order, at time.Time) {
	if n.publisher == nil {
		return
	}
	if err := n.publisher.PublishOrderStatusChanged(ctx, ports.NewOrderStatusChanged(o, at)); err != nil {
		n.logger.Warn("failed to publish order status change",
			"order_id", o.ID().String(), "status", o.Status().String(), "error", err)
	}
}

func (n notifier) deliveryChanged(ctx context.Context, d *delivery.Delivery, at time.Time) {
	if n.publisher == nil {
		return
	}
	if err := n.publisher.PublishDeliveryStatusChanged(ctx, ports.NewDeliveryStatusChanged(d, at)); err != nil {
		n.logger.Warn("failed to publish delivery status change",
			"delivery_id", d.ID().String(), "status", d.Status().String(), "error", err)
	}
}
