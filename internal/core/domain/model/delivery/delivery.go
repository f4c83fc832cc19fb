package delivery

import (
	"errors"
	"math"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery binds one ready order to one courier and records its progress.
// Deliveries are never deleted; the timestamps form the audit trail.
//
// Invariants:
//   - orderID and courierID are set and never change
//   - distanceKm is within (0, MaxDistanceKm]
//   - pickedUpAt is set once the delivery leaves Assigned through MarkPickedUp
//   - deliveredAt is set only in Delivered
//   - status changes only through the Mark* methods
//
// Example usage:
//
//	d, err := delivery.NewDelivery(orderID, courierID, 4.2, now, eta)
//	if err != nil {
//	    // handle error
//	}
//	_ = d.MarkPickedUp(now)
//	_ = d.MarkInTransit()
//	_ = d.MarkDelivered(now) // d.IsTerminal() == true
type Delivery struct {
	id                    kernel.UUID
	orderID               kernel.UUID
	courierID             kernel.UUID
	status                Status
	assignedAt            time.Time
	pickedUpAt            *time.Time
	deliveredAt           *time.Time
	distanceKm            float64
	estimatedDeliveryTime *time.Time
	guard                 guard.ConstructorGuard
}

// MaxDistanceKm is the equatorial circumference of the Earth. No route a
// courier drives can be longer.
const MaxDistanceKm = 40075.0

// ValidateDistance rejects non-finite distances and distances outside
// (0, MaxDistanceKm].
func ValidateDistance(distanceKm float64) error {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return errs.NewValueIsInvalidError("distanceKm")
	}
	if distanceKm <= 0 || distanceKm > MaxDistanceKm {
		return errs.NewValueIsOutOfRangeError("distanceKm", distanceKm, "greater than 0", MaxDistanceKm)
	}
	return nil
}

// NewDelivery creates a delivery in status Assigned with a fresh identity.
// assignedAt and estimatedDeliveryTime are taken as given; the caller owns the
// clock and the estimate. All validation errors are returned joined.
func NewDelivery(
	orderID, courierID kernel.UUID,
	distanceKm float64,
	assignedAt, estimatedDeliveryTime time.Time,
) (*Delivery, error) {
	return RestoreDelivery(
		kernel.NewUUID(), orderID, courierID, Assigned,
		assignedAt, nil, nil, distanceKm, &estimatedDeliveryTime,
	)
}

// RestoreDelivery rebuilds a delivery from persisted state. It applies the
// same validation as NewDelivery and accepts any declared status.
func RestoreDelivery(
	id, orderID, courierID kernel.UUID,
	status Status,
	assignedAt time.Time,
	pickedUpAt, deliveredAt *time.Time,
	distanceKm float64,
	estimatedDeliveryTime *time.Time,
) (*Delivery, error) {
	var orderErr, courierErr error
	if err := orderID.Validate(); err != nil {
		orderErr = errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := courierID.Validate(); err != nil {
		courierErr = errs.NewValueIsRequiredErrorWithCause("courierId", err)
	}

	if err := errors.Join(
		id.Validate(),
		orderErr,
		courierErr,
		status.Validate(),
		ValidateDistance(distanceKm),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:                    id,
		orderID:               orderID,
		courierID:             courierID,
		status:                status,
		assignedAt:            assignedAt,
		pickedUpAt:            pickedUpAt,
		deliveredAt:           deliveredAt,
		distanceKm:            distanceKm,
		estimatedDeliveryTime: estimatedDeliveryTime,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrDeliveryIsNotConstructed for a nil or zero Delivery.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID                   { return d.id }
func (d *Delivery) OrderID() kernel.UUID              { return d.orderID }
func (d *Delivery) CourierID() kernel.UUID            { return d.courierID }
func (d *Delivery) Status() Status                    { return d.status }
func (d *Delivery) AssignedAt() time.Time             { return d.assignedAt }
func (d *Delivery) PickedUpAt() *time.Time            { return d.pickedUpAt }
func (d *Delivery) DeliveredAt() *time.Time           { return d.deliveredAt }
func (d *Delivery) DistanceKm() float64               { return d.distanceKm }
func (d *Delivery) EstimatedDeliveryTime() *time.Time { return d.estimatedDeliveryTime }
func (d *Delivery) IsTerminal() bool                  { return d.status.IsTerminal() }

// IsOverdue reports whether an active delivery has passed its estimate.
func (d *Delivery) IsOverdue(now time.Time) bool {
	return !d.IsTerminal() && d.estimatedDeliveryTime != nil && now.After(*d.estimatedDeliveryTime)
}

// MarkPickedUp transitions Assigned -> PickedUp and stamps pickedUpAt.
// On error the delivery is left unchanged; the same holds for every Mark*
// method.
func (d *Delivery) MarkPickedUp(now time.Time) error {
	next, err := d.status.PickUp()
	if err != nil {
		return err
	}
	d.status = next
	d.pickedUpAt = &now
	return nil
}

// MarkInTransit transitions PickedUp -> InTransit.
func (d *Delivery) MarkInTransit() error {
	next, err := d.status.StartTransit()
	if err != nil {
		return err
	}
	d.status = next
	return nil
}

// MarkDelivered transitions InTransit -> Delivered and stamps deliveredAt.
func (d *Delivery) MarkDelivered(now time.Time) error {
	next, err := d.status.Deliver()
	if err != nil {
		return err
	}
	d.status = next
	d.deliveredAt = &now
	return nil
}

// MarkFailed transitions any active status to Failed. Delivered and Failed
// deliveries cannot fail.
func (d *Delivery) MarkFailed() error {
	next, err := d.status.Fail()
	if err != nil {
		return err
	}
	d.status = next
	return nil
}
