// Package deliveryrepo persists delivery aggregates with gorm.
package deliveryrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID `gorm:"type:uuid"`
	CourierID             uuid.UUID `gorm:"type:uuid"`
	Status                string    `gorm:"type:text"`
	AssignedAt            time.Time
	PickedUpAt            *time.Time
	DeliveredAt           *time.Time
	DistanceKm            float64
	EstimatedDeliveryTime *time.Time
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:                    d.ID().Bytes(),
		OrderID:               d.OrderID().Bytes(),
		CourierID:             d.CourierID().Bytes(),
		Status:                d.Status().String(),
		AssignedAt:            d.AssignedAt(),
		PickedUpAt:            d.PickedUpAt(),
		DeliveredAt:           d.DeliveredAt(),
		DistanceKm:            d.DistanceKm(),
		EstimatedDeliveryTime: d.EstimatedDeliveryTime(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, orderID, courierID, status,
		dto.AssignedAt, dto.PickedUpAt, dto.DeliveredAt,
		dto.DistanceKm, dto.EstimatedDeliveryTime,
	)
}
