// Package courierrepo persists courier aggregates with gorm.
package courierrepo

import (
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is the row shape of the couriers table. MaxWeight is derived
// from the vehicle but stored so the read side can filter and sort on it.
type CourierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Phone        string
	VehicleType  string `gorm:"type:text"`
	MaxWeight    float64
	LicensePlate *string
	IsAvailable  bool
}

func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	var plate *string
	if p, ok := c.Vehicle().LicensePlate(); ok {
		plate = &p
	}

	return CourierDTO{
		ID:           c.ID().Bytes(),
		Name:         c.Name(),
		Phone:        c.Phone(),
		VehicleType:  c.Vehicle().Type().String(),
		MaxWeight:    c.MaxWeight().Kilograms(),
		LicensePlate: plate,
		IsAvailable:  c.IsAvailable(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := courier.ParseVehicleType(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	vehicle, err := courier.RestoreVehicle(kind, dto.LicensePlate)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.Phone, vehicle, dto.IsAvailable)
}
