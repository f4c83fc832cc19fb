package courier

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Carrying capacity per vehicle type. A courier may take an order whose total
// weight is at most the capacity of their vehicle.
const (
	BikeMaxWeight kernel.Weight = 10
	CarMaxWeight  kernel.Weight = 100
)

// ErrVehicleIsNotConstructed is returned by Vehicle.Validate for a zero Vehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewBike, NewCar or RestoreVehicle")

// VehicleType tags the vehicle variant. Its String form ("Bike", "Car") is
// the name used on the wire and in storage.
type VehicleType int

const (
	UnknownVehicle VehicleType = iota
	Bike
	Car
)

func (t VehicleType) String() string {
	switch t {
	case Bike:
		return "Bike"
	case Car:
		return "Car"
	default:
		return "Unknown"
	}
}

// ParseVehicleType accepts the wire name case-insensitively.
func ParseVehicleType(s string) (VehicleType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bike":
		return Bike, nil
	case "car":
		return Car, nil
	default:
		return UnknownVehicle, errs.NewValueIsInvalidErrorWithCause("vehicleType", fmt.Errorf("%q is not a vehicle type", s))
	}
}

// Vehicle is a value object describing what a courier drives. It is a tagged
// variant: every vehicle has a type that fixes its capacity, and only a car
// carries a licence plate.
//
// The zero value is invalid. Use NewBike or NewCar for new couriers and
// RestoreVehicle when loading from storage.
//
// Example usage:
//
//	bike := courier.NewBike()
//	bike.MaxWeight() // 10 kg
//
//	car, err := courier.NewCar("AB-123")
//	if err != nil {
//	    // handle error
//	}
//	plate, ok := car.LicensePlate() // "AB-123", true
type Vehicle struct {
	kind         VehicleType
	licensePlate string
	guard        guard.ConstructorGuard
}

// NewBike returns a bike. Bikes have no plate and carry up to BikeMaxWeight.
func NewBike() Vehicle {
	return Vehicle{kind: Bike, guard: guard.NewConstructorGuard()}
}

// NewCar returns a car with the given licence plate, trimmed.
// Returns a ValueIsRequiredError if the plate is blank.
//
// Example:
//
//	car, _ := courier.NewCar("  AB-123 ")
//	plate, _ := car.LicensePlate() // "AB-123"
func NewCar(licensePlate string) (Vehicle, error) {
	plate := strings.TrimSpace(licensePlate)
	if plate == "" {
		return Vehicle{}, errs.NewValueIsRequiredError("licensePlate")
	}
	return Vehicle{kind: Car, licensePlate: plate, guard: guard.NewConstructorGuard()}, nil
}

// RestoreVehicle rebuilds a vehicle from storage, enforcing that a plate is
// set if and only if the vehicle is a car.
func RestoreVehicle(kind VehicleType, licensePlate *string) (Vehicle, error) {
	switch kind {
	case Bike:
		if licensePlate != nil {
			return Vehicle{}, errs.NewValueIsInvalidErrorWithCause("licensePlate", errors.New("bike has no licence plate"))
		}
		return NewBike(), nil
	case Car:
		if licensePlate == nil {
			return Vehicle{}, errs.NewValueIsRequiredError("licensePlate")
		}
		return NewCar(*licensePlate)
	default:
		return Vehicle{}, errs.NewValueIsInvalidErrorWithCause("vehicleType", fmt.Errorf("%d is not a vehicle type", kind))
	}
}

// Validate returns ErrVehicleIsNotConstructed if v bypassed its constructors.
func (v Vehicle) Validate() error {
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// Type returns the variant tag.
func (v Vehicle) Type() VehicleType {
	return v.kind
}

// MaxWeight is the weight class fixed by the variant.
func (v Vehicle) MaxWeight() kernel.Weight {
	switch v.kind {
	case Bike:
		return BikeMaxWeight
	case Car:
		return CarMaxWeight
	default:
		return 0
	}
}

// LicensePlate returns the plate and true for a car, and "", false for a bike.
func (v Vehicle) LicensePlate() (string, bool) {
	return v.licensePlate, v.kind == Car
}
