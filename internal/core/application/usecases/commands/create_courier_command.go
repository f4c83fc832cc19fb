package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateBikeCourierCommand or NewCreateCarCourierCommand",
)

// CreateCourierCommand adds a courier to the fleet. The vehicle variant fixes
// the capacity; only cars carry a licence plate.
type CreateCourierCommand struct {
	name         string
	phone        string
	vehicleType  courier.VehicleType
	licensePlate string

	guard guard.ConstructorGuard
}

func NewCreateBikeCourierCommand(name, phone string) CreateCourierCommand {
	return CreateCourierCommand{
		name:        name,
		phone:       phone,
		vehicleType: courier.Bike,
		guard:       guard.NewConstructorGuard(),
	}
}

func NewCreateCarCourierCommand(name, phone, licensePlate string) (CreateCourierCommand, error) {
	if strings.TrimSpace(licensePlate) == "" {
		return CreateCourierCommand{}, errs.NewValueIsRequiredError("licensePlate")
	}
	return CreateCourierCommand{
		name:         name,
		phone:        phone,
		vehicleType:  courier.Car,
		licensePlate: licensePlate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c CreateCourierCommand) Name() string                     { return c.name }
func (c CreateCourierCommand) Phone() string                    { return c.phone }
func (c CreateCourierCommand) VehicleType() courier.VehicleType { return c.vehicleType }
func (c CreateCourierCommand) LicensePlate() string             { return c.licensePlate }
