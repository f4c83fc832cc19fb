package courier

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Validation errors reported by the courier constructors.
var (
	ErrNameIsRequired          = errs.NewValueIsRequiredError("name")
	ErrPhoneIsRequired         = errs.NewValueIsRequiredError("phone")
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewBikeCourier, NewCarCourier or RestoreCourier")
)

// Courier is a fleet member with a weight capacity and an availability flag.
//
// Capacity follows from the Vehicle and never changes. Availability flips
// through Occupy and Release only: a courier is busy exactly while they carry
// an active delivery.
//
// Example usage:
//
//	sam, err := courier.NewBikeCourier("Sam", "+1 555 0100")
//	if err != nil {
//	    // handle error
//	}
//	sam.CanCarry(kernel.Weight(8)) // true
//	_ = sam.Occupy()              // sam.IsAvailable() == false
type Courier struct {
	id          kernel.UUID
	name        string
	phone       string
	vehicle     Vehicle
	isAvailable bool
	guard       guard.ConstructorGuard
}

// NewBikeCourier creates an available bike courier.
func NewBikeCourier(name, phone string) (*Courier, error) {
	return RestoreCourier(kernel.NewUUID(), name, phone, NewBike(), true)
}

// NewCarCourier creates an available car courier. The licence plate is required.
func NewCarCourier(name, phone, licensePlate string) (*Courier, error) {
	vehicle, err := NewCar(licensePlate)
	if err != nil {
		partial := &Courier{}
		return nil, errors.Join(partial.setName(name), partial.setPhone(phone), err)
	}
	return RestoreCourier(kernel.NewUUID(), name, phone, vehicle, true)
}

// RestoreCourier rebuilds a courier from persisted state with the stored
// availability. Name and phone are trimmed and must not be blank.
func RestoreCourier(id kernel.UUID, name, phone string, vehicle Vehicle, isAvailable bool) (*Courier, error) {
	c := &Courier{isAvailable: isAvailable}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	c.guard = guard.NewConstructorGuard()
	return c, nil
}

// Validate returns ErrCourierIsNotConstructed for a nil or zero Courier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Courier) ID() kernel.UUID          { return c.id }
func (c *Courier) Name() string             { return c.name }
func (c *Courier) Phone() string            { return c.phone }
func (c *Courier) Vehicle() Vehicle         { return c.vehicle }
func (c *Courier) IsAvailable() bool        { return c.isAvailable }
func (c *Courier) MaxWeight() kernel.Weight { return c.vehicle.MaxWeight() }

// CanCarry reports whether weight fits the courier's capacity. The limit is
// inclusive: a bike carries exactly 10 kg.
func (c *Courier) CanCarry(weight kernel.Weight) bool {
	return !weight.Exceeds(c.MaxWeight())
}

// Occupy marks the courier busy. It fails with a conflict when the courier is
// already busy.
func (c *Courier) Occupy() error {
	if !c.isAvailable {
		return errs.NewConflictError("courier " + c.id.String() + " is not available")
	}
	c.isAvailable = false
	return nil
}

// Release marks the courier available again.
func (c *Courier) Release() error {
	if c.isAvailable {
		return errs.NewInvalidStateError("courier", "release", "available")
	}
	c.isAvailable = true
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *Courier) setVehicle(vehicle Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	c.vehicle = vehicle
	return nil
}
