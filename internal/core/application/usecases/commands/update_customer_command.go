package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand replaces the profile of an existing customer.
type UpdateCustomerCommand struct {
	customerID kernel.UUID
	name       string
	email      string
	phone      string
	address    kernel.Address

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	name, email, phone string,
	address kernel.Address,
) (UpdateCustomerCommand, error) {
	if err := errors.Join(customerID.Validate(), address.Validate()); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		name:       name,
		email:      email,
		phone:      phone,
		address:    address,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }
func (c UpdateCustomerCommand) Name() string            { return c.name }
func (c UpdateCustomerCommand) Email() string           { return c.email }
func (c UpdateCustomerCommand) Phone() string           { return c.phone }
func (c UpdateCustomerCommand) Address() kernel.Address { return c.address }
