package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a new customer. Field rules (non-blank name
// and phone, well-formed email) are enforced by the customer aggregate.
type CreateCustomerCommand struct {
	name    string
	email   string
	phone   string
	address kernel.Address

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(name, email, phone string, address kernel.Address) (CreateCustomerCommand, error) {
	if err := address.Validate(); err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		name:    name,
		email:   email,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Name() string            { return c.name }
func (c CreateCustomerCommand) Email() string           { return c.email }
func (c CreateCustomerCommand) Phone() string           { return c.phone }
func (c CreateCustomerCommand) Address() kernel.Address { return c.address }
