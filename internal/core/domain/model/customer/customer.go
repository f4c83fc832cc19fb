package customer

import (
	"errors"
	"net/mail"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer is the aggregate root of the customer registry.
type Customer struct {
	id      kernel.UUID
	name    string
	email   string
	phone   string
	address kernel.Address
	guard   guard.ConstructorGuard
}

// NewCustomer creates a customer with a fresh identity.
func NewCustomer(name, email, phone string, address kernel.Address) (*Customer, error) {
	return RestoreCustomer(kernel.NewUUID(), name, email, phone, address)
}

// RestoreCustomer rebuilds a customer from persisted state, applying the same
// validation as NewCustomer.
func RestoreCustomer(id kernel.UUID, name, email, phone string, address kernel.Address) (*Customer, error) {
	c := &Customer{}
	if err := errors.Join(
		c.setID(id),
		c.setProfile(name, email, phone, address),
	); err != nil {
		return nil, err
	}

	c.guard = guard.NewConstructorGuard()
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID         { return c.id }
func (c *Customer) Name() string            { return c.name }
func (c *Customer) Email() string           { return c.email }
func (c *Customer) Phone() string           { return c.phone }
func (c *Customer) Address() kernel.Address { return c.address }

// Update replaces the contact details. On error the customer is left unchanged.
func (c *Customer) Update(name, email, phone string, address kernel.Address) error {
	next := *c
	if err := next.setProfile(name, email, phone, address); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setProfile(name, email, phone string, address kernel.Address) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	var nameErr, emailErr, phoneErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	switch {
	case email == "":
		emailErr = errs.NewValueIsRequiredError("email")
	default:
		if parsed, err := mail.ParseAddress(email); err != nil || parsed.Address != email {
			emailErr = errs.NewValueIsInvalidErrorWithCause("email", err)
		}
	}
	if phone == "" {
		phoneErr = errs.NewValueIsRequiredError("phone")
	}

	if err := errors.Join(nameErr, emailErr, phoneErr, address.Validate()); err != nil {
		return err
	}

	c.name, c.email, c.phone, c.address = name, email, phone, address
	return nil
}
