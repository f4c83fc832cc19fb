package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/customer"
)

type UpdateCustomerCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateCustomerCommandHandler(uowFactory OrderUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{uowFactory: uowFactory}
}

// Handle locks the customer, applies the new profile and stores it. A
// rejected profile leaves the stored customer untouched.
func (h UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	c, err := repo.GetForUpdate(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = c.Update(cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
