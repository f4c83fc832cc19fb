package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

type DeleteCustomerCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteCustomerCommandHandler(uowFactory OrderUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{uowFactory: uowFactory}
}

// Handle deletes a customer that no order references. Customers with orders
// are rejected with a ConflictError.
func (h DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customers := uow.CustomerRepository()
	if _, err := customers.Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	hasOrders, err := uow.OrderRepository().ExistsForCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if hasOrders {
		return errs.NewConflictError("customer " + cmd.CustomerID().String() + " has orders")
	}

	if err = customers.Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
