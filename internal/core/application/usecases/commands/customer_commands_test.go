package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("1 Analytical Way", "London", "N1 1AA", "UK")
	require.NoError(t, err)
	return address
}

func testCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("Ada", "ada@example.com", "+44 1", testAddress(t))
	require.NoError(t, err)
	return c
}

func TestNewCreateCustomerCommand(t *testing.T) {
	_, err := commands.NewCreateCustomerCommand("Ada", "ada@example.com", "+44", kernel.Address{})
	require.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)

	cmd, err := commands.NewCreateCustomerCommand("Ada", "ada@example.com", "+44", testAddress(t))
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Ada", cmd.Name())
}

func TestCreateCustomerCommandHandler_Handle(t *testing.T) {
	t.Run("should store customer", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreateCustomerCommand("Ada", "ada@example.com", "+44", testAddress(t))

		repo := new(MockCustomerRepository)
		uow := newUoW()
		uow.On("CustomerRepository").Return(repo).Once()
		repo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		created, err := commands.NewCreateCustomerCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", created.Email())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should reject malformed email before opening a transaction", func(t *testing.T) {
		cmd, _ := commands.NewCreateCustomerCommand("Ada", "not-an-email", "+44", testAddress(t))
		factory := new(MockOrderUoWFactory)

		_, err := commands.NewCreateCustomerCommandHandler(factory).Handle(t.Context(), cmd)

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should reject unconstructed command", func(t *testing.T) {
		_, err := commands.NewCreateCustomerCommandHandler(new(MockOrderUoWFactory)).
			Handle(t.Context(), commands.CreateCustomerCommand{})

		require.ErrorIs(t, err, commands.ErrCreateCustomerCommandIsNotConstructed)
	})
}

func TestUpdateCustomerCommandHandler_Handle(t *testing.T) {
	t.Run("should update profile", func(t *testing.T) {
		ctx := t.Context()
		existing := testCustomer(t)
		cmd, err := commands.NewUpdateCustomerCommand(existing.ID(), "Ada L.", "ada@lovelace.org", "+44 2", testAddress(t))
		require.NoError(t, err)

		repo := new(MockCustomerRepository)
		uow := newUoW()
		uow.On("CustomerRepository").Return(repo).Once()
		repo.On("GetForUpdate", ctx, existing.ID()).Return(existing, nil).Once()
		repo.On("Update", ctx, existing).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		updated, err := commands.NewUpdateCustomerCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Ada L.", updated.Name())
		assert.Equal(t, "ada@lovelace.org", updated.Email())
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("should return not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewUpdateCustomerCommand(id, "Ada", "ada@example.com", "+44", testAddress(t))

		repo := new(MockCustomerRepository)
		uow := newUoW()
		uow.On("CustomerRepository").Return(repo).Once()
		repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("customer", id)).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		_, err := commands.NewUpdateCustomerCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should keep customer unchanged on invalid profile", func(t *testing.T) {
		ctx := t.Context()
		existing := testCustomer(t)
		cmd, _ := commands.NewUpdateCustomerCommand(existing.ID(), "", "broken", "+44", testAddress(t))

		repo := new(MockCustomerRepository)
		uow := newUoW()
		uow.On("CustomerRepository").Return(repo).Once()
		repo.On("GetForUpdate", ctx, existing.ID()).Return(existing, nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		_, err := commands.NewUpdateCustomerCommandHandler(factory).Handle(ctx, cmd)

		require.Error(t, err)
		assert.Equal(t, "Ada", existing.Name())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteCustomerCommandHandler_Handle(t *testing.T) {
	setup := func(t *testing.T, hasOrders bool) (*MockCustomerRepository, *MockUoW, *MockOrderUoWFactory, *customer.Customer) {
		t.Helper()
		existing := testCustomer(t)
		customers := new(MockCustomerRepository)
		orders := new(MockOrderRepository)
		uow := newUoW()
		uow.On("CustomerRepository").Return(customers).Once()
		uow.On("OrderRepository").Return(orders).Once()
		customers.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
		orders.On("ExistsForCustomer", mock.Anything, existing.ID()).Return(hasOrders, nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		return customers, uow, factory, existing
	}

	t.Run("should delete customer without orders", func(t *testing.T) {
		customers, uow, factory, existing := setup(t, false)
		customers.On("Delete", mock.Anything, existing.ID()).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()
		cmd, _ := commands.NewDeleteCustomerCommand(existing.ID())

		err := commands.NewDeleteCustomerCommandHandler(factory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		customers.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should refuse customer with orders", func(t *testing.T) {
		customers, _, factory, existing := setup(t, true)
		cmd, _ := commands.NewDeleteCustomerCommand(existing.ID())

		err := commands.NewDeleteCustomerCommandHandler(factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		customers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("should surface commit error", func(t *testing.T) {
		customers, uow, factory, existing := setup(t, false)
		customers.On("Delete", mock.Anything, existing.ID()).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(errors.New("commit error")).Once()
		cmd, _ := commands.NewDeleteCustomerCommand(existing.ID())

		err := commands.NewDeleteCustomerCommandHandler(factory).Handle(t.Context(), cmd)

		require.EqualError(t, err, "commit error")
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := commands.NewDeleteCustomerCommand(kernel.UUID{})

		require.Error(t, err)
	})
}
