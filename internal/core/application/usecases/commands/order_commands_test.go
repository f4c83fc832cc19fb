package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func widgetItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("Widget", 2, decimal.NewFromFloat(10.0), 1.5)
	require.NoError(t, err)
	return []order.Item{item}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should keep items", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewCreateOrderCommand(id, widgetItems(t))

		require.NoError(t, err)
		assert.Equal(t, id, cmd.CustomerID())
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("should join all input errors", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customerId")
		assert.Contains(t, err.Error(), "items")
	})
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should create order with totals and publish event", func(t *testing.T) {
		ctx := t.Context()
		ada := testCustomer(t)
		cmd, _ := commands.NewCreateOrderCommand(ada.ID(), widgetItems(t))

		customers := new(MockCustomerRepository)
		orders := new(MockOrderRepository)
		publisher := new(MockEventPublisher)
		uow := newUoW()
		mock.InOrder(
			uow.On("CustomerRepository").Return(customers).Once(),
			customers.On("Get", ctx, ada.ID()).Return(ada, nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			publisher.On("PublishOrderStatusChanged", ctx, mock.MatchedBy(func(e ports.OrderStatusChanged) bool {
				return e.Status == "Created" && e.CustomerID == ada.ID().String() && e.TotalPrice == "20.00"
			})).Return(nil).Once(),
		)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		created, err := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger(), clock).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Created, created.Status())
		assert.True(t, created.TotalPrice().Equal(decimal.NewFromInt(20)))
		assert.InDelta(t, 3.0, created.TotalWeight().Kilograms(), 1e-9)
		assert.Equal(t, fixedNow, created.CreatedAt())
		orders.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("should fail for unknown customer", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewCreateOrderCommand(id, widgetItems(t))

		customers := new(MockCustomerRepository)
		uow := newUoW()
		uow.On("CustomerRepository").Return(customers).Once()
		customers.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("customer", id)).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		_, err := commands.NewCreateOrderCommandHandler(factory, nil, discardLogger(), clock).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should not publish when commit fails", func(t *testing.T) {
		ctx := t.Context()
		ada := testCustomer(t)
		cmd, _ := commands.NewCreateOrderCommand(ada.ID(), widgetItems(t))

		customers := new(MockCustomerRepository)
		orders := new(MockOrderRepository)
		publisher := new(MockEventPublisher)
		uow := newUoW()
		uow.On("CustomerRepository").Return(customers).Once()
		customers.On("Get", ctx, ada.ID()).Return(ada, nil).Once()
		uow.On("OrderRepository").Return(orders).Once()
		orders.On("Add", ctx, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		_, err := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger(), clock).Handle(ctx, cmd)

		require.Error(t, err)
		publisher.AssertNotCalled(t, "PublishOrderStatusChanged", mock.Anything, mock.Anything)
	})
}

func TestParseOrderAction(t *testing.T) {
	for _, s := range []string{"confirm", "PROCESS", " ready ", "cancel"} {
		_, err := commands.ParseOrderAction(s)
		require.NoError(t, err, s)
	}

	_, err := commands.ParseOrderAction("ship")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangeOrderStatusCommandHandler_Handle(t *testing.T) {
	run := func(t *testing.T, o *order.Order, action commands.OrderAction, publishErr error) (*order.Order, *MockOrderRepository, error) {
		t.Helper()
		ctx := t.Context()
		orders := new(MockOrderRepository)
		publisher := new(MockEventPublisher)
		uow := newUoW()
		uow.On("OrderRepository").Return(orders).Once()
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		orders.On("Update", ctx, o).Return(nil).Maybe()
		uow.On("Commit", ctx).Return(nil).Maybe()
		publisher.On("PublishOrderStatusChanged", ctx, mock.Anything).Return(publishErr).Maybe()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), action)
		require.NoError(t, err)

		changed, err := commands.NewChangeOrderStatusCommandHandler(factory, publisher, discardLogger(), clock).Handle(ctx, cmd)
		return changed, orders, err
	}

	t.Run("should walk the order to ready for delivery", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), widgetItems(t), fixedNow)

		for _, step := range []struct {
			action commands.OrderAction
			want   order.Status
		}{
			{commands.ConfirmOrder, order.Confirmed},
			{commands.ProcessOrder, order.Processing},
			{commands.ReadyOrder, order.ReadyForDelivery},
		} {
			changed, orders, err := run(t, o, step.action, nil)

			require.NoError(t, err)
			assert.Equal(t, step.want, changed.Status())
			assert.Equal(t, fixedNow, *changed.UpdatedAt())
			orders.AssertCalled(t, "Update", mock.Anything, o)
		}
	})

	t.Run("should reject invalid transition without saving", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), widgetItems(t), fixedNow)

		_, orders, err := run(t, o, commands.ReadyOrder, nil)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Created, o.Status())
		orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should cancel created order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), widgetItems(t), fixedNow)

		changed, _, err := run(t, o, commands.CancelOrder, nil)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, changed.Status())
	})

	t.Run("should succeed when publishing fails", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), widgetItems(t), fixedNow)

		changed, _, err := run(t, o, commands.ConfirmOrder, errors.New("broker down"))

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, changed.Status())
	})
}
