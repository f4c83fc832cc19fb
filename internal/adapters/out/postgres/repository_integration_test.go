package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type uowFactory struct{ inner ports.UnitOfWorkFactory }

func (f uowFactory) Create() commands.UoW { return f.inner.Create() }

// RepositoryIntegrationTestSuite exercises the unit of work and every
// repository against a real PostgreSQL with the production migrations.
type RepositoryIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	now       time.Time
}

func TestRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}

func (suite *RepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
	suite.now = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
}

func (suite *RepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(pgtest.Truncate).Error)
}

// inTx runs fn in a committed transaction.
func (suite *RepositoryIntegrationTestSuite) inTx(fn func(uow ports.UnitOfWork)) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	fn(uow)
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *RepositoryIntegrationTestSuite) givenCustomer() *customer.Customer {
	address, err := kernel.NewAddress("1 Analytical Way", "London", "N1 1AA", "UK")
	suite.Require().NoError(err)
	c, err := customer.NewCustomer("Ada", "ada@example.com", "+44 1", address)
	suite.Require().NoError(err)
	suite.inTx(func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.CustomerRepository().Add(context.Background(), c))
	})
	return c
}

func (suite *RepositoryIntegrationTestSuite) givenReadyOrder(customerID kernel.UUID, weightKg float64) *order.Order {
	item, err := order.NewItem("Widget", 2, decimal.RequireFromString("10.00"), weightKg/2)
	suite.Require().NoError(err)
	o, err := order.NewOrder(customerID, []order.Item{item}, suite.now)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Confirm(suite.now))
	suite.Require().NoError(o.Process(suite.now))
	suite.Require().NoError(o.MarkReady(suite.now))
	suite.inTx(func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.OrderRepository().Add(context.Background(), o))
	})
	return o
}

func (suite *RepositoryIntegrationTestSuite) givenBike(name string) *courier.Courier {
	c, err := courier.NewBikeCourier(name, "+1")
	suite.Require().NoError(err)
	suite.inTx(func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.CourierRepository().Add(context.Background(), c))
	})
	return c
}

func (suite *RepositoryIntegrationTestSuite) TestCustomer_RoundTripUpdateDelete() {
	ctx := context.Background()
	c := suite.givenCustomer()
	repo := suite.factory.Create().CustomerRepository()

	loaded, err := repo.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("ada@example.com", loaded.Email())
	suite.Equal("N1 1AA", loaded.Address().PostalCode())

	suite.Require().NoError(loaded.Update("Ada L.", "ada@lovelace.org", "+44 2", loaded.Address()))
	suite.Require().NoError(repo.Update(ctx, loaded))
	reloaded, err := repo.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("Ada L.", reloaded.Name())

	suite.Require().NoError(repo.Delete(ctx, c.ID()))
	_, err = repo.Get(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(repo.Delete(ctx, c.ID()), errs.ErrObjectNotFound)
}

// TestCustomer_GetForUpdateBlocksSecondWriter holds the customer row lock in
// one transaction and checks that a second locking read waits for it.
func (suite *RepositoryIntegrationTestSuite) TestCustomer_GetForUpdateBlocksSecondWriter() {
	ctx := context.Background()
	c := suite.givenCustomer()

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	locked, err := first.CustomerRepository().GetForUpdate(ctx, c.ID())
	suite.Require().NoError(err)

	acquired := make(chan *customer.Customer, 1)
	go func() {
		second := suite.factory.Create()
		if beginErr := second.Begin(ctx); beginErr != nil {
			close(acquired)
			return
		}
		defer func() { _ = second.Rollback(ctx) }()
		loaded, getErr := second.CustomerRepository().GetForUpdate(ctx, c.ID())
		if getErr != nil {
			close(acquired)
			return
		}
		acquired <- loaded
	}()

	suite.Never(func() bool { return len(acquired) > 0 }, 300*time.Millisecond, 20*time.Millisecond)

	suite.Require().NoError(locked.Update("Ada L.", "ada@lovelace.org", "+44 2", locked.Address()))
	suite.Require().NoError(first.CustomerRepository().Update(ctx, locked))
	suite.Require().NoError(first.Commit(ctx))

	select {
	case loaded, ok := <-acquired:
		suite.Require().True(ok)
		suite.Equal("Ada L.", loaded.Name())
	case <-time.After(5 * time.Second):
		suite.Fail("second locking read never returned")
	}
}

func (suite *RepositoryIntegrationTestSuite) TestCustomer_DeleteWithOrdersIsConflict() {
	ctx := context.Background()
	c := suite.givenCustomer()
	suite.givenReadyOrder(c.ID(), 3)

	exists, err := suite.factory.Create().OrderRepository().ExistsForCustomer(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(exists)

	err = suite.factory.Create().CustomerRepository().Delete(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *RepositoryIntegrationTestSuite) TestOrder_RoundTripKeepsItemsAndTotals() {
	ctx := context.Background()
	c := suite.givenCustomer()
	o := suite.givenReadyOrder(c.ID(), 3)

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ReadyForDelivery, loaded.Status())
	suite.True(loaded.TotalPrice().Equal(decimal.NewFromInt(20)))
	suite.InDelta(3.0, loaded.TotalWeight().Kilograms(), 1e-9)
	suite.Require().Len(loaded.Items(), 1)
	suite.Equal("Widget", loaded.Items()[0].ProductName())
	suite.True(suite.now.Equal(loaded.CreatedAt()))
}

func (suite *RepositoryIntegrationTestSuite) TestOrder_UnknownCustomerIsConflict() {
	item, _ := order.NewItem("Widget", 1, decimal.NewFromInt(1), 1)
	o, _ := order.NewOrder(kernel.NewUUID(), []order.Item{item}, suite.now)

	err := suite.factory.Create().OrderRepository().Add(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *RepositoryIntegrationTestSuite) TestCourier_RoundTripBothVariants() {
	ctx := context.Background()
	bike := suite.givenBike("Sam")
	car, err := courier.NewCarCourier("Kim", "+2", "AB-123")
	suite.Require().NoError(err)
	suite.inTx(func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.CourierRepository().Add(ctx, car))
	})

	repo := suite.factory.Create().CourierRepository()
	loadedBike, err := repo.Get(ctx, bike.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.Bike, loadedBike.Vehicle().Type())
	_, hasPlate := loadedBike.Vehicle().LicensePlate()
	suite.False(hasPlate)

	loadedCar, err := repo.Get(ctx, car.ID())
	suite.Require().NoError(err)
	plate, hasPlate := loadedCar.Vehicle().LicensePlate()
	suite.True(hasPlate)
	suite.Equal("AB-123", plate)
	suite.InDelta(100.0, loadedCar.MaxWeight().Kilograms(), 1e-9)

	suite.Require().NoError(loadedCar.Occupy())
	suite.Require().NoError(repo.Update(ctx, loadedCar))
	reloaded, err := repo.Get(ctx, car.ID())
	suite.Require().NoError(err)
	suite.False(reloaded.IsAvailable())
}

func (suite *RepositoryIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	c, _ := courier.NewBikeCourier("Ghost", "+0")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CourierRepository().Add(ctx, c))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().CourierRepository().Get(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().Error(uow.Commit(ctx))
}

func (suite *RepositoryIntegrationTestSuite) TestDelivery_PartialIndexesGuardInvariants() {
	ctx := context.Background()
	c := suite.givenCustomer()
	first := suite.givenReadyOrder(c.ID(), 1)
	second := suite.givenReadyOrder(c.ID(), 1)
	sam := suite.givenBike("Sam")

	d, err := delivery.NewDelivery(first.ID(), sam.ID(), 1, suite.now, suite.now.Add(time.Minute))
	suite.Require().NoError(err)
	repo := suite.factory.Create().DeliveryRepository()
	suite.Require().NoError(repo.Add(ctx, d))

	busy, err := repo.ExistsActiveForCourier(ctx, sam.ID())
	suite.Require().NoError(err)
	suite.True(busy)

	again, _ := delivery.NewDelivery(second.ID(), sam.ID(), 1, suite.now, suite.now)
	suite.Require().ErrorIs(repo.Add(ctx, again), errs.ErrConflict)

	duplicate, _ := delivery.NewDelivery(first.ID(), kernel.NewUUID(), 1, suite.now, suite.now)
	suite.Require().ErrorIs(repo.Add(ctx, duplicate), errs.ErrConflict)

	suite.Require().NoError(d.MarkFailed())
	suite.Require().NoError(repo.Update(ctx, d))
	unfailed, err := repo.ExistsUnfailedForOrder(ctx, first.ID())
	suite.Require().NoError(err)
	suite.False(unfailed)

	retry, _ := delivery.NewDelivery(first.ID(), sam.ID(), 1, suite.now, suite.now)
	suite.Require().NoError(repo.Add(ctx, retry))

	loaded, err := repo.Get(ctx, retry.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Assigned, loaded.Status())
	suite.True(suite.now.Equal(*loaded.EstimatedDeliveryTime()))
}

// TestAssign_ConcurrentRequestsForOneCourier races two assignments of the same
// courier to different orders. Exactly one must win.
func (suite *RepositoryIntegrationTestSuite) TestAssign_ConcurrentRequestsForOneCourier() {
	c := suite.givenCustomer()
	sam := suite.givenBike("Sam")
	orders := []*order.Order{suite.givenReadyOrder(c.ID(), 3), suite.givenReadyOrder(c.ID(), 3)}

	eta, err := services.NewETAEstimator(30)
	suite.Require().NoError(err)
	handler := commands.NewAssignDeliveryCommandHandler(
		uowFactory{suite.factory}, services.NewDeliveryDispatcher(eta), nil, nil,
		func() time.Time { return suite.now },
	)

	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		results = make([]error, len(orders))
	)
	for i, o := range orders {
		cmd, cmdErr := commands.NewAssignDeliveryCommand(o.ID(), sam.ID(), 4.2)
		suite.Require().NoError(cmdErr)
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, results[i] = handler.Handle(context.Background(), cmd)
		}()
	}
	close(start)
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, errs.ErrConflict):
			conflicted++
		default:
			suite.Failf("unexpected error", "%v", err)
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, conflicted)

	var count int64
	suite.Require().NoError(suite.db.Table("deliveries").Count(&count).Error)
	suite.Equal(int64(1), count)

	reloaded, err := suite.factory.Create().CourierRepository().Get(context.Background(), sam.ID())
	suite.Require().NoError(err)
	suite.False(reloaded.IsAvailable())
}
