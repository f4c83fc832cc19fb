package cmd

import (
	"log/slog"
	"time"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
	"fulfillment/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	dispatcher services.DeliveryDispatcher
	publisher  ports.EventPublisher
	closers    []func() error
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	eta, err := services.NewETAEstimator(cfg.CourierAverageSpeedKmh)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	root := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: services.NewDeliveryDispatcher(eta),
		publisher:  kafka.NopPublisher{},
		registry:   registry,
		metrics:    metrics.New(registry),
		logger:     logger,
	}

	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(cfg.KafkaBrokers, kafka.Topics{
			OrderStatusChanged:    cfg.KafkaOrderChangedTopic,
			DeliveryStatusChanged: cfg.KafkaDeliveryChangedTopic,
		})
		root.publisher = publisher
		root.closers = append(root.closers, publisher.Close)
	} else {
		logger.Info("Kafka brokers not configured, status events are not published")
	}

	return root, nil
}

// Now is the service clock. Timestamps are truncated to microseconds, the
// resolution Postgres stores, so loaded aggregates equal the saved ones.
func (c *CompositionRoot) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (c *CompositionRoot) Close() {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			c.logger.Warn("failed to close resource", "error", err)
		}
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryAll() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.component("orders"), c.Now)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher, c.component("orders"), c.Now)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCourierCommandHandler() commands.DeleteCourierCommandHandler {
	return commands.NewDeleteCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(
		c.uowFactoryAll(), c.dispatcher, c.publisher, c.component("deliveries"), c.Now)
}

func (c *CompositionRoot) CreateChangeDeliveryStatusCommandHandler() commands.ChangeDeliveryStatusCommandHandler {
	return commands.NewChangeDeliveryStatusCommandHandler(
		c.uowFactoryAll(), c.dispatcher, c.publisher, c.component("deliveries"), c.Now)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCouriersQueryHandler() queries.GetCouriersQueryHandler {
	return queries.NewGetCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesQueryHandler() queries.GetDeliveriesQueryHandler {
	return queries.NewGetDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *echo.Echo {
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateCustomer:       c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:       c.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer:       c.CreateDeleteCustomerCommandHandler(),
		GetCustomers:         c.CreateGetCustomersQueryHandler(),
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:    c.CreateChangeOrderStatusCommandHandler(),
		GetOrders:            c.CreateGetOrdersQueryHandler(),
		CreateCourier:        c.CreateCreateCourierCommandHandler(),
		DeleteCourier:        c.CreateDeleteCourierCommandHandler(),
		GetCouriers:          c.CreateGetCouriersQueryHandler(),
		AssignDelivery:       c.CreateAssignDeliveryCommandHandler(),
		ChangeDeliveryStatus: c.CreateChangeDeliveryStatusCommandHandler(),
		GetDeliveries:        c.CreateGetDeliveriesQueryHandler(),
	}, c.metrics)
	return httpadapter.NewEcho(server, c.metrics, c.registry, c.component("http"))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	overdue := jobs.NewOverdueDeliveryJob(
		queries.NewCountOverdueDeliveriesQueryHandler(c.gormDB),
		c.metrics.OverdueDeliveries,
		c.Now,
		c.cfg.OverdueCheckSchedule,
		c.logger,
	)
	return jobs.NewJobManager(overdue)
}

func (c *CompositionRoot) component(name string) *slog.Logger {
	return c.logger.With("component", name)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
