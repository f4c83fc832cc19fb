// Package http exposes the fulfillment use cases as a JSON REST API under
// /api, served by echo.
package http

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Handler is satisfied by every command and query handler that returns a
// result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Executor is satisfied by command handlers without a result.
type Executor[In any] interface {
	Handle(ctx context.Context, in In) error
}

// AssignmentObserver records the outcome of every assignment attempt.
type AssignmentObserver interface {
	ObserveAssignment(err error)
}

type Handlers struct {
	CreateCustomer Handler[commands.CreateCustomerCommand, *customer.Customer]
	UpdateCustomer Handler[commands.UpdateCustomerCommand, *customer.Customer]
	DeleteCustomer Executor[commands.DeleteCustomerCommand]
	GetCustomers   Handler[queries.GetCustomersQuery, []queries.CustomerView]

	CreateOrder       Handler[commands.CreateOrderCommand, *order.Order]
	ChangeOrderStatus Handler[commands.ChangeOrderStatusCommand, *order.Order]
	GetOrders         Handler[queries.GetOrdersQuery, []queries.OrderView]

	CreateCourier Handler[commands.CreateCourierCommand, *courier.Courier]
	DeleteCourier Executor[commands.DeleteCourierCommand]
	GetCouriers   Handler[queries.GetCouriersQuery, []queries.CourierView]

	AssignDelivery       Handler[commands.AssignDeliveryCommand, *delivery.Delivery]
	ChangeDeliveryStatus Handler[commands.ChangeDeliveryStatusCommand, *delivery.Delivery]
	GetDeliveries        Handler[queries.GetDeliveriesQuery, []queries.DeliveryView]
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h           Handlers
	assignments AssignmentObserver
}

func NewServer(handlers Handlers, assignments AssignmentObserver) *Server {
	return &Server{h: handlers, assignments: assignments}
}

// Register mounts every route under /api.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/customers", s.ListCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers/:id", s.GetCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/customer/:customerId", s.ListOrdersByCustomer)
	api.POST("/orders/:id/:action", s.ChangeOrderStatus)

	api.GET("/couriers", s.ListCouriers)
	api.GET("/couriers/available", s.ListAvailableCouriers)
	api.GET("/couriers/available/:weight", s.ListCouriersForWeight)
	api.GET("/couriers/:id", s.GetCourier)
	api.POST("/couriers/bike", s.CreateBikeCourier)
	api.POST("/couriers/car", s.CreateCarCourier)
	api.DELETE("/couriers/:id", s.DeleteCourier)

	api.GET("/deliveries", s.ListDeliveries)
	api.POST("/deliveries", s.AssignDelivery)
	api.GET("/deliveries/:id", s.GetDelivery)
	api.GET("/deliveries/order/:orderId", s.GetDeliveryByOrder)
	api.GET("/deliveries/courier/:courierId", s.ListDeliveriesByCourier)
	api.POST("/deliveries/:id/:action", s.ChangeDeliveryStatus)
}
