package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(c echo.Context) error {
	views, err := s.h.GetOrders.Handle(c.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(views, orderFromView))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}
	views, err := s.h.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderFromView(views[0]))
}

// ListOrdersByCustomer handles GET /api/orders/customer/:customerId.
func (s *Server) ListOrdersByCustomer(c echo.Context) error {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return err
	}
	query, err := queries.NewListOrdersByCustomerQuery(customerID)
	if err != nil {
		return err
	}
	views, err := s.h.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(views, orderFromView))
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return err
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, line := range req.Items {
		item, itemErr := order.NewItem(line.ProductName, line.Quantity, line.UnitPrice, line.Weight)
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, items)
	if err != nil {
		return err
	}
	created, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, orderFromDomain(created))
}

// ChangeOrderStatus handles POST /api/orders/:id/{confirm|process|ready|cancel}.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	action, err := commands.ParseOrderAction(c.Param("action"))
	if err != nil {
		return echo.ErrNotFound
	}
	cmd, err := commands.NewChangeOrderStatusCommand(id, action)
	if err != nil {
		return err
	}
	changed, err := s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderFromDomain(changed))
}
