package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListDeliveries handles GET /api/deliveries.
func (s *Server) ListDeliveries(c echo.Context) error {
	views, err := s.h.GetDeliveries.Handle(c.Request().Context(), queries.NewListDeliveriesQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(views, deliveryFromView))
}

// GetDelivery handles GET /api/deliveries/:id.
func (s *Server) GetDelivery(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return err
	}
	return s.oneDelivery(c, query)
}

// GetDeliveryByOrder handles GET /api/deliveries/order/:orderId and returns
// the latest delivery of the order.
func (s *Server) GetDeliveryByOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return err
	}
	query, err := queries.NewGetDeliveryByOrderQuery(orderID)
	if err != nil {
		return err
	}
	return s.oneDelivery(c, query)
}

func (s *Server) oneDelivery(c echo.Context, query queries.GetDeliveriesQuery) error {
	views, err := s.h.GetDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deliveryFromView(views[0]))
}

// ListDeliveriesByCourier handles GET /api/deliveries/courier/:courierId.
func (s *Server) ListDeliveriesByCourier(c echo.Context) error {
	courierID, err := pathID(c, "courierId")
	if err != nil {
		return err
	}
	query, err := queries.NewListDeliveriesByCourierQuery(courierID)
	if err != nil {
		return err
	}
	views, err := s.h.GetDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(views, deliveryFromView))
}

// AssignDelivery handles POST /api/deliveries.
func (s *Server) AssignDelivery(c echo.Context) error {
	var req AssignDeliveryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	assigned, err := s.assign(c, req)
	if s.assignments != nil {
		s.assignments.ObserveAssignment(err)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, deliveryFromDomain(assigned))
}

func (s *Server) assign(c echo.Context, req AssignDeliveryRequest) (*delivery.Delivery, error) {
	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return nil, err
	}
	cmd, err := commands.NewAssignDeliveryCommand(orderID, courierID, req.DistanceKm)
	if err != nil {
		return nil, err
	}
	return s.h.AssignDelivery.Handle(c.Request().Context(), cmd)
}

// ChangeDeliveryStatus handles POST /api/deliveries/:id/{pickup|transit|deliver|fail}.
func (s *Server) ChangeDeliveryStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	action, err := commands.ParseDeliveryAction(c.Param("action"))
	if err != nil {
		return echo.ErrNotFound
	}
	cmd, err := commands.NewChangeDeliveryStatusCommand(id, action)
	if err != nil {
		return err
	}
	changed, err := s.h.ChangeDeliveryStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deliveryFromDomain(changed))
}
