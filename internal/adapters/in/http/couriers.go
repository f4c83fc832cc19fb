package http

import (
	"net/http"
	"strconv"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListCouriers handles GET /api/couriers.
func (s *Server) ListCouriers(c echo.Context) error {
	return s.listCouriers(c, queries.NewListCouriersQuery())
}

// ListAvailableCouriers handles GET /api/couriers/available.
func (s *Server) ListAvailableCouriers(c echo.Context) error {
	return s.listCouriers(c, queries.NewListAvailableCouriersQuery())
}

// ListCouriersForWeight handles GET /api/couriers/available/:weight.
func (s *Server) ListCouriersForWeight(c echo.Context) error {
	weight, err := strconv.ParseFloat(c.Param("weight"), 64)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	query, err := queries.NewListCouriersForWeightQuery(weight)
	if err != nil {
		return err
	}
	return s.listCouriers(c, query)
}

func (s *Server) listCouriers(c echo.Context, query queries.GetCouriersQuery) error {
	views, err := s.h.GetCouriers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(views, courierFromView))
}

// GetCourier handles GET /api/couriers/:id.
func (s *Server) GetCourier(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetCourierQuery(id)
	if err != nil {
		return err
	}
	views, err := s.h.GetCouriers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courierFromView(views[0]))
}

// CreateBikeCourier handles POST /api/couriers/bike.
func (s *Server) CreateBikeCourier(c echo.Context) error {
	var req CreateBikeCourierRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	return s.createCourier(c, commands.NewCreateBikeCourierCommand(req.Name, req.Phone))
}

// CreateCarCourier handles POST /api/couriers/car.
func (s *Server) CreateCarCourier(c echo.Context) error {
	var req CreateCarCourierRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreateCarCourierCommand(req.Name, req.Phone, req.LicensePlate)
	if err != nil {
		return err
	}
	return s.createCourier(c, cmd)
}

func (s *Server) createCourier(c echo.Context, cmd commands.CreateCourierCommand) error {
	created, err := s.h.CreateCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, courierFromDomain(created))
}

// DeleteCourier handles DELETE /api/couriers/:id.
func (s *Server) DeleteCourier(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteCourierCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteCourier.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
