package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListCustomers handles GET /api/customers.
func (s *Server) ListCustomers(c echo.Context) error {
	views, err := s.h.GetCustomers.Handle(c.Request().Context(), queries.NewListCustomersQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(views, customerFromView))
}

// GetCustomer handles GET /api/customers/:id.
func (s *Server) GetCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return err
	}
	views, err := s.h.GetCustomers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customerFromView(views[0]))
}

// CreateCustomer handles POST /api/customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	var req CustomerRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	address, err := req.Address.toDomain()
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateCustomerCommand(req.Name, req.Email, req.Phone, address)
	if err != nil {
		return err
	}
	created, err := s.h.CreateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, customerFromDomain(created))
}

// UpdateCustomer handles PUT /api/customers/:id.
func (s *Server) UpdateCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req CustomerRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	address, err := req.Address.toDomain()
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateCustomerCommand(id, req.Name, req.Email, req.Phone, address)
	if err != nil {
		return err
	}
	updated, err := s.h.UpdateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customerFromDomain(updated))
}

// DeleteCustomer handles DELETE /api/customers/:id.
func (s *Server) DeleteCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
