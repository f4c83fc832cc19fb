package http

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func pathID(c echo.Context, name string) (kernel.UUID, error) {
	raw := c.Param(name)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	return kernel.UUIDFromString(raw)
}

func bind(c echo.Context, dest any) error {
	if err := c.Bind(dest); err != nil {
		return badRequest("invalid request body")
	}
	return nil
}
