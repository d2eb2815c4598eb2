package handler

import (
	"strconv"

	domainerrors "chirpmap/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// slotIndex parses the :index path parameter. Range checks are left to the engine.
func slotIndex(c echo.Context) (int, error) {
	raw := c.Param("index")

	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("slot index must be an integer, got " + strconv.Quote(raw))
	}

	return index, nil
}

// bindAndValidate binds the request body into req and runs the struct validation tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}

	return c.Validate(req)
}
