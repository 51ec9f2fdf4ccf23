package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lojaviva/commerce-system/internal/core/domain"
)

// pathID extracts a positive integer path parameter, failing with a
// validation error before any service call when the segment is not a number.
func pathID(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(fmt.Sprintf(
			"invalid %s: %s - try an integer number higher than zero", name, raw))
	}
	return id, nil
}
