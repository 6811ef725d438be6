package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vetcare/clinic-api/internal/api/middleware"
	"github.com/vetcare/clinic-api/internal/core/domain"
)

// ctxActor extracts the identity injected by the Auth middleware. Its
// presence proves the middleware ran; handlers behind the gate fail closed
// when it is missing.
func ctxActor(c echo.Context) (domain.Actor, error) {
	actor, ok := c.Get(middleware.ActorKey).(domain.Actor)
	if !ok || actor.ID == 0 {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return actor, nil
}

// pathID parses the numeric :id (or named) path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
