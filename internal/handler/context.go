package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ninokhhh/lunacase/pkg/jwtutil"
)

// currentUser pulls the authenticated identity out of the context. The auth
// middleware puts it there, so a miss means the route was wired without it.
func currentUser(c echo.Context) (*jwtutil.UserClaims, error) {
	claims, ok := c.Get("user").(*jwtutil.UserClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return claims, nil
}
