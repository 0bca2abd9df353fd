package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"conduit/internal/auth"
	apperrors "conduit/internal/errors"
)

// identityKey is where the router's token middleware stores parsed claims.
const identityKey = "identity"

// identity returns the bearer claims for the request, or nil when no valid
// token was presented. Whether anonymity is an error is each service's call.
func identity(c echo.Context) *auth.Claims {
	claims, _ := c.Get(identityKey).(*auth.Claims)
	return claims
}

// httpError maps a domain error onto the standard error response.
func httpError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// queryInt parses an integer query parameter, falling back to def on
// absence or garbage.
func queryInt(c echo.Context, name string, def int) int {
	if v := c.QueryParam(name); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
