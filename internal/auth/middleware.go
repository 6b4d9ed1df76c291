package auth

import (
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "vetclinic/internal/errors"
	"vetclinic/internal/model"
)

const userContextKey = "user"

// Middleware resolves the bearer token once per request and stores the user
// on the echo context. Requests without a valid token get 401 with a
// WWW-Authenticate challenge.
func Middleware(resolver *Resolver) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  userContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return resolver.Resolve(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var parseErr *echojwt.TokenParsingError
			if errors.As(err, &parseErr) {
				err = parseErr.Err
			} else {
				// missing or malformed Authorization header
				err = apperrors.ErrUnauthenticated
			}
			return Challenge(c, apperrors.MapErrorToHTTP(err))
		},
	})
}

// Challenge converts httpErr into an echo error, adding the bearer challenge on 401.
func Challenge(c echo.Context, httpErr *apperrors.HTTPError) error {
	if httpErr.Unauthorized() {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// CurrentUser returns the user resolved by Middleware, or nil outside protected routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}
