package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"vetclinic/internal/auth"
	apperrors "vetclinic/internal/errors"
	"vetclinic/internal/service"
)

// fail renders err as the JSON error envelope. Unexpected errors keep the
// cause as the internal error so the request logger records it.
func fail(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	echoErr := auth.Challenge(c, httpErr)
	if httpErr.StatusCode == http.StatusInternalServerError {
		if he, ok := echoErr.(*echo.HTTPError); ok {
			return he.SetInternal(err)
		}
	}
	return echoErr
}

func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return apperrors.NewValidationError("body", "malformed request body")
	}
	return c.Validate(dst)
}

func parseID(c echo.Context) (uint, error) {
	var id uint
	if err := echo.PathParamsBinder(c).MustUint("id", &id).BindError(); err != nil || id == 0 {
		return 0, apperrors.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

func parsePage(c echo.Context) (service.Page, error) {
	var page service.Page
	if err := echo.QueryParamsBinder(c).
		Int("skip", &page.Skip).
		Int("limit", &page.Limit).
		BindError(); err != nil {
		return page, apperrors.NewValidationError("query", "skip and limit must be integers")
	}
	if page.Skip < 0 {
		return page, apperrors.NewValidationError("skip", "must not be negative")
	}
	return page.Normalize(), nil
}

func create[T, In any](c echo.Context, fn func(context.Context, In) (*T, error)) error {
	var in In
	if err := bindAndValidate(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := fn(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func get[T any](c echo.Context, fn func(context.Context, uint) (*T, error)) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	out, err := fn(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func list[T any](c echo.Context, fn func(context.Context, service.Page) ([]T, error)) error {
	page, err := parsePage(c)
	if err != nil {
		return fail(c, err)
	}
	out, err := fn(c.Request().Context(), page)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		out = []T{}
	}
	return c.JSON(http.StatusOK, out)
}

func update[T, In any](c echo.Context, fn func(context.Context, uint, In) (*T, error)) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	var in In
	if err := bindAndValidate(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := fn(c.Request().Context(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func remove[T any](c echo.Context, fn func(context.Context, uint) (*T, error)) error {
	return get(c, fn)
}
