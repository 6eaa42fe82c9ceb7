package http

import (
	"errors"
	"net/http"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a use case error onto the HTTP status taxonomy and writes
// the JSON error body. The conflict case matters most: a courier who loses
// the acceptance race must see 409, not a generic failure.
func writeError(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// internal details stay in the logs
		message = "internal server error"
		ctx.Logger().Error(err)
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden),
		errors.Is(err, account.ErrRoleAlreadyAssigned),
		errors.Is(err, account.ErrRoleIsNotClaimable):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
