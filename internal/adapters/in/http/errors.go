package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"meatmanager/internal/core/application/usecases/commands"
	"meatmanager/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// statusOf maps application errors onto HTTP status codes.
func statusOf(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectIsReferenced):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrNoItemsEntered):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorHandler renders every error returned by a handler or middleware as an
// Error body. Internal errors are logged and their details withheld.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := statusOf(err)
		message := err.Error()

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			message = fmt.Sprint(httpErr.Message)
		}

		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
			message = http.StatusText(status)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, Error{Code: status, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Writing error response failed", "error", writeErr)
		}
	}
}

// requestValidator plugs validator/v10 into echo.Context.Validate.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			return errs.NewValueIsInvalidErrorWithCause(validationErrs[0].Field(), err)
		}
		return errs.NewValueIsInvalidErrorWithCause("request", err)
	}
	return nil
}
