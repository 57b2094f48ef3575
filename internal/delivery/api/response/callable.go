package response

import (
	"net/http"

	domainerrors "reminder/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Callable status codes, as understood by the Firebase client SDKs
const (
	CallableInvalidArgument = "INVALID_ARGUMENT"
	CallableNotFound        = "NOT_FOUND"
	CallableUnauthenticated = "UNAUTHENTICATED"
	CallableInternal        = "INTERNAL"
)

// CallableRequest is the body of a callable function invocation
type CallableRequest[T any] struct {
	Data T `json:"data"`
}

// CallableResult is the body of a successful callable response
type CallableResult struct {
	Result any `json:"result"`
}

// CallableErrorResponse is the body of a failed callable response
type CallableErrorResponse struct {
	Error CallableError `json:"error"`
}

// CallableError carries the canonical status of a callable failure
type CallableError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CallableSuccess returns {"result": result}
func CallableSuccess(c echo.Context, result any) error {
	return c.JSON(http.StatusOK, CallableResult{Result: result})
}

// CallableFailure returns a callable error envelope for status
func CallableFailure(c echo.Context, status string) error {
	httpCode := http.StatusInternalServerError
	switch status {
	case CallableInvalidArgument:
		httpCode = http.StatusBadRequest
	case CallableNotFound:
		httpCode = http.StatusNotFound
	case CallableUnauthenticated:
		httpCode = http.StatusUnauthorized
	}

	return c.JSON(httpCode, CallableErrorResponse{
		Error: CallableError{Status: status, Message: status},
	})
}

// CallableStatus maps an error to a callable status. Anything unrecognized is INTERNAL.
func CallableStatus(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrValidationFailed), errors.Is(err, domainerrors.ErrInvalidReminderPath):
		return CallableInvalidArgument
	case errors.Is(err, domainerrors.ErrReminderNotFound), errors.Is(err, domainerrors.ErrNotFound):
		return CallableNotFound
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return CallableUnauthenticated
	default:
		return CallableInternal
	}
}
