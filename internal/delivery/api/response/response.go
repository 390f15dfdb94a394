// Package response writes the JSON envelopes shared by every API endpoint:
// {"data": ..., "meta": {...}} on success and {"error": ..., "meta": {...}}
// on failure.
package response

import (
	"net/http"

	deliverycontext "teka/internal/delivery/context"
	domainerrors "teka/internal/domain/errors"
	"teka/internal/errors"

	"github.com/labstack/echo/v4"
)

// CodeInvalidInput is returned when a request body cannot be decoded.
const CodeInvalidInput = "INVALID_INPUT"

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// exposesDetails is false for server failures and for auth rejections,
// whose details could leak account or infrastructure state.
func exposesDetails(statusCode int) bool {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return false
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return false
	default:
		return true
	}
}

func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if !exposesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError answers 400 INVALID_INPUT for bodies echo could not bind.
func BindingError(c echo.Context, message string) error {
	return BadRequest(c, CodeInvalidInput, message)
}

func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// HandleAppError writes client errors (4xx AppErrors) directly. Storage
// failures and unknown errors are returned for the central error handler,
// which logs them before answering 500.
func HandleAppError(c echo.Context, err error) error {
	appErr, ok := errors.Find[domainerrors.AppError](err)
	if !ok || appErr.HTTPCode() >= http.StatusInternalServerError {
		return errors.WithStack(err)
	}

	var details any
	if appErr.Details() != "" {
		details = appErr.Details()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
