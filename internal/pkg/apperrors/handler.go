package apperrors

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/openride/openride/internal/pkg/logger"
)

// ErrorBody is the JSON shape of error responses
type ErrorBody struct {
	Success bool                   `json:"success"`
	Code    Code                   `json:"code"`
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// EchoErrorHandler converts errors into the standard error response shape.
// Install as echo's HTTPErrorHandler.
func EchoErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	appErr, ok := As(err)
	if !ok {
		if httpErr, isHTTP := err.(*echo.HTTPError); isHTTP {
			writeHTTPError(httpErr, c)
			return
		}
		appErr = Internal("internal server error", err)
	}

	if appErr.Code == CodeInternal {
		logger.Error("Unhandled internal error",
			logger.String("path", c.Path()),
			logger.Err(err))
	}

	body := ErrorBody{
		Success: false,
		Code:    appErr.Code,
		Error:   appErr.Message,
	}
	if appErr.Field != "" {
		body.Details = map[string]interface{}{"field": appErr.Field}
	}
	if appErr.Code == CodeRateLimited {
		seconds := int64(appErr.RetryAfter.Seconds())
		c.Response().Header().Set("Retry-After", strconv.FormatInt(seconds, 10))
		body.Details = map[string]interface{}{"retry_after_seconds": seconds}
	}

	_ = c.JSON(appErr.HTTPStatus(), body)
}

func writeHTTPError(httpErr *echo.HTTPError, c echo.Context) {
	msg, ok := httpErr.Message.(string)
	if !ok {
		msg = http.StatusText(httpErr.Code)
	}

	code := CodeInternal
	switch httpErr.Code {
	case http.StatusNotFound:
		code = CodeNotFound
	case http.StatusForbidden, http.StatusUnauthorized:
		code = CodeForbidden
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code = CodeValidation
	case http.StatusTooManyRequests:
		code = CodeRateLimited
	}

	_ = c.JSON(httpErr.Code, ErrorBody{Success: false, Code: code, Error: msg})
}
