package middleware

import (
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/api/response"
	"eventhub/internal/delivery/api/validator"
	deliverycontext "eventhub/internal/delivery/context"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/errors"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error, please try again later"

// ErrorMiddleware is echo's HTTPErrorHandler. It maps every error a handler
// returns onto the error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// rendered is the envelope chosen for an error.
type rendered struct {
	status  int
	code    string
	message string
	details any
}

func classify(err error) (rendered, bool) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return rendered{appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()}, true
	}

	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		failed := domainerrors.ErrValidationFailed

		return rendered{failed.HTTPCode(), failed.ErrorCode(), failed.Message(), validationErr.Fields}, true
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		return rendered{httpErr.Code, "HTTP_ERROR", message, nil}, true
	}

	return rendered{
		status:  http.StatusInternalServerError,
		code:    domainerrors.ErrInternalError.ErrorCode(),
		message: internalErrorMessage,
	}, false
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	out, known := classify(err)
	if !known || out.status >= http.StatusInternalServerError {
		req := c.Request()
		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Request failed",
			slog.String("code", out.code),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)
	}

	_ = response.Error(c, out.status, out.code, out.message, out.details)
}
