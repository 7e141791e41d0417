// Package handler contains the echo handlers of the public API.
package handler

import (
	"net/http"
	"reflect"
	"time"

	"eventhub/internal/delivery/api/middleware"
	"eventhub/internal/delivery/api/response"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/errors"

	"github.com/gorilla/schema"
	"github.com/labstack/echo/v4"
)

//nolint:gochecknoglobals
var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	decoder.RegisterConverter(time.Time{}, convertTime)

	return decoder
}

// convertTime accepts RFC 3339 timestamps and plain dates.
func convertTime(value string) reflect.Value {
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			return reflect.ValueOf(t)
		}
	}

	return reflect.Value{}
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindQuery decodes the query string into dst.
func bindQuery(c echo.Context, dst any) error {
	if err := queryDecoder.Decode(dst, c.QueryParams()); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// bindBody decodes the JSON body into dst and validates it.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if msg, ok := httpErr.Message.(string); ok {
				return domainerrors.ErrValidationFailed.WithDetails(msg)
			}
		}

		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return errors.WithStack(c.Validate(dst))
}

// currentUser returns the authenticated caller's user id.
func currentUser(c echo.Context) (string, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return "", domainerrors.ErrUnauthorized
	}

	return userID, nil
}

func fail(c echo.Context, err error) error {
	return response.HandleAppError(c, err)
}
