package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"companion.GO/core/errs"
	"companion.GO/core/logger"
)

// StatusOf maps a domain error to an HTTP status.
func StatusOf(err error) int {
	kind, ok := errs.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindInvalidState:
		return http.StatusConflict
	case errs.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as {"error": msg}. Unclassified errors are logged and hidden.
func Error(c echo.Context, err error) error {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		logger.L().Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.JSON(status, echo.Map{"error": "internal error"})
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}

// BadRequest is the binding-failure response.
func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}
