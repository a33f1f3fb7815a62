package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"companion.GO/api"
	_ "companion.GO/api/cart"
	_ "companion.GO/api/catalog"
	_ "companion.GO/api/chat"
	_ "companion.GO/api/customization"
	_ "companion.GO/api/graphql"
	_ "companion.GO/api/options"
	_ "companion.GO/api/realtime"
	_ "companion.GO/api/relay"
	"companion.GO/core/auth"
	"companion.GO/core/logger"
	"companion.GO/core/registry"
)

// requestDuration stamps X-Request-Duration-ms and logs slow handlers with the session id.
func requestDuration(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		c.Set(registry.KeyRequestStart, start)
		c.Response().Before(func() {
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		})
		err := next(c)
		fields := []zap.Field{
			zap.String("method", c.Request().Method),
			zap.String("route", c.Path()),
			zap.Int("status", c.Response().Status),
			zap.Duration("duration", time.Since(start)),
		}
		if sid, ok := c.Get(registry.KeySessionID).(string); ok {
			fields = append(fields, zap.String("session_id", sid))
		}
		logger.L().Debug("request", fields...)
		return err
	}
}

// New builds the HTTP server: middleware, /api modules behind auth, root routes.
func New(deps *api.Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())
	e.Use(requestDuration)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "sessions": deps.Sessions.Count()})
	})

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())
	api.ApplyModules(apiGroup, deps)
	api.ApplyRoutes(e, deps)
	return e
}
