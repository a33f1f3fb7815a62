package auth

import (
	"crypto/subtle"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"companion.GO/config"
)

// Middleware returns the auth middleware based on AUTH_TYPE env var (basic or key).
// Widget routes listed by config.GetAuthSkipperPaths pass through.
func Middleware() echo.MiddlewareFunc {
	skipper := buildSkipper(config.GetAuthSkipperPaths())
	switch os.Getenv("AUTH_TYPE") {
	case "key":
		return keyAuth(os.Getenv("API_KEY"), skipper)
	case "none":
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	default:
		return basicAuth(os.Getenv("API_USER"), os.Getenv("API_PASS"), skipper)
	}
}

func buildSkipper(skipPaths []string) middleware.Skipper {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}
	return func(c echo.Context) bool {
		return skip[c.Path()]
	}
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func basicAuth(user, pass string, skipper middleware.Skipper) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Validator: func(username, password string, c echo.Context) (bool, error) {
			if user == "" {
				return false, nil
			}
			return equal(username, user) && equal(password, pass), nil
		},
		Skipper: skipper,
	})
}

func keyAuth(apiKey string, skipper middleware.Skipper) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: func(key string, c echo.Context) (bool, error) {
			return apiKey != "" && equal(key, apiKey), nil
		},
		Skipper: skipper,
	})
}
