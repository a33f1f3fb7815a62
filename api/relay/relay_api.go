package relay

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"companion.GO/api"
	"companion.GO/core/logger"
)

const (
	// Prefix is where the storefront is relayed.
	Prefix       = "/storefront"
	probeTimeout = 3 * time.Second
)

func init() {
	api.RegisterRoute(RegisterStorefrontRelay)
	api.RegisterModule(RegisterStatusRoutes)
}

// Status tells the host page whether to embed the relayed storefront or show its fallback.
type Status struct {
	URL       string `json:"url"`
	Path      string `json:"path"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

var probeClient = &http.Client{
	Timeout: probeTimeout,
	CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

// Probe checks that target answers without a server error.
func Probe(ctx context.Context, target string) Status {
	st := Status{URL: target, Path: Prefix + "/"}
	if target == "" {
		st.Error = "storefront not configured"
		return st
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		st.Error = err.Error()
		return st
	}
	resp, err := probeClient.Do(req)
	if err != nil {
		st.Error = err.Error()
		return st
	}
	resp.Body.Close()
	st.Available = resp.StatusCode < http.StatusInternalServerError
	if !st.Available {
		st.Error = resp.Status
	}
	return st
}

// RegisterStorefrontRelay proxies /storefront/* to the configured storefront.
func RegisterStorefrontRelay(e *echo.Echo, deps *api.Deps) {
	if deps.Config == nil || deps.Config.StorefrontURL == "" {
		return
	}
	target, err := url.Parse(deps.Config.StorefrontURL)
	if err != nil || target.Host == "" {
		logger.L().Warn("storefront relay disabled: bad url", zap.String("url", deps.Config.StorefrontURL))
		return
	}
	g := e.Group(Prefix)
	// Upstream virtual hosts route on Host, not on ours.
	g.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Request().Host = target.Host
			return next(c)
		}
	})
	g.Use(middleware.ProxyWithConfig(middleware.ProxyConfig{
		Balancer: middleware.NewRoundRobinBalancer([]*middleware.ProxyTarget{{URL: target}}),
		Rewrite: map[string]string{
			Prefix:        "/",
			Prefix + "/*": "/$1",
		},
	}))
	logger.L().Info("storefront relay enabled", zap.String("target", target.String()))
}

// RegisterStatusRoutes mounts GET /api/relay/status.
func RegisterStatusRoutes(g *echo.Group, deps *api.Deps) {
	g.GET("/relay/status", func(c echo.Context) error {
		target := ""
		if deps.Config != nil {
			target = deps.Config.StorefrontURL
		}
		return c.JSON(http.StatusOK, Probe(c.Request().Context(), target))
	})
}
