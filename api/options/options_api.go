package options

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"companion.GO/api"
	"companion.GO/core/logger"
	customService "companion.GO/service/customization"
)

func init() {
	api.RegisterModule(RegisterOptionRoutes)
}

// ImportResult reports a bulk customization upsert.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}

// check returns why pc cannot be stored, or "" when it is usable.
func check(pc customService.ProductCustomization) string {
	if pc.ProductID == "" {
		return "product_id is required"
	}
	for cat, opts := range pc.AvailableOptions {
		for _, o := range opts {
			if o.ID == "" || o.Value == "" {
				return fmt.Sprintf("option in %s needs id and value", cat)
			}
			want, ok := customService.CategoryFor(o.Type)
			if !ok || want != cat {
				return fmt.Sprintf("option %s has type %q, not listed under %s", o.ID, o.Type, cat)
			}
		}
	}
	for t := range pc.DefaultOptions {
		if _, ok := customService.CategoryFor(t); !ok {
			return fmt.Sprintf("unknown default option type %q", t)
		}
	}
	return ""
}

// RegisterOptionRoutes mounts the admin Color Bar option import.
func RegisterOptionRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/customizations")

	// POST /api/customizations/import – bulk upsert (auth required via /api middleware)
	g.POST("/import", func(c echo.Context) error {
		start := time.Now()
		if deps.DB == nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "catalog database not configured"})
		}

		var body struct {
			Items []customService.ProductCustomization `json:"items"`
		}
		if err := c.Bind(&body); err != nil {
			return api.BadRequest(c, err.Error())
		}
		if len(body.Items) == 0 {
			return api.BadRequest(c, "items array is required and must not be empty")
		}

		var (
			res   ImportResult
			valid []customService.ProductCustomization
		)
		for i, pc := range body.Items {
			if msg := check(pc); msg != "" {
				res.Skipped++
				res.Warnings = append(res.Warnings, fmt.Sprintf("item %d: %s", i, msg))
				continue
			}
			if pc.ID == "" {
				pc.ID = "custom-" + pc.ProductID
			}
			valid = append(valid, pc)
		}
		if len(valid) > 0 {
			if err := customService.Seed(deps.DB, valid); err != nil {
				return api.Error(c, err)
			}
		}
		res.Imported = len(valid)

		duration := time.Since(start).Milliseconds()
		logger.L().Info("customizations imported",
			zap.Int("imported", res.Imported),
			zap.Int("skipped", res.Skipped),
			zap.Int64("duration_ms", duration),
		)
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, res)
	})
}
