package catalog

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"companion.GO/api"
	"companion.GO/core/errs"
	"companion.GO/core/logger"
	catalogService "companion.GO/service/catalog"
	customService "companion.GO/service/customization"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

// ProductDetail pairs a product with its Color Bar options when it has any.
type ProductDetail struct {
	Product       catalogService.Product              `json:"product"`
	Customizable  bool                                `json:"customizable"`
	Customization *customService.ProductCustomization `json:"customization,omitempty"`
}

type warmer interface {
	Warm(ctx context.Context) (map[string]catalogService.RecommendationGroup, error)
}

// RegisterCatalogRoutes mounts catalog reads and the admin CSV import.
func RegisterCatalogRoutes(g *echo.Group, deps *api.Deps) {
	cg := g.Group("/catalog")

	// GET /api/catalog/groups
	cg.GET("/groups", func(c echo.Context) error {
		groups, err := deps.Catalog.Groups(c.Request().Context())
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"groups": catalogService.Ordered(groups)})
	})

	// GET /api/catalog/products/:id
	cg.GET("/products/:id", func(c echo.Context) error {
		start := time.Now()
		id := c.Param("id")

		var (
			detail ProductDetail
			pc     customService.ProductCustomization
			hasPC  bool
		)
		// Parallel fetch using errgroup
		eg, ctx := errgroup.WithContext(c.Request().Context())
		eg.Go(func() error {
			p, err := deps.Catalog.Product(ctx, id)
			detail.Product = p
			return err
		})
		eg.Go(func() error {
			got, err := deps.Options.Customization(ctx, id)
			if errors.Is(err, errs.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			pc, hasPC = got, true
			return nil
		})
		if err := eg.Wait(); err != nil {
			return api.Error(c, err)
		}
		if hasPC {
			detail.Customizable = true
			detail.Customization = &pc
		}
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		return c.JSON(http.StatusOK, detail)
	})

	// POST /api/catalog/import (multipart "file" or text/csv body)
	cg.POST("/import", func(c echo.Context) error {
		if deps.DB == nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "catalog database not configured"})
		}
		var body io.Reader = c.Request().Body
		if fh, err := c.FormFile("file"); err == nil {
			f, err := fh.Open()
			if err != nil {
				return api.BadRequest(c, "cannot read upload")
			}
			defer f.Close()
			body = f
		}
		batch, _ := strconv.Atoi(c.QueryParam("batch_size"))
		res, err := catalogService.ImportCSV(deps.DB, body, catalogService.ImportOptions{
			BatchSize:    batch,
			DefaultGroup: c.QueryParam("group"),
		})
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if w, ok := deps.Catalog.(warmer); ok {
			if _, err := w.Warm(c.Request().Context()); err != nil {
				logger.L().Warn("catalog warm after import failed", zap.Error(err))
			}
		}
		logger.L().Info("catalog imported",
			zap.Int("rows", res.TotalRows),
			zap.Int("created", res.Created),
			zap.Int("updated", res.Updated),
			zap.Int("skipped", res.Skipped),
			zap.Duration("total", res.TotalTime))
		return c.JSON(http.StatusOK, echo.Map{
			"total_rows":  res.TotalRows,
			"created":     res.Created,
			"updated":     res.Updated,
			"skipped":     res.Skipped,
			"memberships": res.Memberships,
			"warnings":    res.Warnings,
			"total_ms":    res.TotalTime.Milliseconds(),
		})
	})
}
