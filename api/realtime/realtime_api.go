package realtime

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"companion.GO/api"
	"companion.GO/config"
	"companion.GO/core/errs"
	customService "companion.GO/service/customization"
)

func init() {
	api.RegisterModule(RegisterRealtimeRoutes)
}

// PriceResponse is a live Color Bar quote.
type PriceResponse struct {
	ProductID  string                              `json:"product_id"`
	BasePrice  float64                             `json:"base_price"`
	FinalPrice float64                             `json:"final_price"`
	Selected   map[customService.OptionType]string `json:"selected,omitempty"`
}

// quotedTypes are read from the query string, one parameter per option type.
var quotedTypes = []customService.OptionType{
	customService.TypeStone,
	customService.TypeMetal,
	customService.TypeSize,
	customService.TypeLength,
	customService.TypeFinish,
}

func signingKey() string {
	return config.GetEnv("SHOPPER_SIGNING_KEY", "")
}

// verifyShopperSignature checks an HMAC-SHA256 of the shopper id in constant time.
func verifyShopperSignature(shopperID, signature, key string) bool {
	if key == "" || shopperID == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(shopperID))
	expected := mac.Sum(nil)
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, sig)
}

// RegisterRealtimeRoutes mounts the storefront price widget endpoint.
func RegisterRealtimeRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/realtime")

	// GET /api/realtime/price?product_id=XXX&stone=...&metal=...&size=...
	g.GET("/price", func(c echo.Context) error {
		start := time.Now()

		if key := signingKey(); key != "" {
			id := c.Request().Header.Get("X-Shopper-ID")
			sig := c.Request().Header.Get("X-Shopper-Sig")
			if !verifyShopperSignature(id, sig, key) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid signature"})
			}
		}

		productID := c.QueryParam("product_id")
		if productID == "" {
			return api.BadRequest(c, errs.ErrMsgProductIDRequired)
		}

		resp := PriceResponse{ProductID: productID}
		var (
			pc    customService.ProductCustomization
			hasPC bool
		)
		// Parallel fetch using errgroup
		eg, ctx := errgroup.WithContext(c.Request().Context())
		eg.Go(func() error {
			p, err := deps.Catalog.Product(ctx, productID)
			resp.BasePrice = p.Price
			return err
		})
		eg.Go(func() error {
			got, err := deps.Options.Customization(ctx, productID)
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

		resp.FinalPrice = resp.BasePrice
		if hasPC {
			selected := make(map[customService.OptionType]string, len(pc.DefaultOptions))
			for t, v := range pc.DefaultOptions {
				selected[t] = v
			}
			for _, t := range quotedTypes {
				if v := c.QueryParam(string(t)); v != "" {
					selected[t] = v
				}
			}
			resp.Selected = selected
			resp.FinalPrice = customService.FinalPrice(resp.BasePrice, pc, selected)
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		return c.JSON(http.StatusOK, resp)
	})
}
