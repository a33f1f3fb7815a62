package cart

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"companion.GO/api"
	"companion.GO/core/registry"
	cartService "companion.GO/service/cart"
	chatService "companion.GO/service/chat"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

// View is the smart cart panel.
type View struct {
	Items            []cartService.LineItem `json:"items"`
	Count            int                    `json:"count"`
	Subtotal         float64                `json:"subtotal"`
	Open             bool                   `json:"open"`
	CheckoutComplete bool                   `json:"checkout_complete"`
}

type quantityRequest struct {
	Quantity *int `json:"quantity"`
}

func view(s *chatService.Session) View {
	st := s.State()
	return View{
		Items:            st.Cart,
		Count:            s.Cart().Count(),
		Subtotal:         st.Subtotal,
		Open:             st.CartOpen,
		CheckoutComplete: st.CheckoutComplete,
	}
}

// RegisterCartRoutes mounts the smart cart endpoints of a session.
func RegisterCartRoutes(g *echo.Group, deps *api.Deps) {
	cg := g.Group("/sessions/:id/cart")

	withSession := func(fn func(c echo.Context, s *chatService.Session) error) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Param("id")
			c.Set(registry.KeySessionID, id)
			s, err := deps.Sessions.Get(id)
			if err != nil {
				return api.Error(c, err)
			}
			return fn(c, s)
		}
	}

	// GET /api/sessions/:id/cart
	cg.GET("", withSession(func(c echo.Context, s *chatService.Session) error {
		return c.JSON(http.StatusOK, view(s))
	}))

	// PUT /api/sessions/:id/cart/:productId {quantity}; 0 removes the line
	cg.PUT("/:productId", withSession(func(c echo.Context, s *chatService.Session) error {
		var req quantityRequest
		if err := c.Bind(&req); err != nil || req.Quantity == nil {
			return api.BadRequest(c, "quantity required")
		}
		if err := s.Cart().SetQuantity(c.Param("productId"), *req.Quantity); err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, view(s))
	}))

	cg.POST("/open", withSession(func(c echo.Context, s *chatService.Session) error {
		s.OpenCart()
		return c.JSON(http.StatusOK, view(s))
	}))

	cg.POST("/close", withSession(func(c echo.Context, s *chatService.Session) error {
		s.CloseCart()
		return c.JSON(http.StatusOK, view(s))
	}))

	// POST /api/sessions/:id/cart/checkout (simulated; cart is kept)
	cg.POST("/checkout", withSession(func(c echo.Context, s *chatService.Session) error {
		sum, err := s.Checkout()
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, sum)
	}))
}
