package chat

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"companion.GO/api"
	"companion.GO/core/registry"
	chatService "companion.GO/service/chat"
)

func init() {
	api.RegisterModule(RegisterChatRoutes)
}

type messageRequest struct {
	Text string `json:"text"`
}

// groupRequest addresses a recommendation group by message index and group index.
type groupRequest struct {
	Message int `json:"message"`
	Group   int `json:"group"`
}

// loadSession resolves :id and stores the id on the context for logging.
func loadSession(c echo.Context, deps *api.Deps) (*chatService.Session, error) {
	id := c.Param("id")
	c.Set(registry.KeySessionID, id)
	return deps.Sessions.Get(id)
}

// RegisterChatRoutes mounts the session, message and selection endpoints.
func RegisterChatRoutes(g *echo.Group, deps *api.Deps) {
	sg := g.Group("/sessions")

	// POST /api/sessions
	sg.POST("", func(c echo.Context) error {
		s, err := deps.Sessions.Create(c.Request().Context())
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusCreated, s.State())
	})

	// GET /api/sessions/:id
	sg.GET("/:id", func(c echo.Context) error {
		s, err := loadSession(c, deps)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, s.State())
	})

	// DELETE /api/sessions/:id
	sg.DELETE("/:id", func(c echo.Context) error {
		if err := deps.Sessions.Delete(c.Param("id")); err != nil {
			return api.Error(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})

	// POST /api/sessions/:id/messages {text} ; ?wait=true blocks until the reply lands
	sg.POST("/:id/messages", func(c echo.Context) error {
		s, err := loadSession(c, deps)
		if err != nil {
			return api.Error(c, err)
		}
		var req messageRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid body")
		}
		reply := s.Submit(req.Text)
		if reply == nil {
			return c.NoContent(http.StatusNoContent)
		}
		if c.QueryParam("wait") != "true" {
			return c.JSON(http.StatusAccepted, s.State())
		}
		select {
		case msg := <-reply:
			return c.JSON(http.StatusOK, echo.Map{"reply": msg, "state": s.State()})
		case <-c.Request().Context().Done():
			return c.JSON(http.StatusAccepted, s.State())
		}
	})

	// POST /api/sessions/:id/selection/:productId
	sg.POST("/:id/selection/:productId", func(c echo.Context) error {
		s, err := loadSession(c, deps)
		if err != nil {
			return api.Error(c, err)
		}
		id := c.Param("productId")
		return c.JSON(http.StatusOK, echo.Map{"product_id": id, "selected": s.ToggleProductSelection(id)})
	})

	// POST /api/sessions/:id/groups/select-all {message, group}
	sg.POST("/:id/groups/select-all", func(c echo.Context) error {
		s, err := loadSession(c, deps)
		if err != nil {
			return api.Error(c, err)
		}
		var req groupRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid body")
		}
		grp, err := s.Group(req.Message, req.Group)
		if err != nil {
			return api.Error(c, err)
		}
		s.ToggleSelectAllInGroup(grp)
		return c.JSON(http.StatusOK, echo.Map{
			"all_selected": s.AllSelected(grp),
			"selected":     s.Selected(),
		})
	})

	// POST /api/sessions/:id/groups/add-to-cart {message, group}
	sg.POST("/:id/groups/add-to-cart", func(c echo.Context) error {
		s, err := loadSession(c, deps)
		if err != nil {
			return api.Error(c, err)
		}
		var req groupRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid body")
		}
		grp, err := s.Group(req.Message, req.Group)
		if err != nil {
			return api.Error(c, err)
		}
		added, err := s.AddSelectedToCart(grp)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"added": added, "open_cart": added})
	})
}
