package customization

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"companion.GO/api"
	"companion.GO/core/errs"
	"companion.GO/core/registry"
	"companion.GO/service/catalog"
	customService "companion.GO/service/customization"
)

func init() {
	api.RegisterModule(RegisterCustomizationRoutes)
}

// WizardView is one screen of the Color Bar wizard.
type WizardView struct {
	ID        string                              `json:"id"`
	Product   catalog.Product                     `json:"product"`
	Step      customService.Step                  `json:"step"`
	Options   []customService.Option              `json:"options"`
	Selected  map[customService.OptionType]string `json:"selected"`
	Price     float64                             `json:"price"`
	Review    []customService.ReviewLine          `json:"review,omitempty"`
	Completed bool                                `json:"completed"`
}

type startRequest struct {
	ProductID string `json:"product_id"`
}

type selectRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func viewOf(id string, w *customService.Wizard) WizardView {
	v := WizardView{
		ID:        id,
		Product:   w.Product(),
		Step:      w.Step(),
		Options:   w.Options(),
		Selected:  w.Selected(),
		Price:     w.Price(),
		Completed: w.Completed(),
	}
	if v.Step == customService.StepReview {
		v.Review = w.Review()
	}
	return v
}

// RegisterCustomizationRoutes mounts the wizard endpoints of a session.
func RegisterCustomizationRoutes(g *echo.Group, deps *api.Deps) {
	wg := g.Group("/sessions/:id/wizards")

	// POST /api/sessions/:id/wizards {product_id}
	wg.POST("", func(c echo.Context) error {
		c.Set(registry.KeySessionID, c.Param("id"))
		var req startRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid body")
		}
		h, err := deps.Sessions.StartWizard(c.Request().Context(), c.Param("id"), req.ProductID)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusCreated, viewOf(h.ID, h.Wizard))
	})

	// GET /api/sessions/:id/wizards/:wid
	wg.GET("/:wid", func(c echo.Context) error {
		w, err := deps.Sessions.Wizard(c.Param("id"), c.Param("wid"))
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, viewOf(c.Param("wid"), w))
	})

	// POST /api/sessions/:id/wizards/:wid/select {type, value}
	wg.POST("/:wid/select", func(c echo.Context) error {
		w, err := deps.Sessions.Wizard(c.Param("id"), c.Param("wid"))
		if err != nil {
			return api.Error(c, err)
		}
		var req selectRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid body")
		}
		t, ok := customService.ParseOptionType(req.Type)
		if !ok {
			return api.Error(c, errs.Validationf("%s: %s", errs.ErrMsgOptionTypeUnknown, req.Type))
		}
		if err := w.Select(t, req.Value); err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, viewOf(c.Param("wid"), w))
	})

	// POST /api/sessions/:id/wizards/:wid/complete
	wg.POST("/:wid/complete", func(c echo.Context) error {
		out, err := deps.Sessions.CompleteWizard(c.Param("id"), c.Param("wid"))
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, out)
	})
}
