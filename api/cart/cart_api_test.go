package cart

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"companion.GO/api"
	"companion.GO/api/apitest"
	"companion.GO/service/catalog"
)

func setup(t *testing.T) (*echo.Echo, *api.Deps, string) {
	t.Helper()
	deps := apitest.Deps(t)
	s, err := deps.Sessions.Create(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return apitest.Server(deps, RegisterCartRoutes), deps, s.ID()
}

func TestCartAPI_QuantityFlow(t *testing.T) {
	e, deps, id := setup(t)
	s, _ := deps.Sessions.Get(id)
	n1 := catalog.Product{ID: "n1", Name: "N1", Price: 75}
	if err := s.Cart().Add(n1, 1); err != nil {
		t.Fatal(err)
	}
	base := "/api/sessions/" + id + "/cart"

	rec := apitest.Do(e, http.MethodPut, base+"/n1", map[string]int{"quantity": 3})
	apitest.ExpectStatus(t, rec, http.StatusOK)
	var v View
	apitest.Decode(t, rec, &v)
	if len(v.Items) != 1 || v.Items[0].Quantity != 3 || v.Subtotal != 225 || v.Count != 3 {
		t.Errorf("view = %+v, want n1 x3 subtotal 225", v)
	}

	rec = apitest.Do(e, http.MethodPut, base+"/n1", map[string]int{"quantity": 0})
	apitest.ExpectStatus(t, rec, http.StatusOK)
	v = View{}
	apitest.Decode(t, rec, &v)
	if len(v.Items) != 0 {
		t.Errorf("items = %v, want empty", v.Items)
	}
}

func TestCartAPI_Errors(t *testing.T) {
	e, _, id := setup(t)
	base := "/api/sessions/" + id + "/cart"
	tests := []struct {
		name string
		body interface{}
		want int
	}{
		{"negative", map[string]int{"quantity": -1}, http.StatusBadRequest},
		{"unknown item", map[string]int{"quantity": 2}, http.StatusConflict},
		{"missing quantity", map[string]string{}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apitest.ExpectStatus(t, apitest.Do(e, http.MethodPut, base+"/ghost", tt.body), tt.want)
		})
	}
	apitest.ExpectStatus(t, apitest.Do(e, http.MethodPost, base+"/checkout", nil), http.StatusBadRequest)
	apitest.ExpectStatus(t, apitest.Do(e, http.MethodGet, "/api/sessions/nope/cart", nil), http.StatusNotFound)
}

func TestCartAPI_OpenCheckoutReopen(t *testing.T) {
	e, deps, id := setup(t)
	s, _ := deps.Sessions.Get(id)
	_ = s.Cart().Add(catalog.Product{ID: "b1", Price: 45}, 2)
	base := "/api/sessions/" + id + "/cart"

	var v View
	apitest.Decode(t, apitest.Do(e, http.MethodPost, base+"/open", nil), &v)
	if !v.Open {
		t.Error("open = false after /open")
	}

	rec := apitest.Do(e, http.MethodPost, base+"/checkout", nil)
	apitest.ExpectStatus(t, rec, http.StatusOK)
	var sum struct {
		Count    int     `json:"count"`
		Subtotal float64 `json:"subtotal"`
	}
	apitest.Decode(t, rec, &sum)
	if sum.Count != 2 || sum.Subtotal != 90 {
		t.Errorf("summary = %+v, want 2 items / 90", sum)
	}

	v = View{}
	apitest.Decode(t, apitest.Do(e, http.MethodGet, base, nil), &v)
	if !v.CheckoutComplete || len(v.Items) != 1 {
		t.Errorf("after checkout = %+v, want complete with cart kept", v)
	}

	v = View{}
	apitest.Decode(t, apitest.Do(e, http.MethodPost, base+"/close", nil), &v)
	if v.Open {
		t.Error("open = true after /close")
	}
	v = View{}
	apitest.Decode(t, apitest.Do(e, http.MethodPost, base+"/open", nil), &v)
	if v.CheckoutComplete {
		t.Error("checkout_complete survived reopen")
	}
}
