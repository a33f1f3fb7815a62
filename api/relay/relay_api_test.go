package relay

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"companion.GO/api/apitest"
)

func upstream(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Upstream-Path", r.URL.Path)
		w.WriteHeader(status)
		io.WriteString(w, "storefront")
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRelay_ProxiesUnderPrefix(t *testing.T) {
	srv := upstream(t, http.StatusOK)
	deps := apitest.Deps(t)
	deps.Config.StorefrontURL = srv.URL

	e := echo.New()
	RegisterStorefrontRelay(e, deps)

	req := httptest.NewRequest(http.MethodGet, Prefix+"/collections/necklaces", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	apitest.ExpectStatus(t, rec, http.StatusOK)
	if got := rec.Header().Get("X-Upstream-Path"); got != "/collections/necklaces" {
		t.Errorf("upstream path = %q, want /collections/necklaces", got)
	}
	if rec.Body.String() != "storefront" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRelay_DisabledWithoutURL(t *testing.T) {
	e := echo.New()
	RegisterStorefrontRelay(e, apitest.Deps(t))
	req := httptest.NewRequest(http.MethodGet, Prefix+"/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	apitest.ExpectStatus(t, rec, http.StatusNotFound)
}

func TestRelay_Status(t *testing.T) {
	up := upstream(t, http.StatusOK)
	down := upstream(t, http.StatusBadGateway)
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"reachable", up.URL, true},
		{"server error", down.URL, false},
		{"not configured", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := apitest.Deps(t)
			deps.Config.StorefrontURL = tt.url
			e := apitest.Server(deps, RegisterStatusRoutes)
			rec := apitest.Do(e, http.MethodGet, "/api/relay/status", nil)
			apitest.ExpectStatus(t, rec, http.StatusOK)
			var st Status
			apitest.Decode(t, rec, &st)
			if st.Available != tt.want {
				t.Errorf("available = %v, want %v (error %q)", st.Available, tt.want, st.Error)
			}
		})
	}
}
