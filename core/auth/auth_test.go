package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newAuthServer(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	g := e.Group("/api")
	g.Use(Middleware())
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	g.GET("/catalog/groups", ok)
	g.POST("/catalog/import", ok)
	return e
}

func TestMiddleware_KeyAuth(t *testing.T) {
	t.Setenv("AUTH_TYPE", "key")
	t.Setenv("API_KEY", "secret")
	e := newAuthServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		header string
		want   int
	}{
		{"public route", http.MethodGet, "/api/catalog/groups", "", http.StatusOK},
		{"missing key", http.MethodPost, "/api/catalog/import", "", http.StatusBadRequest},
		{"wrong key", http.MethodPost, "/api/catalog/import", "Bearer nope", http.StatusUnauthorized},
		{"valid key", http.MethodPost, "/api/catalog/import", "Bearer secret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestMiddleware_BasicAuth(t *testing.T) {
	t.Setenv("AUTH_TYPE", "basic")
	t.Setenv("API_USER", "admin")
	t.Setenv("API_PASS", "pw")
	e := newAuthServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/catalog/import", nil)
	req.SetBasicAuth("admin", "pw")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/catalog/import", nil)
	req.SetBasicAuth("admin", "wrong")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
