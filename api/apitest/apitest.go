// Package apitest builds in-memory dependencies and request helpers for route tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"companion.GO/api"
	"companion.GO/config"
	"companion.GO/core/cache"
	"companion.GO/service/catalog"
	"companion.GO/service/customization"
	"companion.GO/service/session"
)

// Deps returns static catalog deps with instant assistant replies.
func Deps(t *testing.T) *api.Deps {
	t.Helper()
	provider := catalog.NewStaticProvider()
	options := customization.NewStaticSource()
	return &api.Deps{
		Sessions: session.NewManager(cache.NewCache(), provider, options, session.Config{
			TTL:   time.Hour,
			Delay: func() time.Duration { return 0 },
		}),
		Catalog: provider,
		Options: options,
		Config:  &config.Config{AppName: "companion-test", StorefrontURL: ""},
	}
}

// Server mounts module on /api of a fresh Echo.
func Server(deps *api.Deps, module api.ModuleFunc) *echo.Echo {
	e := echo.New()
	module(e.Group("/api"), deps)
	return e
}

// Do sends a JSON request and returns the recorder.
func Do(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// Decode unmarshals the recorder body into v or fails the test.
func Decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

// ExpectStatus fails the test when the recorder status differs.
func ExpectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}
