package api

import (
	"sync"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"companion.GO/config"
	"companion.GO/core/registry"
	"companion.GO/service/catalog"
	"companion.GO/service/customization"
	"companion.GO/service/session"
)

var mu sync.Mutex

// Deps is what route modules get at Apply time.
type Deps struct {
	// DB is nil when the server runs on the static catalog only.
	DB       *gorm.DB
	Sessions *session.Manager
	Catalog  catalog.Provider
	Options  customization.Source
	Config   *config.Config
}

// --- /api group modules (auth middleware applied, skipper opens widget routes) ---

// ModuleFunc registers routes on the /api group.
type ModuleFunc func(g *echo.Group, deps *Deps)

func getModules() []ModuleFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryAPI); ok && v != nil {
		return v.([]ModuleFunc)
	}
	return nil
}

// RegisterModule registers an API module. Call from init() in API packages.
func RegisterModule(fn ModuleFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryAPI) {
		panic("api/registry: API modules locked (register only during init)")
	}
	list := getModules()
	list = append(list, fn)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryAPI, list)
}

// ApplyModules calls all registered /api modules. Locks the registry.
func ApplyModules(g *echo.Group, deps *Deps) {
	for _, fn := range getModules() {
		fn(g, deps)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryAPI)
}

// --- Root-level routes (graphql, storefront relay) ---

// RouteFunc registers routes on the root Echo instance.
type RouteFunc func(e *echo.Echo, deps *Deps)

func getRoutes() []RouteFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryRoutes); ok && v != nil {
		return v.([]RouteFunc)
	}
	return nil
}

// RegisterRoute registers a root-level route module. Call from init().
func RegisterRoute(fn RouteFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryRoutes) {
		panic("api/registry: routes locked (register only during init)")
	}
	list := getRoutes()
	list = append(list, fn)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryRoutes, list)
}

// RegisterGET is shorthand for registering a simple GET route on root.
func RegisterGET(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *Deps) {
		e.GET(path, handler)
	})
}

// ApplyRoutes calls all registered root-level routes. Locks the registry.
func ApplyRoutes(e *echo.Echo, deps *Deps) {
	for _, fn := range getRoutes() {
		fn(e, deps)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryRoutes)
}
