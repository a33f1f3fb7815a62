package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"companion.GO/core/registry"
)

// ResolverFunc resolves one _extension name. Args is the JSON-decoded args string.
type ResolverFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

var mu sync.Mutex
var graphqlLocked int32

func getEntries() map[string]ResolverFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryGraphQL); ok && v != nil {
		return v.(map[string]ResolverFunc)
	}
	return make(map[string]ResolverFunc)
}

// Register adds a resolver. Call from init(). Name must be unique. Panics if locked.
func Register(name string, resolve ResolverFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryGraphQL) {
		panic("graphql/registry: locked (register only during init before first request)")
	}
	entries := getEntries()
	if _, ok := entries[name]; ok {
		panic("graphql/registry: duplicate " + name)
	}
	entries[name] = resolve
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryGraphQL, entries)
}

// Unregister removes a registration (for tests).
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryGraphQL)
	atomic.StoreInt32(&graphqlLocked, 0)
	entries := getEntries()
	delete(entries, name)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryGraphQL, entries)
}

// Resolve calls the resolver for name. Locks the registry on first call.
func Resolve(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	if atomic.CompareAndSwapInt32(&graphqlLocked, 0, 1) {
		registry.GlobalRegistry.Lock(registry.KeyRegistryGraphQL)
	}
	resolve, ok := getEntries()[name]
	if !ok {
		return nil, fmt.Errorf("unknown extension: %s", name)
	}
	return resolve(ctx, args)
}

// Names returns all registered names, sorted.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	entries := getEntries()
	names := make([]string, 0, len(entries))
	for n := range entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
