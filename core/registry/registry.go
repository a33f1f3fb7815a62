package registry

import "sync"

// Registry is a keyed value store whose entries can be frozen.
// Extension points (commands, cron jobs, API modules) keep their lists here
// and lock them once they are applied, so late init() registrations fail loudly.
type Registry struct {
	mu     sync.RWMutex
	values map[string]interface{}
	locked map[string]bool
}

// GlobalRegistry holds process-wide extension registries.
var GlobalRegistry = New()

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		values: make(map[string]interface{}),
		locked: make(map[string]bool),
	}
}

// SetGlobal stores v under key. Panics if the key is locked.
func (r *Registry) SetGlobal(key string, v interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.locked[key] {
		panic("registry: key " + key + " is locked")
	}
	r.values[key] = v
}

// GetGlobal returns the value stored under key.
func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// Lock freezes key. Locking twice is allowed.
func (r *Registry) Lock(key string) {
	r.mu.Lock()
	r.locked[key] = true
	r.mu.Unlock()
}

func (r *Registry) IsLocked(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locked[key]
}

// UnlockForTesting lifts a lock so tests can register and unregister entries.
func (r *Registry) UnlockForTesting(key string) {
	r.mu.Lock()
	delete(r.locked, key)
	r.mu.Unlock()
}
