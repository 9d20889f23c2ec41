package sift

import "sync"

var (
	registry   = make(map[string]*Spec)
	registryMu sync.RWMutex
)

// Use returns the cached spec for name or builds and caches a new one.
// Specs are immutable, so a cached spec is safe to hand out to concurrent
// callers.
func Use(name string, build func() (*Spec, error)) (*Spec, error) {
	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[name]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[name]; ok {
		return cached, nil
	}

	spec, err := build()
	if err != nil {
		return nil, err
	}

	registry[name] = spec
	return spec, nil
}

// Register stores spec under its name, replacing any previous entry.
func Register(spec *Spec) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[spec.name] = spec
}

// Lookup returns the registered spec for name.
func Lookup(name string) (*Spec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	spec, ok := registry[name]
	return spec, ok
}

// Reset clears the spec registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]*Spec)
}
