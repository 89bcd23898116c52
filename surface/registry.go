// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"sort"
	"sync"

	"github.com/gogpu/scratch"
)

// Factory creates a surface over a top-layer image.
type Factory func(top image.Image) (scratch.Surface, error)

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// Registry maps names to surface factories.
//
// Example registration:
//
//	func init() {
//	    surface.Register("soft", softFactory)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Factory
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and New.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Factory),
	}
}

// Register adds a factory to the global registry. Registering a name that
// already exists replaces the previous entry.
func Register(name string, f Factory) {
	globalRegistry.Register(name, f)
}

// Unregister removes a factory from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Names returns the names in the global registry, sorted.
func Names() []string {
	return globalRegistry.Names()
}

// New creates a surface from the global registry.
func New(name string, top image.Image) (scratch.Surface, error) {
	return globalRegistry.New(name, top)
}

// Register adds a factory to this registry.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = f
}

// Unregister removes a factory from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates a surface with the named factory.
func (r *Registry) New(name string, top image.Image) (scratch.Surface, error) {
	r.mu.RLock()
	f, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return f(top)
}

// NotFoundError indicates a named surface is not registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "surface: not found: " + e.Name
}

// init registers the built-in surfaces.
func init() {
	Register("erase", func(top image.Image) (scratch.Surface, error) {
		return NewEraseSurface(top), nil
	})
	Register("record", func(top image.Image) (scratch.Surface, error) {
		return &Recorder{Base: top}, nil
	})
}
